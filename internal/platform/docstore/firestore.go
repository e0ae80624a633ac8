// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements [Store] on Cloud Firestore.
//
// # Error Translation
//
// gRPC status codes from the Firestore client are translated to the package
// sentinels here so that no caller ever inspects transport errors directly:
// NotFound → ErrNotFound, AlreadyExists → ErrConflict. Everything else is
// wrapped and surfaced as a store failure.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore wraps a connected Firestore client in the [Store] contract.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// GetAll streams every document in the collection.
func (s *Firestore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	docs := make([]Document, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("docstore: listing %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

// GetOne fetches a single document's field data.
func (s *Firestore) GetOne(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("docstore: getting %s/%s: %w", collection, id, err)
	}

	return snap.Data(), nil
}

// Create writes a new document, generating an opaque id when none is given.
func (s *Firestore) Create(ctx context.Context, collection, id string, data map[string]any) (string, error) {
	col := s.client.Collection(collection)
	if id == "" {
		id = col.NewDoc().ID
	}

	if _, err := col.Doc(id).Create(ctx, data); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", ErrConflict
		}
		return "", fmt.Errorf("docstore: creating %s/%s: %w", collection, id, err)
	}

	return id, nil
}

// Update merges the patch's top-level fields into an existing document.
func (s *Firestore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	doc := s.client.Collection(collection).Doc(id)

	// Firestore rejects an empty update list, so an empty patch degrades to
	// an existence check with the same NotFound semantics.
	if len(patch) == 0 {
		_, err := s.GetOne(ctx, collection, id)
		return err
	}

	updates := make([]firestore.Update, 0, len(patch))
	for field, value := range patch {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}

	if _, err := doc.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("docstore: updating %s/%s: %w", collection, id, err)
	}

	return nil
}

// Delete removes a document after verifying it exists.
//
// Firestore's delete succeeds on absent documents, so the NotFound contract
// requires a read first. The check-then-act window between the two calls is
// an accepted race (last writer wins throughout the store).
func (s *Firestore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.GetOne(ctx, collection, id); err != nil {
		return err
	}

	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("docstore: deleting %s/%s: %w", collection, id, err)
	}

	return nil
}

// Ping verifies the store is reachable by issuing a minimal read.
func (s *Firestore) Ping(ctx context.Context) error {
	iter := s.client.Collection(CollectionAdmins).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("docstore: ping failed: %w", err)
	}

	return nil
}
