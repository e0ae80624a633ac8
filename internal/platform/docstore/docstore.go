// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package docstore defines the document-store contract the catalog is built on.

It exposes a minimal key/value-with-metadata interface over named collections
(dishes, ingredient_tips, sauce_recipes, admins) with exactly the operations
the API needs: get-one, list-all, create, partial-merge update, delete.

Architecture:

  - Store: the adapter interface. The Firestore backend serves production;
    the memory backend serves tests.
  - Sentinels: ErrNotFound and ErrConflict are the only recoverable outcomes;
    services translate them into apperr values at the boundary.
  - No transactions span collections and no concurrency token is checked on
    update; the last writer wins.
*/
package docstore

import (
	"context"
	"errors"
)

// Collection names used by the application.
const (
	CollectionDishes = "dishes"
	CollectionTips   = "ingredient_tips"
	CollectionSauces = "sauce_recipes"
	CollectionAdmins = "admins"
)

var (
	// ErrNotFound is returned when the referenced document does not exist.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrConflict is returned by Create when the requested id is occupied.
	ErrConflict = errors.New("docstore: document already exists")
)

// Document pairs a document id with its raw field data.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is the adapter over one document database.
//
// Implementations serialize per-document writes; callers get no cross-document
// or check-then-set atomicity beyond what each single operation provides.
type Store interface {
	// GetAll returns every document in the collection. An empty collection
	// yields an empty slice, not an error.
	GetAll(ctx context.Context, collection string) ([]Document, error)

	// GetOne returns the field data of a single document.
	// Returns ErrNotFound when the document is absent.
	GetOne(ctx context.Context, collection, id string) (map[string]any, error)

	// Create writes a new document. When id is empty the store generates an
	// opaque unique id; either way the assigned id is returned. Returns
	// ErrConflict when the requested id is already occupied.
	Create(ctx context.Context, collection, id string, data map[string]any) (string, error)

	// Update merges the patch's top-level fields into an existing document.
	// Returns ErrNotFound when the document is absent; it never creates.
	Update(ctx context.Context, collection, id string, patch map[string]any) error

	// Delete removes a document. Returns ErrNotFound when absent; a second
	// delete of the same id reports ErrNotFound rather than succeeding
	// silently.
	Delete(ctx context.Context, collection, id string) error
}
