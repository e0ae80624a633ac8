// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory implements [Store] on process-local maps.
//
// It backs service and handler tests so they run without a Firestore
// emulator, honoring the same contract: sentinel errors, top-level merge
// on update, and opaque generated ids.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]any)}
}

// GetAll returns every document in the collection, ordered by id for
// deterministic tests.
func (s *Memory) GetAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.collections[collection]))
	for id, data := range s.collections[collection] {
		docs = append(docs, Document{ID: id, Data: cloneData(data)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// GetOne returns a copy of a single document's field data.
func (s *Memory) GetOne(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneData(data), nil
}

// Create writes a new document, generating an opaque id when none is given.
func (s *Memory) Create(_ context.Context, collection, id string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[collection] = docs
	}

	if _, exists := docs[id]; exists {
		return "", ErrConflict
	}

	docs[id] = cloneData(data)
	return id, nil
}

// Update merges the patch's top-level fields into an existing document.
func (s *Memory) Update(_ context.Context, collection, id string, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	for field, value := range patch {
		doc[field] = cloneValue(value)
	}

	return nil
}

// Delete removes a document, reporting ErrNotFound on repeat deletes.
func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}

	delete(s.collections[collection], id)
	return nil
}

// cloneData deep-copies a document so callers can't mutate stored state.
func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneData(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
