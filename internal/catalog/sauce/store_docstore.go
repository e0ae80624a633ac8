// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package sauce

import (
	"context"

	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
)

type DocstoreRepository struct {
	store docstore.Store
}

func NewDocstoreRepository(store docstore.Store) *DocstoreRepository {
	return &DocstoreRepository{store: store}
}

func (repository *DocstoreRepository) ListSauces(context context.Context) ([]*Sauce, error) {
	docs, err := repository.store.GetAll(context, docstore.CollectionSauces)
	if err != nil {
		return nil, err
	}

	sauces := make([]*Sauce, 0, len(docs))
	for _, doc := range docs {
		s := &Sauce{}
		if err := docstore.Decode(doc.Data, s); err != nil {
			return nil, err
		}
		s.ID = doc.ID
		sauces = append(sauces, s)
	}

	return sauces, nil
}

func (repository *DocstoreRepository) GetSauce(context context.Context, id string) (*Sauce, error) {
	data, err := repository.store.GetOne(context, docstore.CollectionSauces, id)
	if err != nil {
		return nil, err
	}

	s := &Sauce{}
	if err := docstore.Decode(data, s); err != nil {
		return nil, err
	}
	s.ID = id

	return s, nil
}

func (repository *DocstoreRepository) CreateSauce(context context.Context, id string, s *Sauce) (string, error) {
	data, err := docstore.Encode(s)
	if err != nil {
		return "", err
	}

	return repository.store.Create(context, docstore.CollectionSauces, id, data)
}

func (repository *DocstoreRepository) UpdateSauce(context context.Context, id string, patch Patch) error {
	return repository.store.Update(context, docstore.CollectionSauces, id, patch.Fields())
}

func (repository *DocstoreRepository) DeleteSauce(context context.Context, id string) error {
	return repository.store.Delete(context, docstore.CollectionSauces, id)
}
