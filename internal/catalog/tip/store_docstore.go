// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package tip

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

func (repository *DocstoreRepository) ListTips(context context.Context) ([]*Tip, error) {
	docs, err := repository.store.GetAll(context, docstore.CollectionTips)
	if err != nil {
		return nil, err
	}

	tips := make([]*Tip, 0, len(docs))
	for _, doc := range docs {
		t := &Tip{}
		if err := docstore.Decode(doc.Data, t); err != nil {
			return nil, err
		}
		t.ID = doc.ID
		tips = append(tips, t)
	}

	return tips, nil
}

func (repository *DocstoreRepository) GetTip(context context.Context, id string) (*Tip, error) {
	data, err := repository.store.GetOne(context, docstore.CollectionTips, id)
	if err != nil {
		return nil, err
	}

	t := &Tip{}
	if err := docstore.Decode(data, t); err != nil {
		return nil, err
	}
	t.ID = id

	return t, nil
}

func (repository *DocstoreRepository) CreateTip(context context.Context, id string, t *Tip) (string, error) {
	data, err := docstore.Encode(t)
	if err != nil {
		return "", err
	}

	return repository.store.Create(context, docstore.CollectionTips, id, data)
}

func (repository *DocstoreRepository) UpdateTip(context context.Context, id string, patch Patch) error {
	return repository.store.Update(context, docstore.CollectionTips, id, patch.Fields())
}

func (repository *DocstoreRepository) DeleteTip(context context.Context, id string) error {
	return repository.store.Delete(context, docstore.CollectionTips, id)
}
