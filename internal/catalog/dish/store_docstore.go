// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package dish

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

func (repository *DocstoreRepository) ListDishes(context context.Context) ([]*Dish, error) {
	docs, err := repository.store.GetAll(context, docstore.CollectionDishes)
	if err != nil {
		return nil, err
	}

	dishes := make([]*Dish, 0, len(docs))
	for _, doc := range docs {
		d := &Dish{}
		if err := docstore.Decode(doc.Data, d); err != nil {
			return nil, err
		}
		d.ID = doc.ID
		dishes = append(dishes, d)
	}

	return dishes, nil
}

func (repository *DocstoreRepository) GetDish(context context.Context, id string) (*Dish, error) {
	data, err := repository.store.GetOne(context, docstore.CollectionDishes, id)
	if err != nil {
		return nil, err
	}

	d := &Dish{}
	if err := docstore.Decode(data, d); err != nil {
		return nil, err
	}
	d.ID = id

	return d, nil
}

func (repository *DocstoreRepository) CreateDish(context context.Context, id string, d *Dish) (string, error) {
	data, err := docstore.Encode(d)
	if err != nil {
		return "", err
	}

	return repository.store.Create(context, docstore.CollectionDishes, id, data)
}

func (repository *DocstoreRepository) UpdateDish(context context.Context, id string, patch Patch) error {
	return repository.store.Update(context, docstore.CollectionDishes, id, patch.Fields())
}

func (repository *DocstoreRepository) DeleteDish(context context.Context, id string) error {
	return repository.store.Delete(context, docstore.CollectionDishes, id)
}
