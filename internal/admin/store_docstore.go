// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package admin

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

func (repository *DocstoreRepository) ListAdmins(context context.Context) ([]*Admin, error) {
	docs, err := repository.store.GetAll(context, docstore.CollectionAdmins)
	if err != nil {
		return nil, err
	}

	admins := make([]*Admin, 0, len(docs))
	for _, doc := range docs {
		a := &Admin{}
		if err := docstore.Decode(doc.Data, a); err != nil {
			return nil, err
		}
		// The display name lives in the document id, not the body.
		a.Name = doc.ID
		admins = append(admins, a)
	}

	return admins, nil
}
