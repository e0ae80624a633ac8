// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package sauce_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/internal/catalog/sauce"
	"github.com/jackyyuan/lelemenu/internal/platform/apperr"
	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
	"github.com/jackyyuan/lelemenu/pkg/bilingual"
)

func newTestService() *sauce.Service {
	repo := sauce.NewDocstoreRepository(docstore.NewMemory())
	return sauce.NewService(repo, slog.Default())
}

/*
TestService_SauceLifecycle drives create, update, and delete for one sauce.
*/
func TestService_SauceLifecycle(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	id, err := service.CreateSauce(ctx, &sauce.Sauce{
		Name:   bilingual.Text{En: "Chili Oil", Zh: "辣椒油"},
		Recipe: bilingual.Text{En: "Pour hot oil over flakes", Zh: "热油泼辣椒面"},
	})
	require.NoError(t, err)
	assert.Equal(t, "辣椒油", id)

	err = service.UpdateSauce(ctx, id, sauce.Patch{
		Recipe: &bilingual.Text{En: "Add sesame at the end", Zh: "最后加芝麻"},
	})
	require.NoError(t, err)

	updated, err := service.GetSauce(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Add sesame at the end", updated.Recipe.En)
	assert.Equal(t, "辣椒油", updated.Name.Zh)

	require.NoError(t, service.DeleteSauce(ctx, id))

	err = service.DeleteSauce(ctx, id)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_CreateSauce_Conflict checks duplicate derived ids are rejected.
*/
func TestService_CreateSauce_Conflict(t *testing.T) {
	service := newTestService()
	name := bilingual.Text{En: "Chili Oil", Zh: "辣椒油"}

	_, err := service.CreateSauce(context.Background(), &sauce.Sauce{Name: name})
	require.NoError(t, err)

	_, err = service.CreateSauce(context.Background(), &sauce.Sauce{Name: name})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}
