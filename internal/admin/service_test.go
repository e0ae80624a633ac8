// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package admin_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/internal/admin"
	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
)

func newTestService(t *testing.T) *admin.Service {
	t.Helper()

	store := docstore.NewMemory()
	_, err := store.Create(context.Background(), docstore.CollectionAdmins, "Jacky", map[string]any{
		"email": "jacky@lelemenu.app",
	})
	require.NoError(t, err)

	return admin.NewService(admin.NewDocstoreRepository(store), slog.Default())
}

/*
TestService_ListAdmins checks the name is taken from the document id.
*/
func TestService_ListAdmins(t *testing.T) {
	service := newTestService(t)

	admins, err := service.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "Jacky", admins[0].Name)
	assert.Equal(t, "jacky@lelemenu.app", admins[0].Email)
}

/*
TestService_IsAdmin pins the exact, case-sensitive matching rule.
*/
func TestService_IsAdmin(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		allowed bool
	}{
		{"exact_match", "jacky@lelemenu.app", true},
		{"different_case", "Jacky@lelemenu.app", false},
		{"unknown_email", "stranger@lelemenu.app", false},
		{"empty_email", "", false},
	}

	service := newTestService(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := service.IsAdmin(context.Background(), tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
