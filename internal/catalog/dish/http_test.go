// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package dish_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
)

func newTestRouter() chi.Router {
	repo := dish.NewDocstoreRepository(docstore.NewMemory())
	service := dish.NewService(repo, slog.Default())
	handler := dish.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api/dishes", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return router
}

/*
TestHandler_DishLifecycle drives a full create/get/update/delete cycle over
the HTTP surface.
*/
func TestHandler_DishLifecycle(t *testing.T) {
	router := newTestRouter()

	// Create
	body := `{"name":{"en":"Mapo Tofu","zh":"麻婆豆腐"},"status":"unlocked","categoryId":"sichuan"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/dishes", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "麻婆豆腐", created["id"])

	// Get
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dishes/麻婆豆腐", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var fetched dish.Dish
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, "Mapo Tofu", fetched.Name.En)
	assert.Equal(t, "sichuan", fetched.CategoryID)

	// Update
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/api/dishes/麻婆豆腐", strings.NewReader(`{"status":"locked"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":"麻婆豆腐"}`, recorder.Body.String())

	// List reflects the update
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dishes", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var listed []dish.Dish
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, dish.StatusLocked, listed[0].Status)

	// Delete
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/dishes/麻婆豆腐", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":"麻婆豆腐"}`, recorder.Body.String())

	// Gone
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dishes/麻婆豆腐", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_ErrorEnvelopes pins the error body shape for the common failure
statuses.
*/
func TestHandler_ErrorEnvelopes(t *testing.T) {
	router := newTestRouter()

	// 404 with {error, code}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dishes/ghost", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Dish not found", envelope["error"])
	assert.Equal(t, "NOT_FOUND", envelope["code"])

	// 400 on malformed JSON
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/dishes", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// 400 with per-field details on missing name locales
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/dishes", strings.NewReader(`{"name":{"en":"No Chinese"}}`)))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope["code"])
	assert.NotEmpty(t, envelope["details"])

	// 409 on duplicate derived ids
	body := `{"name":{"en":"Mapo Tofu","zh":"麻婆豆腐"}}`
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/dishes", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/dishes", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}
