// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package tip

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jackyyuan/lelemenu/internal/platform/request"
	"github.com/jackyyuan/lelemenu/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the ingredient-tip endpoints. Guards, when provided,
// wrap the mutating routes only.
func (handler *Handler) RegisterRoutes(router chi.Router, guards ...func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listTips)
	router.Get("/{id}", handler.getTip)

	// Mutations (guarded when auth enforcement is on)
	router.Group(func(adminRoute chi.Router) {
		for _, guard := range guards {
			adminRoute.Use(guard)
		}

		adminRoute.Post("/", handler.createTip)
		adminRoute.Put("/{id}", handler.updateTip)
		adminRoute.Delete("/{id}", handler.deleteTip)
	})
}

func (handler *Handler) listTips(writer http.ResponseWriter, request *http.Request) {
	tips, err := handler.service.ListTips(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tips)
}

func (handler *Handler) getTip(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	t, err := handler.service.GetTip(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) createTip(writer http.ResponseWriter, request *http.Request) {
	var input Tip
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.CreateTip(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) updateTip(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTip(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) deleteTip(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteTip(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}
