// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package sauce

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

// RegisterRoutes mounts the sauce-recipe endpoints. Guards, when provided,
// wrap the mutating routes only.
func (handler *Handler) RegisterRoutes(router chi.Router, guards ...func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listSauces)
	router.Get("/{id}", handler.getSauce)

	// Mutations (guarded when auth enforcement is on)
	router.Group(func(adminRoute chi.Router) {
		for _, guard := range guards {
			adminRoute.Use(guard)
		}

		adminRoute.Post("/", handler.createSauce)
		adminRoute.Put("/{id}", handler.updateSauce)
		adminRoute.Delete("/{id}", handler.deleteSauce)
	})
}

func (handler *Handler) listSauces(writer http.ResponseWriter, request *http.Request) {
	sauces, err := handler.service.ListSauces(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sauces)
}

func (handler *Handler) getSauce(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	s, err := handler.service.GetSauce(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) createSauce(writer http.ResponseWriter, request *http.Request) {
	var input Sauce
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.CreateSauce(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) updateSauce(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSauce(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) deleteSauce(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteSauce(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}
