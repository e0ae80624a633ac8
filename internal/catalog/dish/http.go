// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package dish

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

// RegisterRoutes mounts the dish endpoints. Guards, when provided, wrap the
// mutating routes only; reads stay public.
func (handler *Handler) RegisterRoutes(router chi.Router, guards ...func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listDishes)
	router.Get("/{id}", handler.getDish)

	// Mutations (guarded when auth enforcement is on)
	router.Group(func(adminRoute chi.Router) {
		for _, guard := range guards {
			adminRoute.Use(guard)
		}

		adminRoute.Post("/", handler.createDish)
		adminRoute.Put("/{id}", handler.updateDish)
		adminRoute.Delete("/{id}", handler.deleteDish)
	})
}

func (handler *Handler) listDishes(writer http.ResponseWriter, request *http.Request) {
	dishes, err := handler.service.ListDishes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dishes)
}

func (handler *Handler) getDish(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	d, err := handler.service.GetDish(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, d)
}

func (handler *Handler) createDish(writer http.ResponseWriter, request *http.Request) {
	var input Dish
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.CreateDish(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) updateDish(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDish(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}

func (handler *Handler) deleteDish(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteDish(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.IDPayload{ID: id})
}
