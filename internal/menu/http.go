// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package menu

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/internal/platform/respond"
)

// DishLister provides the flat dish list the aggregation is built from.
type DishLister interface {
	ListDishes(ctx context.Context) ([]*dish.Dish, error)
}

type Handler struct {
	dishes DishLister
}

func NewHandler(dishes DishLister) *Handler {
	return &Handler{dishes: dishes}
}

// RegisterRoutes mounts the aggregated menu endpoint.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getMenu)
}

func (handler *Handler) getMenu(writer http.ResponseWriter, request *http.Request) {
	dishes, err := handler.dishes.ListDishes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Aggregate(dishes))
}
