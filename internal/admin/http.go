// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jackyyuan/lelemenu/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin endpoints. The allow-list is read-only
// over HTTP; entries are managed directly in the document store.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAdmins)
}

func (handler *Handler) listAdmins(writer http.ResponseWriter, request *http.Request) {
	admins, err := handler.service.ListAdmins(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, admins)
}
