// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package admin

import (
	"context"
	"log/slog"

	"github.com/jackyyuan/lelemenu/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAdmins(context context.Context) ([]*Admin, error) {
	admins, err := service.repo.ListAdmins(context)
	if err != nil {
		return nil, apperr.StoreError(err)
	}
	return admins, nil
}

// IsAdmin reports whether the email is on the allow-list.
//
// Matching is exact and case-sensitive: the allow-list holds the verified
// email exactly as the identity provider reports it.
func (service *Service) IsAdmin(context context.Context, email string) (bool, error) {
	admins, err := service.repo.ListAdmins(context)
	if err != nil {
		return false, apperr.StoreError(err)
	}

	for _, a := range admins {
		if a.Email == email {
			return true, nil
		}
	}

	service.logger.Warn("admin_check_denied", slog.String("email", email))
	return false, nil
}
