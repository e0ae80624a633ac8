// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package sauce

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackyyuan/lelemenu/internal/platform/apperr"
	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
	"github.com/jackyyuan/lelemenu/internal/platform/validate"
	"github.com/jackyyuan/lelemenu/pkg/bilingual"
	"github.com/jackyyuan/lelemenu/pkg/safeid"
)

// idPrefix seeds the time-based fallback key for sauce recipes.
const idPrefix = "sauce"

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

func (service *Service) ListSauces(context context.Context) ([]*Sauce, error) {
	sauces, err := service.repo.ListSauces(context)
	if err != nil {
		return nil, translate(err)
	}
	return sauces, nil
}

func (service *Service) GetSauce(context context.Context, id string) (*Sauce, error) {
	s, err := service.repo.GetSauce(context, id)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (service *Service) CreateSauce(context context.Context, s *Sauce) (string, error) {
	validator := &validate.Validator{}
	validator.Bilingual(FieldName, s.Name)

	if err := validator.Err(); err != nil {
		return "", err
	}

	id, err := service.repo.CreateSauce(context, deriveID(s.ID, s.Name), s)
	if err != nil {
		return "", translate(err)
	}

	service.logger.Info("sauce_recipe_created", slog.String("sauce_id", id))
	return id, nil
}

func (service *Service) UpdateSauce(context context.Context, id string, patch Patch) error {
	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Custom(FieldName, patch.Name.IsZero(), "Name cannot be empty")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateSauce(context, id, patch); err != nil {
		return translate(err)
	}

	service.logger.Info("sauce_recipe_updated", slog.String("sauce_id", id))
	return nil
}

func (service *Service) DeleteSauce(context context.Context, id string) error {
	if err := service.repo.DeleteSauce(context, id); err != nil {
		return translate(err)
	}

	service.logger.Warn("sauce_recipe_deleted", slog.String("sauce_id", id))
	return nil
}

func deriveID(supplied string, name bilingual.Text) string {
	if supplied != "" {
		return supplied
	}
	if name.Zh != "" {
		return safeid.DeriveWithPrefix(name.Zh, idPrefix)
	}
	if name.En != "" {
		return safeid.DeriveWithPrefix(name.En, idPrefix)
	}
	return safeid.Fallback(idPrefix)
}

func translate(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return apperr.NotFound("Item")
	case errors.Is(err, docstore.ErrConflict):
		return apperr.Conflict("Item with this name already exists")
	default:
		return apperr.StoreError(err)
	}
}
