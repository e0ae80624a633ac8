// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package tip

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

// idPrefix seeds the time-based fallback key for ingredient tips.
const idPrefix = "ingredient"

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

func (service *Service) ListTips(context context.Context) ([]*Tip, error) {
	tips, err := service.repo.ListTips(context)
	if err != nil {
		return nil, translate(err)
	}
	return tips, nil
}

func (service *Service) GetTip(context context.Context, id string) (*Tip, error) {
	t, err := service.repo.GetTip(context, id)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (service *Service) CreateTip(context context.Context, t *Tip) (string, error) {
	validator := &validate.Validator{}
	validator.Bilingual(FieldName, t.Name)

	if err := validator.Err(); err != nil {
		return "", err
	}

	id, err := service.repo.CreateTip(context, deriveID(t.ID, t.Name), t)
	if err != nil {
		return "", translate(err)
	}

	service.logger.Info("ingredient_tip_created", slog.String("tip_id", id))
	return id, nil
}

func (service *Service) UpdateTip(context context.Context, id string, patch Patch) error {
	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Custom(FieldName, patch.Name.IsZero(), "Name cannot be empty")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateTip(context, id, patch); err != nil {
		return translate(err)
	}

	service.logger.Info("ingredient_tip_updated", slog.String("tip_id", id))
	return nil
}

func (service *Service) DeleteTip(context context.Context, id string) error {
	if err := service.repo.DeleteTip(context, id); err != nil {
		return translate(err)
	}

	service.logger.Warn("ingredient_tip_deleted", slog.String("tip_id", id))
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
