// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package dish

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

// idPrefix seeds the time-based fallback key for dishes.
const idPrefix = "dish"

// DefaultSubcategory is assigned when a dish is created without one.
var DefaultSubcategory = bilingual.Text{En: "Others", Zh: "其他"}

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

func (service *Service) ListDishes(context context.Context) ([]*Dish, error) {
	dishes, err := service.repo.ListDishes(context)
	if err != nil {
		return nil, translate(err)
	}
	return dishes, nil
}

func (service *Service) GetDish(context context.Context, id string) (*Dish, error) {
	d, err := service.repo.GetDish(context, id)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

func (service *Service) CreateDish(context context.Context, d *Dish) (string, error) {
	validator := &validate.Validator{}

	validator.Bilingual(FieldName, d.Name)
	if d.Status != "" {
		validator.OneOf(FieldStatus, d.Status, StatusUnlocked, StatusTesting, StatusLocked)
	}
	if d.Rating != nil {
		validator.Rating(FieldRating, *d.Rating)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	// Apply creation defaults
	if d.Status == "" {
		d.Status = StatusLocked
	}
	if d.SubcategoryName.IsZero() {
		d.SubcategoryName = DefaultSubcategory
	}

	id, err := service.repo.CreateDish(context, deriveID(d.ID, d.Name), d)
	if err != nil {
		return "", translate(err)
	}

	service.logger.Info("dish_created",
		slog.String("dish_id", id),
		slog.String("name", d.Name.En),
	)
	return id, nil
}

func (service *Service) UpdateDish(context context.Context, id string, patch Patch) error {
	validator := &validate.Validator{}

	if patch.Name != nil {
		validator.Custom(FieldName, patch.Name.IsZero(), "Name cannot be empty")
	}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, *patch.Status, StatusUnlocked, StatusTesting, StatusLocked)
	}
	if patch.Rating != nil {
		validator.Rating(FieldRating, *patch.Rating)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateDish(context, id, patch); err != nil {
		return translate(err)
	}

	service.logger.Info("dish_updated", slog.String("dish_id", id))
	return nil
}

func (service *Service) DeleteDish(context context.Context, id string) error {
	if err := service.repo.DeleteDish(context, id); err != nil {
		return translate(err)
	}

	service.logger.Warn("dish_deleted", slog.String("dish_id", id))
	return nil
}

// deriveID honors a caller-supplied id and otherwise derives a key from the
// Chinese name, falling back to the English one.
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

// translate maps docstore sentinels onto the API error taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return apperr.NotFound("Dish")
	case errors.Is(err, docstore.ErrConflict):
		return apperr.Conflict("Item with this name already exists")
	default:
		return apperr.StoreError(err)
	}
}
