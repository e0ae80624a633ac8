// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package dish

import "context"

type Repository interface {
	ListDishes(context context.Context) ([]*Dish, error)
	GetDish(context context.Context, id string) (*Dish, error)
	CreateDish(context context.Context, id string, d *Dish) (string, error)
	UpdateDish(context context.Context, id string, patch Patch) error
	DeleteDish(context context.Context, id string) error
}
