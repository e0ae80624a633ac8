// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package sauce

import "context"

type Repository interface {
	ListSauces(context context.Context) ([]*Sauce, error)
	GetSauce(context context.Context, id string) (*Sauce, error)
	CreateSauce(context context.Context, id string, s *Sauce) (string, error)
	UpdateSauce(context context.Context, id string, patch Patch) error
	DeleteSauce(context context.Context, id string) error
}
