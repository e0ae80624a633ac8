// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package tip

import "context"

type Repository interface {
	ListTips(context context.Context) ([]*Tip, error)
	GetTip(context context.Context, id string) (*Tip, error)
	CreateTip(context context.Context, id string, t *Tip) (string, error)
	UpdateTip(context context.Context, id string, patch Patch) error
	DeleteTip(context context.Context, id string) error
}
