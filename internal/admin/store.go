// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package admin

import "context"

type Repository interface {
	ListAdmins(context context.Context) ([]*Admin, error)
}
