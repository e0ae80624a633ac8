// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

// Package tip implements the ingredient-tip resource: short bilingual notes
// on how to pick, prepare, or substitute an ingredient.
package tip

import "github.com/jackyyuan/lelemenu/pkg/bilingual"

// Tip represents one ingredient_tips document.
type Tip struct {
	ID          string         `json:"id"`
	Name        bilingual.Text `json:"name"`
	Description bilingual.Text `json:"description"`
}

// Patch carries a partial update. Nil fields are left untouched; set fields
// replace the stored value wholesale.
type Patch struct {
	Name        *bilingual.Text `json:"name"`
	Description *bilingual.Text `json:"description"`
}

// Fields returns the set fields as a storage patch map.
func (p Patch) Fields() map[string]any {
	fields := map[string]any{}

	if p.Name != nil {
		fields[FieldName] = map[string]any{"en": p.Name.En, "zh": p.Name.Zh}
	}
	if p.Description != nil {
		fields[FieldDescription] = map[string]any{"en": p.Description.En, "zh": p.Description.Zh}
	}

	return fields
}

// Global field names for validation and storage patches
const (
	FieldName        = "name"
	FieldDescription = "description"
)
