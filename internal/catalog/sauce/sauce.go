// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

// Package sauce implements the sauce-recipe resource: bilingual instructions
// for the house sauces referenced by dishes.
package sauce

import "github.com/jackyyuan/lelemenu/pkg/bilingual"

// Sauce represents one sauce_recipes document.
type Sauce struct {
	ID     string         `json:"id"`
	Name   bilingual.Text `json:"name"`
	Recipe bilingual.Text `json:"recipe"`
}

// Patch carries a partial update. Nil fields are left untouched; set fields
// replace the stored value wholesale.
type Patch struct {
	Name   *bilingual.Text `json:"name"`
	Recipe *bilingual.Text `json:"recipe"`
}

// Fields returns the set fields as a storage patch map.
func (p Patch) Fields() map[string]any {
	fields := map[string]any{}

	if p.Name != nil {
		fields[FieldName] = map[string]any{"en": p.Name.En, "zh": p.Name.Zh}
	}
	if p.Recipe != nil {
		fields[FieldRecipe] = map[string]any{"en": p.Recipe.En, "zh": p.Recipe.Zh}
	}

	return fields
}

// Global field names for validation and storage patches
const (
	FieldName   = "name"
	FieldRecipe = "recipe"
)
