// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package dish implements the dish resource of the menu catalog.

A dish is the central record of the menu: a bilingual name, a lifecycle
status, its category placement, and optional rating, emoji, and notes.
Dishes are grouped into the nested menu view by the menu package.
*/
package dish

import "github.com/jackyyuan/lelemenu/pkg/bilingual"

// Lifecycle states of a dish on the menu.
const (
	StatusUnlocked = "unlocked"
	StatusTesting  = "testing"
	StatusLocked   = "locked"
)

// Dish represents one dish document in the catalog.
type Dish struct {
	ID              string          `json:"id"`
	Name            bilingual.Text  `json:"name"`
	Status          string          `json:"status"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    bilingual.Text  `json:"categoryName"`
	SubcategoryName bilingual.Text  `json:"subcategoryName"`
	Rating          *float64        `json:"rating,omitempty"`
	Emoji           string          `json:"emoji,omitempty"`
	Notes           *bilingual.Text `json:"notes,omitempty"`
}

// Patch carries a partial update. Nil fields are left untouched; set fields
// replace the stored value wholesale (bilingual values are not merged per
// locale).
type Patch struct {
	Name            *bilingual.Text `json:"name"`
	Status          *string         `json:"status"`
	CategoryID      *string         `json:"categoryId"`
	CategoryName    *bilingual.Text `json:"categoryName"`
	SubcategoryName *bilingual.Text `json:"subcategoryName"`
	Rating          *float64        `json:"rating"`
	Emoji           *string         `json:"emoji"`
	Notes           *bilingual.Text `json:"notes"`
}

// Fields returns the set fields as a storage patch map.
func (p Patch) Fields() map[string]any {
	fields := map[string]any{}

	if p.Name != nil {
		fields[FieldName] = textMap(*p.Name)
	}
	if p.Status != nil {
		fields[FieldStatus] = *p.Status
	}
	if p.CategoryID != nil {
		fields[FieldCategoryID] = *p.CategoryID
	}
	if p.CategoryName != nil {
		fields[FieldCategoryName] = textMap(*p.CategoryName)
	}
	if p.SubcategoryName != nil {
		fields[FieldSubcategoryName] = textMap(*p.SubcategoryName)
	}
	if p.Rating != nil {
		fields[FieldRating] = *p.Rating
	}
	if p.Emoji != nil {
		fields[FieldEmoji] = *p.Emoji
	}
	if p.Notes != nil {
		fields[FieldNotes] = textMap(*p.Notes)
	}

	return fields
}

// Global field names for validation and storage patches
const (
	FieldName            = "name"
	FieldStatus          = "status"
	FieldCategoryID      = "categoryId"
	FieldCategoryName    = "categoryName"
	FieldSubcategoryName = "subcategoryName"
	FieldRating          = "rating"
	FieldEmoji           = "emoji"
	FieldNotes           = "notes"
)

// textMap converts a bilingual value into its stored map shape.
func textMap(t bilingual.Text) map[string]any {
	return map[string]any{"en": t.En, "zh": t.Zh}
}
