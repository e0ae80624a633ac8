// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package menu materializes the nested menu view from the flat dish list.

Categories are derived, never persisted: changing a dish's category fields
moves it between groups on the next aggregation pass. The package offers two
entry points: Aggregate rebuilds the grouping from scratch, and View keeps an
indexed copy of the grouping current across mutations without a full reload.
*/
package menu

import (
	"sort"

	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/pkg/bilingual"
)

// UncategorizedID keys the bucket for dishes without a category.
const UncategorizedID = "uncategorized"

// UncategorizedName labels the bucket for dishes without a category.
var UncategorizedName = bilingual.Text{En: "Uncategorized", Zh: "未分类"}

// Category is one derived group of the menu view.
type Category struct {
	ID     string         `json:"id"`
	Name   bilingual.Text `json:"name"`
	Dishes []*dish.Dish   `json:"dishes"`
}

// Aggregate groups the flat dish list by category id.
//
// Missing status and subcategory fields receive their defaults, and dishes
// with no category id land in the uncategorized bucket. Categories are
// ordered by id so the result does not depend on input order; dishes keep
// their input order within each category. The category display name is taken
// from the first dish that carries one.
func Aggregate(dishes []*dish.Dish) []*Category {
	index := map[string]*Category{}
	for _, d := range dishes {
		applyDefaults(d)

		id := d.CategoryID
		name := d.CategoryName
		if id == "" {
			id = UncategorizedID
			name = UncategorizedName
		}

		category, ok := index[id]
		if !ok {
			category = &Category{ID: id, Name: name, Dishes: []*dish.Dish{}}
			index[id] = category
		}
		if category.Name.IsZero() {
			category.Name = name
		}

		category.Dishes = append(category.Dishes, d)
	}

	categories := make([]*Category, 0, len(index))
	for _, category := range index {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

// applyDefaults fills the invariant defaults on a dish read from storage.
func applyDefaults(d *dish.Dish) {
	if d.Status == "" {
		d.Status = dish.StatusLocked
	}
	if d.SubcategoryName.IsZero() {
		d.SubcategoryName = dish.DefaultSubcategory
	}
}
