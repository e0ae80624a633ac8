// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package menu

import "github.com/jackyyuan/lelemenu/internal/catalog/dish"

// Mutation kinds accepted by [View.Apply].
const (
	MutationCreate = "create"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// Mutation describes one confirmed catalog change: the kind, the id the
// server settled on, and (for create/update) the dish as saved.
type Mutation struct {
	Kind string
	ID   string
	Dish *dish.Dish
}

// View is an indexed copy of the grouped menu that stays consistent across
// mutations without rebuilding the aggregation from scratch.
//
// # Concurrency
//
// View is not safe for concurrent use; callers serialize access.
type View struct {
	index      map[string]*dish.Dish
	categories []*Category
}

// NewView builds a view from the current dish list.
func NewView(dishes []*dish.Dish) *View {
	view := &View{index: make(map[string]*dish.Dish, len(dishes))}
	view.categories = Aggregate(dishes)

	for _, category := range view.categories {
		for _, d := range category.Dishes {
			view.index[d.ID] = d
		}
	}

	return view
}

// Categories returns the grouped view in its current state.
func (view *View) Categories() []*Category {
	return view.categories
}

// Get returns the indexed dish for an id, or nil when unknown.
func (view *View) Get(id string) *dish.Dish {
	return view.index[id]
}

// Apply reconciles the view with one confirmed mutation.
//
// Creates append to the category matching the dish's category name; updates
// replace in place or move the dish when its category changed; deletes remove
// the dish from whichever category holds it. A dish is never duplicated
// across categories.
func (view *View) Apply(mutation Mutation) {
	switch mutation.Kind {
	case MutationCreate:
		view.insert(mutation.ID, mutation.Dish)

	case MutationUpdate:
		previous := view.categoryOf(mutation.ID)
		target := view.target(mutation.Dish)

		if previous == target && previous != nil {
			view.replaceInPlace(previous, mutation.ID, mutation.Dish)
			view.index[mutation.ID] = mutation.Dish
			return
		}

		// Moved between categories
		view.removeFromCategory(previous, mutation.ID)
		view.insert(mutation.ID, mutation.Dish)

	case MutationDelete:
		view.removeFromCategory(view.categoryOf(mutation.ID), mutation.ID)
		delete(view.index, mutation.ID)
	}
}

// insert places a dish into its target category, creating the category when
// no existing one matches.
func (view *View) insert(id string, d *dish.Dish) {
	applyDefaults(d)
	d.ID = id

	category := view.target(d)
	if category == nil {
		categoryID := d.CategoryID
		name := d.CategoryName
		if categoryID == "" {
			categoryID = UncategorizedID
			name = UncategorizedName
		}
		category = &Category{ID: categoryID, Name: name, Dishes: []*dish.Dish{}}
		view.categories = append(view.categories, category)
	}

	category.Dishes = append(category.Dishes, d)
	view.index[id] = d
}

// target finds the category a dish belongs to by matching both locales of
// its category name.
func (view *View) target(d *dish.Dish) *Category {
	if d.CategoryID == "" && d.CategoryName.IsZero() {
		for _, category := range view.categories {
			if category.ID == UncategorizedID {
				return category
			}
		}
		return nil
	}

	for _, category := range view.categories {
		if category.Name.En == d.CategoryName.En && category.Name.Zh == d.CategoryName.Zh {
			return category
		}
	}
	return nil
}

// categoryOf scans all categories for the one currently holding an id.
func (view *View) categoryOf(id string) *Category {
	for _, category := range view.categories {
		for _, d := range category.Dishes {
			if d.ID == id {
				return category
			}
		}
	}
	return nil
}

func (view *View) replaceInPlace(category *Category, id string, d *dish.Dish) {
	applyDefaults(d)
	d.ID = id

	for i, existing := range category.Dishes {
		if existing.ID == id {
			category.Dishes[i] = d
			return
		}
	}
}

func (view *View) removeFromCategory(category *Category, id string) {
	if category == nil {
		return
	}

	for i, d := range category.Dishes {
		if d.ID == id {
			category.Dishes = append(category.Dishes[:i], category.Dishes[i+1:]...)
			return
		}
	}
}
