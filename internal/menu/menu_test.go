// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/internal/menu"
	"github.com/jackyyuan/lelemenu/pkg/bilingual"
)

func sichuanDish(id string) *dish.Dish {
	return &dish.Dish{
		ID:           id,
		Name:         bilingual.Text{En: id, Zh: id},
		Status:       dish.StatusUnlocked,
		CategoryID:   "c1",
		CategoryName: bilingual.Text{En: "Sichuan", Zh: "川菜"},
	}
}

func cantoneseDish(id string) *dish.Dish {
	return &dish.Dish{
		ID:           id,
		Name:         bilingual.Text{En: id, Zh: id},
		Status:       dish.StatusUnlocked,
		CategoryID:   "c2",
		CategoryName: bilingual.Text{En: "Cantonese", Zh: "粤菜"},
	}
}

func dishIDs(category *menu.Category) []string {
	ids := make([]string, 0, len(category.Dishes))
	for _, d := range category.Dishes {
		ids = append(ids, d.ID)
	}
	return ids
}

/*
TestAggregate_GroupsByCategory verifies the grouping is independent of input
order: two dishes in c1 and one in c2 always yield exactly two categories.
*/
func TestAggregate_GroupsByCategory(t *testing.T) {
	orders := [][]*dish.Dish{
		{sichuanDish("a"), sichuanDish("b"), cantoneseDish("x")},
		{cantoneseDish("x"), sichuanDish("a"), sichuanDish("b")},
		{sichuanDish("a"), cantoneseDish("x"), sichuanDish("b")},
	}

	for _, input := range orders {
		categories := menu.Aggregate(input)

		require.Len(t, categories, 2)
		assert.Equal(t, "c1", categories[0].ID)
		assert.Equal(t, []string{"a", "b"}, dishIDs(categories[0]))
		assert.Equal(t, "c2", categories[1].ID)
		assert.Equal(t, []string{"x"}, dishIDs(categories[1]))
	}
}

/*
TestAggregate_AppliesDefaults checks status/subcategory defaults and the
uncategorized bucket.
*/
func TestAggregate_AppliesDefaults(t *testing.T) {
	categories := menu.Aggregate([]*dish.Dish{
		{ID: "stray", Name: bilingual.Text{En: "Stray", Zh: "散"}},
	})

	require.Len(t, categories, 1)
	assert.Equal(t, menu.UncategorizedID, categories[0].ID)
	assert.Equal(t, menu.UncategorizedName, categories[0].Name)

	stray := categories[0].Dishes[0]
	assert.Equal(t, dish.StatusLocked, stray.Status)
	assert.Equal(t, dish.DefaultSubcategory, stray.SubcategoryName)
}

/*
TestView_ApplyCreate inserts into the category matched by name, creating the
category when it is unknown.
*/
func TestView_ApplyCreate(t *testing.T) {
	view := menu.NewView([]*dish.Dish{sichuanDish("a")})

	// Known category: appended by name match
	view.Apply(menu.Mutation{Kind: menu.MutationCreate, ID: "b", Dish: sichuanDish("b")})

	categories := view.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, []string{"a", "b"}, dishIDs(categories[0]))

	// Unknown category: a new group appears
	view.Apply(menu.Mutation{Kind: menu.MutationCreate, ID: "x", Dish: cantoneseDish("x")})

	categories = view.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, []string{"x"}, dishIDs(categories[1]))
	assert.Equal(t, "x", view.Get("x").ID)
}

/*
TestView_ApplyUpdate_Move verifies the move path: editing a dish to carry
another category's name relocates it with no duplication.
*/
func TestView_ApplyUpdate_Move(t *testing.T) {
	view := menu.NewView([]*dish.Dish{sichuanDish("a"), cantoneseDish("x")})

	moved := cantoneseDish("a")
	view.Apply(menu.Mutation{Kind: menu.MutationUpdate, ID: "a", Dish: moved})

	categories := view.Categories()
	require.Len(t, categories, 2)
	assert.Empty(t, dishIDs(categories[0]))
	assert.ElementsMatch(t, []string{"x", "a"}, dishIDs(categories[1]))
}

/*
TestView_ApplyUpdate_InPlace verifies an edit within the same category
replaces the record without changing its position.
*/
func TestView_ApplyUpdate_InPlace(t *testing.T) {
	view := menu.NewView([]*dish.Dish{sichuanDish("a"), sichuanDish("b")})

	edited := sichuanDish("a")
	edited.Status = dish.StatusTesting
	view.Apply(menu.Mutation{Kind: menu.MutationUpdate, ID: "a", Dish: edited})

	categories := view.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, []string{"a", "b"}, dishIDs(categories[0]))
	assert.Equal(t, dish.StatusTesting, view.Get("a").Status)
}

/*
TestView_ApplyDelete removes the dish from whichever category holds it.
*/
func TestView_ApplyDelete(t *testing.T) {
	view := menu.NewView([]*dish.Dish{sichuanDish("a"), sichuanDish("b")})

	view.Apply(menu.Mutation{Kind: menu.MutationDelete, ID: "a"})

	categories := view.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, []string{"b"}, dishIDs(categories[0]))
	assert.Nil(t, view.Get("a"))

	// Deleting an unknown id is a no-op
	view.Apply(menu.Mutation{Kind: menu.MutationDelete, ID: "ghost"})
	assert.Equal(t, []string{"b"}, dishIDs(view.Categories()[0]))
}
