// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/internal/platform/apperr"
	"github.com/jackyyuan/lelemenu/internal/platform/validate"
	"github.com/jackyyuan/lelemenu/pkg/bilingual"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Lelemenu", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Bilingual verifies that both locales of a name are demanded,
with per-locale field paths in the details.
*/
func TestValidator_Bilingual(t *testing.T) {
	tests := []struct {
		name       string
		value      bilingual.Text
		wantFields []string
	}{
		{"both_present", bilingual.Text{En: "Tofu", Zh: "豆腐"}, nil},
		{"missing_english", bilingual.Text{Zh: "豆腐"}, []string{"name.en"}},
		{"missing_chinese", bilingual.Text{En: "Tofu"}, []string{"name.zh"}},
		{"missing_both", bilingual.Text{}, []string{"name.en", "name.zh"}},
		{"whitespace_only", bilingual.Text{En: "  ", Zh: "豆腐"}, []string{"name.en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Bilingual("name", tt.value).Err()

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.Len(t, ae.Details, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, ae.Details[i].Field)
			}
		})
	}
}

/*
TestValidator_Rating checks the (0, 100] interval rule.
*/
func TestValidator_Rating(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		isValid bool
	}{
		{"lower_bound_excluded", 0, false},
		{"negative", -5, false},
		{"just_above_zero", 0.5, true},
		{"upper_bound_included", 100, true},
		{"above_upper_bound", 100.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Rating("rating", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("id", "mapo_tofu").
		MaxLen("id", "mapo_tofu", 100).
		OneOf("status", "locked", "unlocked", "testing", "locked").
		Email("email", "jacky@lelemenu.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("id", "").                                   // Fails
		OneOf("status", "frozen", "unlocked", "testing").     // Fails
		Custom("rating", true, "Must be greater than zero").  // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
