// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package safeid_test

import (
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyyuan/lelemenu/pkg/safeid"
)

/*
TestDerive verifies the sanitization pipeline for representative names.
*/
func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii_lowercase", "mapo tofu", "mapo_tofu"},
		{"mixed_case", "Mapo Tofu", "mapo_tofu"},
		{"chinese_preserved", "红烧肉", "红烧肉"},
		{"mixed_languages", "红烧肉 Braised Pork", "红烧肉_braised_pork"},
		{"punctuation_collapsed", "fish & chips!!", "fish_chips"},
		{"leading_trailing_stripped", "  ~spicy~  ", "spicy"},
		{"accents_folded", "Café au lait", "cafe_au_lait"},
		{"digits_kept", "dish no. 42", "dish_no_42"},
		{"underscore_runs_collapsed", "a - - b", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeid.Derive(tt.input))
		})
	}
}

/*
TestDerive_PermittedCharacters checks that every output rune belongs to the
permitted classes: ASCII lowercase letters, ASCII digits, Han ideographs,
and single separating underscores.
*/
func TestDerive_PermittedCharacters(t *testing.T) {
	inputs := []string{
		"Kung Pao Chicken 宫保鸡丁",
		"crème brûlée",
		"123 · 456",
		"ｆｕｌｌｗｉｄｔｈ",
		"snow❄crab🦀",
	}

	for _, input := range inputs {
		derived := safeid.Derive(input)
		require.NotEmpty(t, derived)
		assert.False(t, strings.HasPrefix(derived, "_"))
		assert.False(t, strings.HasSuffix(derived, "_"))
		assert.NotContains(t, derived, "__")

		for _, r := range derived {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || unicode.Is(unicode.Han, r)
			assert.True(t, ok, "unexpected rune %q in %q", r, derived)
		}
	}
}

/*
TestDerive_Fallback verifies that names reducing to nothing produce a
"<prefix>_<millis>" key with a numeric token.
*/
func TestDerive_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
	}{
		{"emoji_only_default_prefix", "🔥🔥🔥", "item"},
		{"punctuation_only", "!!!", "item"},
		{"empty_input", "", "item"},
		{"collection_prefix", "???", "dish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var derived string
			if tt.prefix == "item" {
				derived = safeid.Derive(tt.input)
			} else {
				derived = safeid.DeriveWithPrefix(tt.input, tt.prefix)
			}

			require.True(t, strings.HasPrefix(derived, tt.prefix+"_"), "got %q", derived)

			token := strings.TrimPrefix(derived, tt.prefix+"_")
			_, err := strconv.ParseInt(token, 10, 64)
			assert.NoError(t, err, "fallback token must be numeric, got %q", token)
		})
	}
}
