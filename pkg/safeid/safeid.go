// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

// Package safeid derives storage-safe document keys from bilingual display names.
//
// # Usage
//
// Derived ids are used as Firestore document keys for dishes, ingredient tips,
// and sauce recipes (e.g., "红烧肉" → "红烧肉", "Mapo Tofu!" → "mapo_tofu").
// Han ideographs are kept so Chinese-named documents stay human-readable;
// everything else outside ASCII letters and digits collapses to underscores.
package safeid

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPrefix is the fallback prefix used by [Derive] when a name reduces
// to nothing after sanitization.
const DefaultPrefix = "item"

// Derive converts a display name into a storage-safe document key using the
// default fallback prefix.
func Derive(name string) string {
	return DeriveWithPrefix(name, DefaultPrefix)
}

// DeriveWithPrefix converts a display name into a storage-safe document key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Converts to lowercase.
// 3. Keeps ASCII letters, ASCII digits, and Han ideographs; everything else
//    becomes an underscore.
// 4. Collapses runs of underscores and trims leading/trailing underscores.
//
// When the result is empty (emoji-only names, pure punctuation), the returned
// key is "<prefix>_<unixMillis>" so the output is never empty.
func DeriveWithPrefix(name, prefix string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, name)

	result = strings.ToLower(result)

	var b strings.Builder
	b.Grow(len(result))
	lastUnderscore := false
	for _, r := range result {
		if isSafe(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	derived := strings.Trim(b.String(), "_")
	if derived == "" {
		return Fallback(prefix)
	}
	return derived
}

// Fallback returns a time-based key of the form "<prefix>_<unixMillis>".
//
// The key is unique only down to the millisecond; concurrent callers in the
// same millisecond collide, which the creation path surfaces as a conflict.
func Fallback(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// isSafe reports whether r may appear in a derived key.
func isSafe(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	return unicode.Is(unicode.Han, r)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
