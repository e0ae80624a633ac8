// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

// Package bilingual defines the parallel English/Chinese text value used by
// every display field in the catalog.
package bilingual

// Text holds the English and Chinese renderings of one semantic value.
//
// Both locales are required on primary name fields at creation time; partial
// updates replace the whole value (locales are not merged individually).
type Text struct {
	En string `json:"en"`
	Zh string `json:"zh"`
}

// IsZero reports whether both locales are empty.
func (t Text) IsZero() bool {
	return t.En == "" && t.Zh == ""
}

// HasBoth reports whether both locales are non-empty.
func (t Text) HasBoth() bool {
	return t.En != "" && t.Zh != ""
}

// In returns the rendering for the given language code ("en" or "zh"),
// falling back to the other locale when the requested one is empty.
func (t Text) In(lang string) string {
	if lang == "zh" {
		if t.Zh != "" {
			return t.Zh
		}
		return t.En
	}
	if t.En != "" {
		return t.En
	}
	return t.Zh
}
