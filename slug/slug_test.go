package slug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses whitespace and drops punctuation", "Hello   World!!", "hello-world"},
		{"trims surrounding hyphens", "  --Hello--World--  ", "hello-world"},
		{"keeps underscores and digits", "Budget_2024 Highlights", "budget_2024-highlights"},
		{"strips non ascii letters", "Café Society", "caf-society"},
		{"tabs and newlines", "Breaking\tNews\nToday", "breaking-news-today"},
		{"spaced hyphen", "India - Pakistan", "india-pakistan"},
		{"only symbols", "!@#$%^&*()", ""},
		{"devanagari is dropped", "हिंदी समाचार", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"Hello   World!!",
		"  --a -- b--  ",
		"Ünïcödé — dashes – everywhere",
		"KKelvin",
		"मुंबई Mumbai 2024",
		"___",
		"- - -",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("hello-world"))
	assert.True(t, IsValid("budget_2024"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("-hello"))
	assert.False(t, IsValid("hello--world"))
	assert.False(t, IsValid("Hello"))
}

func TestFallback(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	assert.Equal(t, "hi-1718000000123", Fallback("hi", now))
	assert.Equal(t, "en-1718000000123", OrFallback("", "en", now))
	assert.Equal(t, "kept", OrFallback("kept", "en", now))
}
