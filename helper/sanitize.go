package helper

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicy    = bluemonday.UGCPolicy()
	commentPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML strips scripts, event handlers and unknown markup from an
// article body while keeping editor formatting.
func SanitizeHTML(s *string) *string {
	if s == nil {
		return nil
	}
	out := bodyPolicy.Sanitize(*s)
	return &out
}

// SanitizeText removes every tag, for reader supplied comments.
func SanitizeText(s string) string {
	return strings.TrimSpace(commentPolicy.Sanitize(s))
}
