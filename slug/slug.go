// Package slug turns English and Hindi titles into URL path segments.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// whitespaceRun also covers the Unicode spaces Go's \s leaves out.
	whitespaceRun   = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	nonWordOrHyphen = regexp.MustCompile(`[^\w-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	validSlug       = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)
)

// Slugify lowercases and trims s, turns whitespace runs into hyphens and
// drops everything that is not [A-Za-z0-9_-]. The result never starts or
// ends with a hyphen and Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	result := strings.TrimSpace(strings.ToLower(s))
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = nonWordOrHyphen.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValid reports whether s already has the shape Slugify produces.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}

// Fallback builds the time based slug used when a title produces nothing
// usable. Two calls within the same millisecond collide; the unique index
// on the slug columns turns that into a conflict.
func Fallback(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// OrFallback returns s unless it is empty.
func OrFallback(s, prefix string, now time.Time) string {
	if s == "" {
		return Fallback(prefix, now)
	}
	return s
}
