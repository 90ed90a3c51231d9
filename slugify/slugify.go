package slugify

import (
	"regexp"
	"strings"
)

var (
	// stripRe removes everything except word chars, whitespace and hyphens.
	stripRe = regexp.MustCompile(`[^\w\s-]`)
	// collapseRe folds runs of whitespace, underscores and hyphens.
	collapseRe = regexp.MustCompile(`[\s_-]+`)
	trimRe     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe identifier from a title: lowercased, trimmed,
// special characters stripped, separator runs folded into single hyphens.
//
// Pure function. A title made entirely of special characters legally yields
// an empty string; callers decide what to do with that.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = stripRe.ReplaceAllString(s, "")
	s = collapseRe.ReplaceAllString(s, "-")
	s = trimRe.ReplaceAllString(s, "")
	return s
}
