// Package sanitize strips markup from free-text report and comment fields
// before they reach persistence.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from a free-text field, unescapes the entity-encoded
// remainder and trims surrounding whitespace. Report problem/plan, visit
// content and comment content all pass through here.
func Text(s string) string {
	cleaned := policy.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// TextPtr sanitizes an optional field in place, preserving nil.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Text(*s)
	return &cleaned
}
