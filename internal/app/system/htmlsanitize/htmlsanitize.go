// Package htmlsanitize cleans operator-entered text before it is stored and
// later rendered by the dashboard.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps formatting markup (paragraphs, emphasis, lists, links) and
// strips scripts, event handlers and unsafe URLs.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// StripTags removes all markup, for single-line fields like the site name.
func StripTags(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
