// Package htmlsanitize strips unsafe markup from user-supplied rich text
// before it is stored. Description fields accept limited formatting; all
// scripts, event handlers, and javascript: URLs are removed.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Safe formatting tags
// (p, strong, em, lists, links with http/https hrefs) are preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeHTML is Sanitize with a template.HTML result, for fields that
// are rendered without re-escaping.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
