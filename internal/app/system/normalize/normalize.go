// Package normalize provides canonical forms for user-supplied identity
// fields before they are stored or compared.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Slug lowercases, trims, and collapses interior whitespace to hyphens so
// a human-typed title can be offered as a URL-safe slug suggestion.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}
