// Package tags derives a project's tag list from the comma-separated
// string submitted by admin forms.
package tags

import "strings"

// Split splits input on commas and trims whitespace from each segment.
// Empty segments are preserved: "a,,b" yields ["a", "", "b"]. This mirrors
// how tags have always been stored, so existing rows and new writes agree.
func Split(input string) []string {
	if input == "" {
		return []string{""}
	}
	parts := strings.Split(input, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// Join renders a stored tag list back into the comma-separated form used
// to pre-fill edit forms.
func Join(tags []string) string {
	return strings.Join(tags, ", ")
}
