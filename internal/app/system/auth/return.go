// internal/app/system/auth/return.go
package auth

import "strings"

// SafeReturnPath validates a post-login return target taken from a query
// parameter. Only site-local absolute paths are accepted; anything else
// (external URLs, scheme-relative "//host" tricks, empty values) falls
// back to the given default.
func SafeReturnPath(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return fallback
	}
	if strings.ContainsAny(raw, "\r\n\\") {
		return fallback
	}
	return raw
}
