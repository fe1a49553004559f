// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := basePageData(r, "Sign in required", "Please sign in to continue.", backURL)
	renderStatus(w, r, http.StatusUnauthorized, "error_forbidden", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	data := basePageData(r, "Access denied", msg, backURL)
	renderStatus(w, r, http.StatusForbidden, "error_forbidden", data)
}

// RenderNotFound shows the not-found page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := basePageData(r, "Not found", msg, backURL)
	renderStatus(w, r, http.StatusNotFound, "error_not_found", data)
}

// RenderBadRequest shows the bad-request page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	data := basePageData(r, "Invalid request", msg, backURL)
	renderStatus(w, r, http.StatusBadRequest, "error_bad_request", data)
}

// RenderServerError shows the server-error page with a message.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	data := basePageData(r, "Something went wrong", msg, backURL)
	renderStatus(w, r, http.StatusInternalServerError, "error_server", data)
}
