// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Routes returns the sign-in routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	return r
}
