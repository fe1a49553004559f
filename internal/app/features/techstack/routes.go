// internal/app/features/techstack/routes.go
package techstack

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the public tech stack page.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// MountAdminRoutes mounts the admin tech stack routes on the given
// router. Callers wrap the router in the session middleware.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/", h.AdminList)
	r.Get("/new", h.ShowNew)
	r.Post("/new", h.Create)
	r.Post("/{id}/delete", h.Delete)
}
