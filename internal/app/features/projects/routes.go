// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the public project pages.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// MountAdminRoutes mounts the admin project routes on the given router.
// Callers wrap the router in the session middleware.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/", h.AdminList)
	r.Get("/new", h.ShowNew)
	r.Post("/new", h.Create)
	r.Get("/{id}/edit", h.ShowEdit)
	r.Post("/{id}", h.Update)
	r.Post("/{id}/delete", h.Delete)
}
