// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// MountAdminRoutes mounts the admin member routes on the given router.
// Callers wrap the router in the session middleware.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/", h.AdminList)
	r.Get("/new", h.ShowNew)
	r.Post("/new", h.Create)
	r.Get("/{id}/edit", h.ShowEdit)
	r.Post("/{id}", h.Update)
	r.Post("/{id}/delete", h.Delete)
}
