// internal/app/features/divisions/routes.go
package divisions

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the public division pages.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{slug}", h.Detail)
	r.Get("/{slug}/projects", h.DetailProjects)
	r.Get("/{slug}/members", h.DetailMembers)
	r.Get("/{slug}/achievements", h.DetailAchievements)
	return r
}

// MountAdminRoutes mounts the admin division routes on the given router.
// Callers wrap the router in the session middleware.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/", h.AdminList)
	r.Get("/new", h.ShowNew)
	r.Post("/new", h.Create)
	r.Get("/manage/{slug}", h.Manager)
	r.Get("/{id}/edit", h.ShowEdit)
	r.Post("/{id}", h.Update)
	r.Post("/{id}/delete", h.Delete)
}
