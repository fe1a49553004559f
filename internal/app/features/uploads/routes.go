// internal/app/features/uploads/routes.go
package uploads

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoint. Callers mount this under the
// authenticated admin router.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Serve)
	return r
}
