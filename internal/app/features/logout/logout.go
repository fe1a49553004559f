// internal/app/features/logout/logout.go
package logout

import (
	"net/http"

	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler clears the admin session.
type Handler struct {
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a logout Handler.
func NewHandler(sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Sessions: sessions, Log: logger}
}

// Serve signs the user out and returns to the public landing page. A
// failed sign-out still redirects; the cookie is gone either way once it
// expires.
// POST /logout
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Warn("sign-out failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Routes returns the logout route.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Serve)
	return r
}
