// internal/app/features/login/login.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// formData is the view model for the sign-in form.
type formData struct {
	formutil.Base
	Email         string
	Return        string
	GoogleEnabled bool
}

// ShowForm renders the sign-in form. An already signed-in user is sent
// straight to the dashboard.
// GET /login
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	data := formData{
		Return:        query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	}
	formutil.SetBase(&data.Base, r, "Sign In", "/")
	if msg := oauthErrorMessage(query.Get(r, "error")); msg != "" {
		data.SetError(msg)
	}
	templates.Render(w, r, "login", data)
}

// oauthErrorMessage maps the error codes the Google sign-in flow redirects
// back with to user-facing messages. Unknown codes render nothing.
func oauthErrorMessage(code string) string {
	switch code {
	case "":
		return ""
	case "google_not_configured":
		return "Google sign-in is not configured on this server."
	case "google_denied":
		return "Google sign-in was cancelled."
	case "no_account":
		return "No admin account exists for that Google email."
	case "invalid_state", "invalid_code", "token_exchange", "user_info", "session", "internal":
		return "Google sign-in failed. Please try again."
	default:
		return ""
	}
}

// Submit handles the sign-in form POST. Unknown email and wrong password
// produce the same message so the form does not leak which admin accounts
// exist.
// POST /login
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnTo := r.FormValue("return")

	renderWithError := func(msg string) {
		data := formData{
			Email:         email,
			Return:        returnTo,
			GoogleEnabled: h.GoogleEnabled,
		}
		formutil.SetBase(&data.Base, r, "Sign In", "/")
		data.SetError(msg)
		templates.Render(w, r, "login", data)
	}

	if email == "" || password == "" {
		renderWithError("Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			renderWithError("Incorrect email or password.")
			return
		}
		h.ErrLog.LogServerError(w, r, "load user failed", err, "A database error occurred.", "/login")
		return
	}
	if user.PasswordHash == "" {
		// Google-only account; no password to check.
		renderWithError("Incorrect email or password.")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		renderWithError("Incorrect email or password.")
		return
	}

	su := &auth.SessionUser{ID: user.ID.Hex(), Name: user.Name, Email: user.Email}
	if err := h.Sessions.SignIn(w, r, su); err != nil {
		h.Log.Error("sign-in failed", zap.Error(err))
		renderWithError("Could not establish a session. Please try again.")
		return
	}

	http.Redirect(w, r, auth.SafeReturnPath(returnTo, "/admin/dashboard"), http.StatusSeeOther)
}
