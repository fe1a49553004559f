// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/store/oauthstate"
	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// stateTTL bounds how long a started OAuth flow stays redeemable.
const stateTTL = 10 * time.Minute

// Handler handles Google sign-in for admin accounts. Google never creates
// accounts here; the callback only signs in users that already exist.
type Handler struct {
	DB         *mongo.Database
	Users      *userstore.Store
	StateStore *oauthstate.Store
	Sessions   *auth.SessionManager
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger

	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewHandler constructs an authgoogle Handler. baseURL is the externally
// visible origin, e.g. "https://cerc.club".
func NewHandler(db *mongo.Database, sessions *auth.SessionManager, clientID, clientSecret, baseURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Users:        userstore.New(db),
		StateStore:   oauthstate.New(db),
		Sessions:     sessions,
		Log:          logger,
		ErrLog:       errLog,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
	}
}

// IsConfigured reports whether Google OAuth credentials are present.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// ServeLogin starts the OAuth flow: persist a single-use state, then
// redirect to Google's consent screen.
// GET /auth/google
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("google oauth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("generate oauth state failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	returnURL := query.Get(r, "return")
	if err := h.StateStore.Save(ctx, state, returnURL, time.Now().UTC().Add(stateTTL)); err != nil {
		h.Log.Error("save oauth state failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback finishes the OAuth flow: validate the state, exchange the
// code, fetch the Google profile, and sign in the matching admin account.
// GET /auth/google/callback
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google oauth denied",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	returnURL, valid, err := h.StateStore.Validate(ctx, state)
	if err != nil {
		h.Log.Error("validate oauth state failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}
	if !valid {
		h.Log.Warn("invalid or expired oauth state")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), code)
	if err != nil {
		h.Log.Error("oauth code exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	profile, err := fetchGoogleUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("fetch google user info failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	user, err := h.Users.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Log.Info("google sign-in for unknown account", zap.String("email", profile.Email))
			http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
			return
		}
		h.Log.Error("load user failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	su := &auth.SessionUser{ID: user.ID.Hex(), Name: user.Name, Email: user.Email}
	if err := h.Sessions.SignIn(w, r, su); err != nil {
		h.Log.Error("sign-in failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("user signed in via google", zap.String("user_id", user.ID.Hex()))
	http.Redirect(w, r, auth.SafeReturnPath(returnURL, "/admin/dashboard"), http.StatusSeeOther)
}

// googleUserInfo is the subset of Google's userinfo response we read.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}

// generateState creates a cryptographically secure random state string.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
