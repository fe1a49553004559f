package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cerc-club/clubsite/internal/app/features/authgoogle"
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, clientID, clientSecret string) *authgoogle.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	sessions, err := auth.NewSessionManager("", "clubsite_test_session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	return authgoogle.NewHandler(db, sessions, clientID, clientSecret, "http://localhost:8080", errLog, logger)
}

func TestIsConfigured(t *testing.T) {
	if !newTestHandler(t, "id", "secret").IsConfigured() {
		t.Error("IsConfigured() = false with credentials present")
	}
	if newTestHandler(t, "", "").IsConfigured() {
		t.Error("IsConfigured() = true without credentials")
	}
}

func TestServeLogin_NotConfigured(t *testing.T) {
	handler := newTestHandler(t, "", "")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()
	handler.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_not_configured") {
		t.Errorf("Location = %q, want google_not_configured", loc)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	handler := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google?return=/admin/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("Location = %q, want accounts.google.com", loc)
	}
}

func TestServeCallback_MissingState(t *testing.T) {
	handler := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?code=test-code", nil)
	rec := httptest.NewRecorder()
	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "invalid_state") {
		t.Errorf("Location = %q, want invalid_state", loc)
	}
}

func TestServeCallback_UnknownState(t *testing.T) {
	handler := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?state=bogus&code=test-code", nil)
	rec := httptest.NewRecorder()
	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "invalid_state") {
		t.Errorf("Location = %q, want invalid_state", loc)
	}
}

func TestServeCallback_GoogleError(t *testing.T) {
	handler := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_denied") {
		t.Errorf("Location = %q, want google_denied", loc)
	}
}
