package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cerc-club/clubsite/internal/app/features/logout"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"go.uber.org/zap"
)

func TestServe_RedirectsHome(t *testing.T) {
	sessions, err := auth.NewSessionManager("", "clubsite_test_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	handler := logout.NewHandler(sessions, zap.NewNop())

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q", loc)
	}
}
