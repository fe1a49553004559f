package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/features/login"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*login.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sessions, err := auth.NewSessionManager("", "clubsite_test_session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	errLog := uierrors.NewErrorLogger(logger)
	return login.NewHandler(db, sessions, false, errLog, logger), db
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// render calls a handler, swallowing a panic from template rendering so
// tests can focus on handler logic.
func render(h http.HandlerFunc, rec *httptest.ResponseRecorder, req *http.Request) {
	defer func() { _ = recover() }()
	h(rec, req)
}

func TestSubmit_Success(t *testing.T) {
	handler, db := newTestHandler(t)

	testutil.CreateAdminUser(t, db, "admin@cerc.club", "hunter2hunter2")

	form := url.Values{
		"email":    {"admin@cerc.club"},
		"password": {"hunter2hunter2"},
	}
	rec := httptest.NewRecorder()
	render(handler.Submit, rec, formRequest("/login", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("Location = %q", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("no session cookie set")
	}
}

func TestSubmit_ReturnParamHonored(t *testing.T) {
	handler, db := newTestHandler(t)

	testutil.CreateAdminUser(t, db, "admin@cerc.club", "hunter2hunter2")

	form := url.Values{
		"email":    {"admin@cerc.club"},
		"password": {"hunter2hunter2"},
		"return":   {"/admin/projects?sort=asc"},
	}
	rec := httptest.NewRecorder()
	render(handler.Submit, rec, formRequest("/login", form))

	if loc := rec.Header().Get("Location"); loc != "/admin/projects?sort=asc" {
		t.Errorf("Location = %q", loc)
	}
}

func TestSubmit_ExternalReturnParamIgnored(t *testing.T) {
	handler, db := newTestHandler(t)

	testutil.CreateAdminUser(t, db, "admin@cerc.club", "hunter2hunter2")

	for _, bad := range []string{"https://evil.example", "//evil.example/x", "javascript:alert(1)"} {
		form := url.Values{
			"email":    {"admin@cerc.club"},
			"password": {"hunter2hunter2"},
			"return":   {bad},
		}
		rec := httptest.NewRecorder()
		render(handler.Submit, rec, formRequest("/login", form))

		if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
			t.Errorf("return=%q: Location = %q, want /admin/dashboard", bad, loc)
		}
	}
}

func TestSubmit_WrongPassword(t *testing.T) {
	handler, db := newTestHandler(t)

	testutil.CreateAdminUser(t, db, "admin@cerc.club", "hunter2hunter2")

	form := url.Values{
		"email":    {"admin@cerc.club"},
		"password": {"wrong"},
	}
	rec := httptest.NewRecorder()
	render(handler.Submit, rec, formRequest("/login", form))

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
}

func TestSubmit_UnknownEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	form := url.Values{
		"email":    {"nobody@cerc.club"},
		"password": {"whatever"},
	}
	rec := httptest.NewRecorder()
	render(handler.Submit, rec, formRequest("/login", form))

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
}

func TestShowForm_SignedInRedirects(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/login", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "abc", Name: "Admin", Email: "admin@cerc.club"})
	rec := httptest.NewRecorder()
	render(handler.ShowForm, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("Location = %q", loc)
	}
}
