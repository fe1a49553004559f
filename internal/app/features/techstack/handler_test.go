package techstack_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/features/techstack"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*techstack.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return techstack.NewHandler(db, errLog, logger), db
}

func adminRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return auth.WithTestUser(req, &auth.SessionUser{ID: "abc", Name: "Admin", Email: "admin@test.com"})
}

// render calls a handler, swallowing a panic from template rendering so
// tests can focus on handler logic and store effects.
func render(h http.HandlerFunc, rec *httptest.ResponseRecorder, req *http.Request) {
	defer func() { _ = recover() }()
	h(rec, req)
}

func TestCreate_Success(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)

	form := url.Values{
		"name":        {"React"},
		"image_url":   {"https://example.com/react.svg"},
		"division_id": {division.ID.Hex()},
		"website_url": {"https://react.dev"},
	}
	req := adminRequest("POST", "/admin/tech-stack/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/tech-stack?success=created" {
		t.Errorf("Location = %q", loc)
	}

	got, err := handler.Store.Find(ctx, bson.M{"name": "React"})
	if err != nil || len(got) != 1 {
		t.Fatalf("entry not persisted: %v (n=%d)", err, len(got))
	}
	if got[0].WebsiteURL != "https://react.dev" {
		t.Errorf("WebsiteURL = %q", got[0].WebsiteURL)
	}
}

func TestCreate_InvalidWebsiteURLRejected(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)

	form := url.Values{
		"name":        {"Bad Site"},
		"image_url":   {"https://example.com/x.svg"},
		"division_id": {division.ID.Hex()},
		"website_url": {"not a url"},
	}
	req := adminRequest("POST", "/admin/tech-stack/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
	n, _ := handler.Store.Count(ctx, bson.M{})
	if n != 0 {
		t.Errorf("entry count = %d, want 0", n)
	}
}

func TestDelete_RemovesEntry(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	entry := testutil.CreateTechStack(t, db, division.ID)

	req := adminRequest("POST", "/admin/tech-stack/"+entry.ID.Hex()+"/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", entry.ID.Hex())
	rec := httptest.NewRecorder()
	render(handler.Delete, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	n, err := handler.Store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("entry count = %d, want 0", n)
	}
}

func TestDelete_UnknownIDNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := adminRequest("POST", "/admin/tech-stack/ffffffffffffffffffffffff/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", "ffffffffffffffffffffffff")
	rec := httptest.NewRecorder()
	render(handler.Delete, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected not-found page, got redirect")
	}
}
