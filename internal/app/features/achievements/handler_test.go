package achievements_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cerc-club/clubsite/internal/app/features/achievements"
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*achievements.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return achievements.NewHandler(db, errLog, logger), db
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
		"title":       {"Regional CTF Champions"},
		"date":        {"May 2026"},
		"description": {"First place in the regional capture-the-flag."},
		"issuer":      {"DEF CON Groups"},
		"winner":      {"Team Nettle"},
		"image_url":   {"https://example.com/ctf.png"},
		"division_id": {division.ID.Hex()},
	}
	req := adminRequest("POST", "/admin/achievements/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/achievements?success=created" {
		t.Errorf("Location = %q", loc)
	}

	got, err := handler.Store.Find(ctx, bson.M{"title": "Regional CTF Champions"})
	if err != nil || len(got) != 1 {
		t.Fatalf("achievement not persisted: %v (n=%d)", err, len(got))
	}
	if got[0].Date != "May 2026" || got[0].Winner != "Team Nettle" {
		t.Errorf("unexpected achievement: %+v", got[0])
	}
}

func TestCreate_MissingIssuerReRendersForm(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)

	form := url.Values{
		"title":       {"No Issuer"},
		"date":        {"May 2026"},
		"description": {"desc"},
		"winner":      {"Team"},
		"image_url":   {"https://example.com/x.png"},
		"division_id": {division.ID.Hex()},
	}
	req := adminRequest("POST", "/admin/achievements/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
	n, _ := handler.Store.Count(ctx, bson.M{})
	if n != 0 {
		t.Errorf("achievement count = %d, want 0", n)
	}
}

func TestUpdate_ChangesFields(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	achievement := testutil.CreateAchievement(t, db, division.ID)

	form := url.Values{
		"title":       {"National Hackathon Runner-Up"},
		"date":        {"April 2026"},
		"description": {"Second place this year."},
		"issuer":      {"ACM"},
		"winner":      {"Team Beta"},
		"image_url":   {"https://example.com/trophy.png"},
		"division_id": {division.ID.Hex()},
	}
	req := adminRequest("POST", "/admin/achievements/"+achievement.ID.Hex(), form)
	req = testutil.WithChiURLParam(req, "id", achievement.ID.Hex())
	rec := httptest.NewRecorder()
	render(handler.Update, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	got, err := handler.Store.GetByID(ctx, achievement.ID)
	if err != nil {
		t.Fatalf("load achievement: %v", err)
	}
	if got.Title != "National Hackathon Runner-Up" || got.Winner != "Team Beta" {
		t.Errorf("unexpected achievement: %+v", got)
	}
}

func TestDelete_RemovesAchievement(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	achievement := testutil.CreateAchievement(t, db, division.ID)

	req := adminRequest("POST", "/admin/achievements/"+achievement.ID.Hex()+"/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", achievement.ID.Hex())
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
		t.Errorf("achievement count = %d, want 0", n)
	}
}
