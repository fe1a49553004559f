package projects_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/features/projects"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*projects.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return projects.NewHandler(db, errLog, logger), db
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
		"title":       {"Club Portal"},
		"description": {"The member-facing portal."},
		"image_url":   {"https://example.com/portal.png"},
		"division_id": {division.ID.Hex()},
		"tags":        {"go, mongodb"},
		"github_url":  {"https://github.com/cerc-club/portal"},
	}
	req := adminRequest("POST", "/admin/projects/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/projects?success=created" {
		t.Errorf("Location = %q", loc)
	}

	got, err := handler.Store.Find(ctx, bson.M{"title": "Club Portal"})
	if err != nil || len(got) != 1 {
		t.Fatalf("project not persisted: %v (n=%d)", err, len(got))
	}
	if got[0].DivisionID != division.ID {
		t.Errorf("DivisionID = %s, want %s", got[0].DivisionID.Hex(), division.ID.Hex())
	}
	if len(got[0].Tags) != 2 || got[0].Tags[0] != "go" || got[0].Tags[1] != "mongodb" {
		t.Errorf("Tags = %v", got[0].Tags)
	}
	if got[0].DemoURL != "" {
		t.Errorf("DemoURL = %q, want empty", got[0].DemoURL)
	}
}

func TestCreate_UnknownDivisionReRendersForm(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Valid ObjectID, but nothing stored under it.
	division := testutil.CreateDivision(t, db)
	if _, err := handler.Divisions.Delete(ctx, division.ID); err != nil {
		t.Fatalf("delete division: %v", err)
	}

	form := url.Values{
		"title":       {"Orphan"},
		"description": {"No home."},
		"image_url":   {"https://example.com/x.png"},
		"division_id": {division.ID.Hex()},
	}
	req := adminRequest("POST", "/admin/projects/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
	n, err := handler.Store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("project count = %d, want 0", n)
	}
}

func TestCreate_InvalidImageURLRejected(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)

	form := url.Values{
		"title":       {"Bad Image"},
		"description": {"desc"},
		"image_url":   {"not-a-url"},
		"division_id": {division.ID.Hex()},
	}
	req := adminRequest("POST", "/admin/projects/new", form)
	rec := httptest.NewRecorder()
	render(handler.Create, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected form re-render, got redirect")
	}
	n, _ := handler.Store.Count(ctx, bson.M{})
	if n != 0 {
		t.Errorf("project count = %d, want 0", n)
	}
}

func TestUpdate_MoveBetweenDivisions(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := testutil.CreateDivision(t, db)
	second := testutil.CreateDivision(t, db, func(d *models.Division) {
		d.Title = "Computer Networks"
		d.Slug = "network"
	})
	project := testutil.CreateProject(t, db, first.ID, func(p *models.Project) {
		p.GitHubURL = "https://github.com/cerc-club/portal"
	})

	form := url.Values{
		"title":       {"Moved Project"},
		"description": {"Now under networks."},
		"image_url":   {"https://example.com/p.png"},
		"division_id": {second.ID.Hex()},
		"tags":        {"cloud"},
	}
	req := adminRequest("POST", "/admin/projects/"+project.ID.Hex(), form)
	req = testutil.WithChiURLParam(req, "id", project.ID.Hex())
	rec := httptest.NewRecorder()
	render(handler.Update, rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	got, err := handler.Store.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	if got.DivisionID != second.ID {
		t.Errorf("DivisionID = %s, want %s", got.DivisionID.Hex(), second.ID.Hex())
	}
	if got.Title != "Moved Project" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.GitHubURL != "" {
		t.Errorf("GitHubURL = %q, want cleared", got.GitHubURL)
	}
}

func TestDelete_RemovesProject(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	project := testutil.CreateProject(t, db, division.ID)

	req := adminRequest("POST", "/admin/projects/"+project.ID.Hex()+"/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", project.ID.Hex())
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
		t.Errorf("project count = %d, want 0", n)
	}
}

func TestDelete_UnknownIDNotFound(t *testing.T) {
	handler, db := newTestHandler(t)

	division := testutil.CreateDivision(t, db)
	testutil.CreateProject(t, db, division.ID)

	req := adminRequest("POST", "/admin/projects/ffffffffffffffffffffffff/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", "ffffffffffffffffffffffff")
	rec := httptest.NewRecorder()
	render(handler.Delete, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected not-found page, got redirect")
	}
}
