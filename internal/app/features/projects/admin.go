// internal/app/features/projects/admin.go
package projects

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/divisionutil"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/htmlsanitize"
	"github.com/cerc-club/clubsite/internal/app/system/inputval"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/app/system/tags"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/cerc-club/clubsite/internal/app/system/viewkeys"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// adminListData is the view model for the admin projects list.
type adminListData struct {
	viewdata.BaseVM
	Projects []divisionqueries.ProjectListItem
	Pages    paging.Pages
	Sort     string
	Success  string
}

// AdminList shows all projects across divisions with edit and delete
// controls.
// GET /admin/projects
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r, "page")
	result, err := divisionqueries.ListProjects(ctx, h.DB, paging.SortDirection(r), page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list projects", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	data := adminListData{
		BaseVM:   viewdata.NewBaseVM(r, "Projects", "/admin/dashboard"),
		Projects: result.Items,
		Pages:    paging.Compute(result.Total, page),
		Sort:     paging.SortParam(r),
	}
	switch r.URL.Query().Get("success") {
	case "created":
		data.Success = "Project created."
	case "updated":
		data.Success = "Project updated."
	case "deleted":
		data.Success = "Project deleted."
	}

	templates.Render(w, r, "project_admin_list", data)
}

// projectInput carries the validated project form fields.
type projectInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Description string `validate:"required,max=5000" label:"Description"`
	ImageURL    string `validate:"required,url" label:"Image URL"`
	DivisionID  string `validate:"required,objectid" label:"Division"`
	DemoURL     string `validate:"url" label:"Demo URL"`
	GitHubURL   string `validate:"url" label:"GitHub URL"`
}

// formData is the view model for the new/edit project forms.
type formData struct {
	formutil.Base
	ID           string
	ProjectTitle string
	Description  string
	ImageURL     string
	DivisionID   string
	Tags         string
	DemoURL      string
	GitHubURL    string
	Divisions    []divisionutil.Option
}

func (h *Handler) divisionOptions(w http.ResponseWriter, r *http.Request) ([]divisionutil.Option, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := divisionutil.ListOptions(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/admin/projects")
		return nil, false
	}
	return opts, true
}

// ShowNew renders the create-project form.
// GET /admin/projects/new
func (h *Handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}
	// The division manager links here with ?division= to preselect.
	data := formData{DivisionID: query.Get(r, "division"), Divisions: divisions}
	formutil.SetBase(&data.Base, r, "New Project", "/admin/projects")
	templates.Render(w, r, "project_new", data)
}

func parseProjectForm(r *http.Request) projectInput {
	return projectInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		DivisionID:  strings.TrimSpace(r.FormValue("division_id")),
		DemoURL:     strings.TrimSpace(r.FormValue("demo_url")),
		GitHubURL:   strings.TrimSpace(r.FormValue("github_url")),
	}
}

// checkDivision validates that the submitted division still exists. The
// form dropdown can go stale if another admin deletes a division.
func (h *Handler) checkDivision(ctx context.Context, hexID string) (primitive.ObjectID, string, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, "", err
	}
	ok, err := divisionutil.Exists(ctx, h.DB, id)
	if err != nil {
		return primitive.NilObjectID, "", err
	}
	if !ok {
		return primitive.NilObjectID, "", divisionstore.ErrNotFound
	}
	return id, h.slugOf(ctx, id), nil
}

// slugOf looks up a division's slug for view invalidation. A lookup
// failure only degrades invalidation precision, so it maps to "".
func (h *Handler) slugOf(ctx context.Context, id primitive.ObjectID) string {
	division, err := h.Divisions.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return division.Slug
}

// Create handles the create-project form POST.
// POST /admin/projects/new
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/projects")
		return
	}

	in := parseProjectForm(r)
	tagList := tags.Split(strings.TrimSpace(r.FormValue("tags")))

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			ProjectTitle: in.Title,
			Description:  in.Description,
			ImageURL:     in.ImageURL,
			DivisionID:   in.DivisionID,
			Tags:         strings.TrimSpace(r.FormValue("tags")),
			DemoURL:      in.DemoURL,
			GitHubURL:    in.GitHubURL,
			Divisions:    divisions,
		}
		formutil.SetBase(&data.Base, r, "New Project", "/admin/projects")
		data.SetError(msg)
		templates.Render(w, r, "project_new", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	divisionID, slug, err := h.checkDivision(ctx, in.DivisionID)
	if err != nil {
		if errors.Is(err, divisionstore.ErrNotFound) {
			renderWithError("The selected division no longer exists.")
			return
		}
		h.Log.Error("validate division failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	_, err = h.Store.Create(ctx, models.Project{
		DivisionID:  divisionID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        tagList,
		DemoURL:     in.DemoURL,
		GitHubURL:   in.GitHubURL,
	})
	if err != nil {
		h.Log.Error("create project failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	viewkeys.Invalidate(viewkeys.Projects(slug)...)
	http.Redirect(w, r, "/admin/projects?success=created", http.StatusSeeOther)
}

// ShowEdit renders the edit-project form.
// GET /admin/projects/{id}/edit
func (h *Handler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
			return
		}
		h.ErrLog.LogServerError(w, r, "load project failed", err, "A database error occurred.", "/admin/projects")
		return
	}

	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}

	data := formData{
		ID:           project.ID.Hex(),
		ProjectTitle: project.Title,
		Description:  project.Description,
		ImageURL:     project.ImageURL,
		DivisionID:   project.DivisionID.Hex(),
		Tags:         tags.Join(project.Tags),
		DemoURL:      project.DemoURL,
		GitHubURL:    project.GitHubURL,
		Divisions:    divisions,
	}
	formutil.SetBase(&data.Base, r, "Edit Project", "/admin/projects")
	templates.Render(w, r, "project_edit", data)
}

// Update handles the edit-project form POST.
// POST /admin/projects/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/projects")
		return
	}

	in := parseProjectForm(r)
	tagList := tags.Split(strings.TrimSpace(r.FormValue("tags")))

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			ID:           id.Hex(),
			ProjectTitle: in.Title,
			Description:  in.Description,
			ImageURL:     in.ImageURL,
			DivisionID:   in.DivisionID,
			Tags:         strings.TrimSpace(r.FormValue("tags")),
			DemoURL:      in.DemoURL,
			GitHubURL:    in.GitHubURL,
			Divisions:    divisions,
		}
		formutil.SetBase(&data.Base, r, "Edit Project", "/admin/projects")
		data.SetError(msg)
		templates.Render(w, r, "project_edit", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
			return
		}
		h.ErrLog.LogServerError(w, r, "load project failed", err, "A database error occurred.", "/admin/projects")
		return
	}

	divisionID, newSlug, err := h.checkDivision(ctx, in.DivisionID)
	if err != nil {
		if errors.Is(err, divisionstore.ErrNotFound) {
			renderWithError("The selected division no longer exists.")
			return
		}
		h.Log.Error("validate division failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	err = h.Store.Update(ctx, id, models.Project{
		DivisionID:  divisionID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        tagList,
		DemoURL:     in.DemoURL,
		GitHubURL:   in.GitHubURL,
	})
	if err != nil {
		h.Log.Error("update project failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	// A move between divisions leaves both divisions' pages stale.
	keys := viewkeys.Projects(newSlug)
	if existing.DivisionID != divisionID {
		keys = viewkeys.Merge(keys, viewkeys.Projects(h.slugOf(ctx, existing.DivisionID)))
	}
	viewkeys.Invalidate(keys...)
	http.Redirect(w, r, "/admin/projects?success=updated", http.StatusSeeOther)
}

// Delete removes a project.
// POST /admin/projects/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
			return
		}
		h.ErrLog.LogServerError(w, r, "load project failed", err, "A database error occurred.", "/admin/projects")
		return
	}

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete project failed", err, "A database error occurred.", "/admin/projects")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "That project does not exist.", "/admin/projects")
		return
	}

	viewkeys.Invalidate(viewkeys.Projects(h.slugOf(ctx, project.DivisionID))...)
	http.Redirect(w, r, "/admin/projects?success=deleted", http.StatusSeeOther)
}
