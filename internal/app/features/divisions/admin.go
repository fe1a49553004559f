// internal/app/features/divisions/admin.go
package divisions

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/htmlsanitize"
	"github.com/cerc-club/clubsite/internal/app/system/inputval"
	"github.com/cerc-club/clubsite/internal/app/system/normalize"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/cerc-club/clubsite/internal/app/system/viewkeys"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// adminListData is the view model for the admin divisions list.
type adminListData struct {
	viewdata.BaseVM
	Divisions []divisionqueries.DivisionWithCounts
	Success   string
	Error     string
}

// AdminList shows division cards with counts and management links.
// GET /admin/divisions
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	divisions, err := divisionqueries.ListWithCounts(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	data := adminListData{
		BaseVM:    viewdata.NewBaseVM(r, "Divisions", "/admin/dashboard"),
		Divisions: divisions,
	}
	switch r.URL.Query().Get("success") {
	case "created":
		data.Success = "Division created."
	case "updated":
		data.Success = "Division updated."
	case "deleted":
		data.Success = "Division and all its content deleted."
	}

	templates.Render(w, r, "division_admin_list", data)
}

// divisionInput carries the validated division form fields.
type divisionInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Slug        string `validate:"required,max=100,slug" label:"Slug"`
	Description string `validate:"required,max=2000" label:"Description"`
	IconName    string `validate:"icon" label:"Icon"`
}

// formData is the view model for the new/edit division forms.
type formData struct {
	formutil.Base
	ID          string
	DivTitle    string
	Slug        string
	Description string
	IconName    string
	ColorClass  string
	Icons       []string
}

// ShowNew renders the create-division form.
// GET /admin/divisions/new
func (h *Handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	data := formData{Icons: models.IconNames()}
	formutil.SetBase(&data.Base, r, "New Division", "/admin/divisions")
	templates.Render(w, r, "division_new", data)
}

// Create handles the create-division form POST.
// POST /admin/divisions/new
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/divisions")
		return
	}

	in := divisionInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Slug:        normalize.Slug(r.FormValue("slug")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		IconName:    strings.TrimSpace(r.FormValue("icon_name")),
	}

	renderWithError := func(msg string) {
		data := formData{
			DivTitle:    in.Title,
			Slug:        in.Slug,
			Description: in.Description,
			IconName:    in.IconName,
			ColorClass:  strings.TrimSpace(r.FormValue("color_class")),
			Icons:       models.IconNames(),
		}
		formutil.SetBase(&data.Base, r, "New Division", "/admin/divisions")
		data.SetError(msg)
		templates.Render(w, r, "division_new", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Division{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		IconName:    in.IconName,
		ColorClass:  strings.TrimSpace(r.FormValue("color_class")),
	})
	if err != nil {
		if errors.Is(err, divisionstore.ErrDuplicateSlug) {
			renderWithError("A division with this slug already exists.")
			return
		}
		h.Log.Error("create division failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	viewkeys.Invalidate(viewkeys.Merge(viewkeys.DivisionList(), viewkeys.Division(created.Slug))...)
	http.Redirect(w, r, "/admin/divisions?success=created", http.StatusSeeOther)
}

// Manager shows the division management page with tabbed, sortable,
// independently paginated child listings.
// GET /admin/divisions/{slug}
func (h *Handler) Manager(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, "division_manage", "manage")
}

// ShowEdit renders the edit-division form.
// GET /admin/divisions/{id}/edit
func (h *Handler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	division, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, divisionstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
			return
		}
		h.ErrLog.LogServerError(w, r, "load division failed", err, "A database error occurred.", "/admin/divisions")
		return
	}

	data := formData{
		ID:          division.ID.Hex(),
		DivTitle:    division.Title,
		Slug:        division.Slug,
		Description: division.Description,
		IconName:    division.IconName,
		ColorClass:  division.ColorClass,
		Icons:       models.IconNames(),
	}
	formutil.SetBase(&data.Base, r, "Edit Division", "/admin/divisions")
	templates.Render(w, r, "division_edit", data)
}

// Update handles the edit-division form POST.
// POST /admin/divisions/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/divisions")
		return
	}

	in := divisionInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Slug:        normalize.Slug(r.FormValue("slug")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		IconName:    strings.TrimSpace(r.FormValue("icon_name")),
	}

	renderWithError := func(msg string) {
		data := formData{
			ID:          id.Hex(),
			DivTitle:    in.Title,
			Slug:        in.Slug,
			Description: in.Description,
			IconName:    in.IconName,
			ColorClass:  strings.TrimSpace(r.FormValue("color_class")),
			Icons:       models.IconNames(),
		}
		formutil.SetBase(&data.Base, r, "Edit Division", "/admin/divisions")
		data.SetError(msg)
		templates.Render(w, r, "division_edit", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, divisionstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
			return
		}
		h.ErrLog.LogServerError(w, r, "load division failed", err, "A database error occurred.", "/admin/divisions")
		return
	}

	err = h.Store.Update(ctx, id, models.Division{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		IconName:    in.IconName,
		ColorClass:  strings.TrimSpace(r.FormValue("color_class")),
	})
	if err != nil {
		if errors.Is(err, divisionstore.ErrDuplicateSlug) {
			renderWithError("A division with this slug already exists.")
			return
		}
		h.Log.Error("update division failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	// Both the old and new slug's views are stale after a slug change.
	keys := viewkeys.Merge(viewkeys.DivisionList(), viewkeys.Division(existing.Slug), viewkeys.Division(in.Slug))
	viewkeys.Invalidate(keys...)
	http.Redirect(w, r, "/admin/divisions?success=updated", http.StatusSeeOther)
}

// Delete removes a division and everything in it.
// POST /admin/divisions/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	division, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, divisionstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
			return
		}
		h.ErrLog.LogServerError(w, r, "load division failed", err, "A database error occurred.", "/admin/divisions")
		return
	}

	// Children first, so a crash mid-way leaves no orphans pointing at a
	// missing division.
	if _, err := h.Projects.DeleteByDivision(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "cascade delete projects failed", err, "A database error occurred.", "/admin/divisions")
		return
	}
	if _, err := h.Members.DeleteByDivision(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "cascade delete members failed", err, "A database error occurred.", "/admin/divisions")
		return
	}
	if _, err := h.Achievements.DeleteByDivision(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "cascade delete achievements failed", err, "A database error occurred.", "/admin/divisions")
		return
	}
	if _, err := h.TechStacks.DeleteByDivision(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "cascade delete tech stacks failed", err, "A database error occurred.", "/admin/divisions")
		return
	}

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete division failed", err, "A database error occurred.", "/admin/divisions")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "That division does not exist.", "/admin/divisions")
		return
	}

	keys := viewkeys.Merge(
		viewkeys.DivisionList(),
		viewkeys.Division(division.Slug),
		viewkeys.Projects(division.Slug),
		viewkeys.Members(division.Slug),
		viewkeys.Achievements(division.Slug),
		viewkeys.TechStacks(division.Slug),
	)
	viewkeys.Invalidate(keys...)
	http.Redirect(w, r, "/admin/divisions?success=deleted", http.StatusSeeOther)
}
