// internal/app/features/members/admin.go
package members

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/divisionutil"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/inputval"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
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

// adminListData is the view model for the admin members list.
type adminListData struct {
	viewdata.BaseVM
	Members []divisionqueries.MemberListItem
	Pages   paging.Pages
	Sort    string
	Success string
}

// AdminList shows all members across divisions.
// GET /admin/members
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r, "page")
	result, err := divisionqueries.ListMembers(ctx, h.DB, paging.SortDirection(r), page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list members", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	data := adminListData{
		BaseVM:  viewdata.NewBaseVM(r, "Members", "/admin/dashboard"),
		Members: result.Items,
		Pages:   paging.Compute(result.Total, page),
		Sort:    paging.SortParam(r),
	}
	switch r.URL.Query().Get("success") {
	case "created":
		data.Success = "Member added."
	case "updated":
		data.Success = "Member updated."
	case "deleted":
		data.Success = "Member removed."
	}

	templates.Render(w, r, "member_admin_list", data)
}

// memberInput carries the validated member form fields.
type memberInput struct {
	Name       string `validate:"required,max=200" label:"Name"`
	Role       string `validate:"required,max=200" label:"Role"`
	ImageURL   string `validate:"required,url" label:"Image URL"`
	DivisionID string `validate:"required,objectid" label:"Division"`
	GitHub     string `validate:"url" label:"GitHub URL"`
	LinkedIn   string `validate:"url" label:"LinkedIn URL"`
}

// formData is the view model for the new/edit member forms.
type formData struct {
	formutil.Base
	ID         string
	Name       string
	Role       string
	ImageURL   string
	DivisionID string
	GitHub     string
	LinkedIn   string
	Divisions  []divisionutil.Option
}

func (h *Handler) divisionOptions(w http.ResponseWriter, r *http.Request) ([]divisionutil.Option, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := divisionutil.ListOptions(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/admin/members")
		return nil, false
	}
	return opts, true
}

// ShowNew renders the add-member form.
// GET /admin/members/new
func (h *Handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}
	// The division manager links here with ?division= to preselect.
	data := formData{DivisionID: query.Get(r, "division"), Divisions: divisions}
	formutil.SetBase(&data.Base, r, "New Member", "/admin/members")
	templates.Render(w, r, "member_new", data)
}

func parseMemberForm(r *http.Request) memberInput {
	return memberInput{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Role:       strings.TrimSpace(r.FormValue("role")),
		ImageURL:   strings.TrimSpace(r.FormValue("image_url")),
		DivisionID: strings.TrimSpace(r.FormValue("division_id")),
		GitHub:     strings.TrimSpace(r.FormValue("github")),
		LinkedIn:   strings.TrimSpace(r.FormValue("linkedin")),
	}
}

// checkDivision validates that the submitted division still exists and
// resolves its slug for view invalidation.
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

func (h *Handler) slugOf(ctx context.Context, id primitive.ObjectID) string {
	division, err := h.Divisions.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return division.Slug
}

// Create handles the add-member form POST.
// POST /admin/members/new
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/members")
		return
	}

	in := parseMemberForm(r)

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			Name:       in.Name,
			Role:       in.Role,
			ImageURL:   in.ImageURL,
			DivisionID: in.DivisionID,
			GitHub:     in.GitHub,
			LinkedIn:   in.LinkedIn,
			Divisions:  divisions,
		}
		formutil.SetBase(&data.Base, r, "New Member", "/admin/members")
		data.SetError(msg)
		templates.Render(w, r, "member_new", data)
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

	_, err = h.Store.Create(ctx, models.Member{
		DivisionID: divisionID,
		Name:       in.Name,
		Role:       in.Role,
		ImageURL:   in.ImageURL,
		GitHub:     in.GitHub,
		LinkedIn:   in.LinkedIn,
	})
	if err != nil {
		h.Log.Error("create member failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	viewkeys.Invalidate(viewkeys.Members(slug)...)
	http.Redirect(w, r, "/admin/members?success=created", http.StatusSeeOther)
}

// ShowEdit renders the edit-member form.
// GET /admin/members/{id}/edit
func (h *Handler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
			return
		}
		h.ErrLog.LogServerError(w, r, "load member failed", err, "A database error occurred.", "/admin/members")
		return
	}

	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}

	data := formData{
		ID:         member.ID.Hex(),
		Name:       member.Name,
		Role:       member.Role,
		ImageURL:   member.ImageURL,
		DivisionID: member.DivisionID.Hex(),
		GitHub:     member.GitHub,
		LinkedIn:   member.LinkedIn,
		Divisions:  divisions,
	}
	formutil.SetBase(&data.Base, r, "Edit Member", "/admin/members")
	templates.Render(w, r, "member_edit", data)
}

// Update handles the edit-member form POST.
// POST /admin/members/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/members")
		return
	}

	in := parseMemberForm(r)

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			ID:         id.Hex(),
			Name:       in.Name,
			Role:       in.Role,
			ImageURL:   in.ImageURL,
			DivisionID: in.DivisionID,
			GitHub:     in.GitHub,
			LinkedIn:   in.LinkedIn,
			Divisions:  divisions,
		}
		formutil.SetBase(&data.Base, r, "Edit Member", "/admin/members")
		data.SetError(msg)
		templates.Render(w, r, "member_edit", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
			return
		}
		h.ErrLog.LogServerError(w, r, "load member failed", err, "A database error occurred.", "/admin/members")
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

	err = h.Store.Update(ctx, id, models.Member{
		DivisionID: divisionID,
		Name:       in.Name,
		Role:       in.Role,
		ImageURL:   in.ImageURL,
		GitHub:     in.GitHub,
		LinkedIn:   in.LinkedIn,
	})
	if err != nil {
		h.Log.Error("update member failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	keys := viewkeys.Members(newSlug)
	if existing.DivisionID != divisionID {
		keys = viewkeys.Merge(keys, viewkeys.Members(h.slugOf(ctx, existing.DivisionID)))
	}
	viewkeys.Invalidate(keys...)
	http.Redirect(w, r, "/admin/members?success=updated", http.StatusSeeOther)
}

// Delete removes a member.
// POST /admin/members/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
			return
		}
		h.ErrLog.LogServerError(w, r, "load member failed", err, "A database error occurred.", "/admin/members")
		return
	}

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete member failed", err, "A database error occurred.", "/admin/members")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/admin/members")
		return
	}

	viewkeys.Invalidate(viewkeys.Members(h.slugOf(ctx, member.DivisionID))...)
	http.Redirect(w, r, "/admin/members?success=deleted", http.StatusSeeOther)
}
