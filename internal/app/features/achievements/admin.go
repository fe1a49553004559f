// internal/app/features/achievements/admin.go
package achievements

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/divisionutil"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/htmlsanitize"
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

// adminListData is the view model for the admin achievements list.
type adminListData struct {
	viewdata.BaseVM
	Achievements []divisionqueries.AchievementListItem
	Pages        paging.Pages
	Sort         string
	Success      string
}

// AdminList shows all achievements across divisions.
// GET /admin/achievements
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r, "page")
	result, err := divisionqueries.ListAchievements(ctx, h.DB, paging.SortDirection(r), page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list achievements", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	data := adminListData{
		BaseVM:       viewdata.NewBaseVM(r, "Achievements", "/admin/dashboard"),
		Achievements: result.Items,
		Pages:        paging.Compute(result.Total, page),
		Sort:         paging.SortParam(r),
	}
	switch r.URL.Query().Get("success") {
	case "created":
		data.Success = "Achievement created."
	case "updated":
		data.Success = "Achievement updated."
	case "deleted":
		data.Success = "Achievement deleted."
	}

	templates.Render(w, r, "achievement_admin_list", data)
}

// achievementInput carries the validated achievement form fields. Date is
// display text, not a parsed date.
type achievementInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Date        string `validate:"required,max=100" label:"Date"`
	Description string `validate:"required,max=5000" label:"Description"`
	Issuer      string `validate:"required,max=200" label:"Issuer"`
	Winner      string `validate:"required,max=200" label:"Winner"`
	ImageURL    string `validate:"required,url" label:"Image URL"`
	DivisionID  string `validate:"required,objectid" label:"Division"`
}

// formData is the view model for the new/edit achievement forms.
type formData struct {
	formutil.Base
	ID               string
	AchievementTitle string
	Date             string
	Description      string
	Issuer           string
	Winner           string
	ImageURL         string
	DivisionID       string
	Divisions        []divisionutil.Option
}

func (h *Handler) divisionOptions(w http.ResponseWriter, r *http.Request) ([]divisionutil.Option, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := divisionutil.ListOptions(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/admin/achievements")
		return nil, false
	}
	return opts, true
}

// ShowNew renders the create-achievement form.
// GET /admin/achievements/new
func (h *Handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}
	// The division manager links here with ?division= to preselect.
	data := formData{DivisionID: query.Get(r, "division"), Divisions: divisions}
	formutil.SetBase(&data.Base, r, "New Achievement", "/admin/achievements")
	templates.Render(w, r, "achievement_new", data)
}

func parseAchievementForm(r *http.Request) achievementInput {
	return achievementInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		Issuer:      strings.TrimSpace(r.FormValue("issuer")),
		Winner:      strings.TrimSpace(r.FormValue("winner")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		DivisionID:  strings.TrimSpace(r.FormValue("division_id")),
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

// Create handles the create-achievement form POST.
// POST /admin/achievements/new
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/achievements")
		return
	}

	in := parseAchievementForm(r)

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			AchievementTitle: in.Title,
			Date:             in.Date,
			Description:      in.Description,
			Issuer:           in.Issuer,
			Winner:           in.Winner,
			ImageURL:         in.ImageURL,
			DivisionID:       in.DivisionID,
			Divisions:        divisions,
		}
		formutil.SetBase(&data.Base, r, "New Achievement", "/admin/achievements")
		data.SetError(msg)
		templates.Render(w, r, "achievement_new", data)
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

	_, err = h.Store.Create(ctx, models.Achievement{
		DivisionID:  divisionID,
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		Issuer:      in.Issuer,
		Winner:      in.Winner,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		h.Log.Error("create achievement failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	viewkeys.Invalidate(viewkeys.Achievements(slug)...)
	http.Redirect(w, r, "/admin/achievements?success=created", http.StatusSeeOther)
}

// ShowEdit renders the edit-achievement form.
// GET /admin/achievements/{id}/edit
func (h *Handler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	achievement, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, achievementstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
			return
		}
		h.ErrLog.LogServerError(w, r, "load achievement failed", err, "A database error occurred.", "/admin/achievements")
		return
	}

	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}

	data := formData{
		ID:               achievement.ID.Hex(),
		AchievementTitle: achievement.Title,
		Date:             achievement.Date,
		Description:      achievement.Description,
		Issuer:           achievement.Issuer,
		Winner:           achievement.Winner,
		ImageURL:         achievement.ImageURL,
		DivisionID:       achievement.DivisionID.Hex(),
		Divisions:        divisions,
	}
	formutil.SetBase(&data.Base, r, "Edit Achievement", "/admin/achievements")
	templates.Render(w, r, "achievement_edit", data)
}

// Update handles the edit-achievement form POST.
// POST /admin/achievements/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/achievements")
		return
	}

	in := parseAchievementForm(r)

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			ID:               id.Hex(),
			AchievementTitle: in.Title,
			Date:             in.Date,
			Description:      in.Description,
			Issuer:           in.Issuer,
			Winner:           in.Winner,
			ImageURL:         in.ImageURL,
			DivisionID:       in.DivisionID,
			Divisions:        divisions,
		}
		formutil.SetBase(&data.Base, r, "Edit Achievement", "/admin/achievements")
		data.SetError(msg)
		templates.Render(w, r, "achievement_edit", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, achievementstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
			return
		}
		h.ErrLog.LogServerError(w, r, "load achievement failed", err, "A database error occurred.", "/admin/achievements")
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

	err = h.Store.Update(ctx, id, models.Achievement{
		DivisionID:  divisionID,
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		Issuer:      in.Issuer,
		Winner:      in.Winner,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		h.Log.Error("update achievement failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	keys := viewkeys.Achievements(newSlug)
	if existing.DivisionID != divisionID {
		keys = viewkeys.Merge(keys, viewkeys.Achievements(h.slugOf(ctx, existing.DivisionID)))
	}
	viewkeys.Invalidate(keys...)
	http.Redirect(w, r, "/admin/achievements?success=updated", http.StatusSeeOther)
}

// Delete removes an achievement.
// POST /admin/achievements/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	achievement, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, achievementstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
			return
		}
		h.ErrLog.LogServerError(w, r, "load achievement failed", err, "A database error occurred.", "/admin/achievements")
		return
	}

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete achievement failed", err, "A database error occurred.", "/admin/achievements")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "That achievement does not exist.", "/admin/achievements")
		return
	}

	viewkeys.Invalidate(viewkeys.Achievements(h.slugOf(ctx, achievement.DivisionID))...)
	http.Redirect(w, r, "/admin/achievements?success=deleted", http.StatusSeeOther)
}
