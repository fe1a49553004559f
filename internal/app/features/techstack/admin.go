// internal/app/features/techstack/admin.go
package techstack

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/divisionutil"
	"github.com/cerc-club/clubsite/internal/app/system/formutil"
	"github.com/cerc-club/clubsite/internal/app/system/inputval"
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

// adminListData is the view model for the admin tech stack list.
type adminListData struct {
	viewdata.BaseVM
	Stacks  []divisionqueries.TechStackListItem
	Success string
}

// AdminList shows all tech stack entries across divisions.
// GET /admin/tech-stack
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stacks, err := divisionqueries.ListTechStacks(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list tech stacks", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	data := adminListData{
		BaseVM: viewdata.NewBaseVM(r, "Tech Stack", "/admin/dashboard"),
		Stacks: stacks,
	}
	switch r.URL.Query().Get("success") {
	case "created":
		data.Success = "Tech stack entry added."
	case "deleted":
		data.Success = "Tech stack entry removed."
	}

	templates.Render(w, r, "techstack_admin_list", data)
}

// techStackInput carries the validated tech stack form fields.
type techStackInput struct {
	Name       string `validate:"required,max=100" label:"Name"`
	ImageURL   string `validate:"required,url" label:"Logo URL"`
	DivisionID string `validate:"required,objectid" label:"Division"`
	WebsiteURL string `validate:"url" label:"Website URL"`
}

// formData is the view model for the new tech stack form.
type formData struct {
	formutil.Base
	Name       string
	ImageURL   string
	DivisionID string
	WebsiteURL string
	Divisions  []divisionutil.Option
}

func (h *Handler) divisionOptions(w http.ResponseWriter, r *http.Request) ([]divisionutil.Option, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := divisionutil.ListOptions(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/admin/tech-stack")
		return nil, false
	}
	return opts, true
}

// ShowNew renders the add-entry form.
// GET /admin/tech-stack/new
func (h *Handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	divisions, ok := h.divisionOptions(w, r)
	if !ok {
		return
	}
	// The division manager links here with ?division= to preselect.
	data := formData{DivisionID: query.Get(r, "division"), Divisions: divisions}
	formutil.SetBase(&data.Base, r, "New Tech Stack Entry", "/admin/tech-stack")
	templates.Render(w, r, "techstack_new", data)
}

// Create handles the add-entry form POST.
// POST /admin/tech-stack/new
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/admin/tech-stack")
		return
	}

	in := techStackInput{
		Name:       strings.TrimSpace(r.FormValue("name")),
		ImageURL:   strings.TrimSpace(r.FormValue("image_url")),
		DivisionID: strings.TrimSpace(r.FormValue("division_id")),
		WebsiteURL: strings.TrimSpace(r.FormValue("website_url")),
	}

	renderWithError := func(msg string) {
		divisions, ok := h.divisionOptions(w, r)
		if !ok {
			return
		}
		data := formData{
			Name:       in.Name,
			ImageURL:   in.ImageURL,
			DivisionID: in.DivisionID,
			WebsiteURL: in.WebsiteURL,
			Divisions:  divisions,
		}
		formutil.SetBase(&data.Base, r, "New Tech Stack Entry", "/admin/tech-stack")
		data.SetError(msg)
		templates.Render(w, r, "techstack_new", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	divisionID, err := primitive.ObjectIDFromHex(in.DivisionID)
	if err != nil {
		renderWithError("The selected division no longer exists.")
		return
	}
	exists, err := divisionutil.Exists(ctx, h.DB, divisionID)
	if err != nil {
		h.Log.Error("validate division failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}
	if !exists {
		renderWithError("The selected division no longer exists.")
		return
	}

	_, err = h.Store.Create(ctx, models.TechStack{
		DivisionID: divisionID,
		Name:       in.Name,
		ImageURL:   in.ImageURL,
		WebsiteURL: in.WebsiteURL,
	})
	if err != nil {
		h.Log.Error("create tech stack entry failed", zap.Error(err))
		renderWithError("A database error occurred.")
		return
	}

	viewkeys.Invalidate(viewkeys.TechStacks(h.slugOf(ctx, divisionID))...)
	http.Redirect(w, r, "/admin/tech-stack?success=created", http.StatusSeeOther)
}

func (h *Handler) slugOf(ctx context.Context, id primitive.ObjectID) string {
	division, err := h.Divisions.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return division.Slug
}

// Delete removes a tech stack entry.
// POST /admin/tech-stack/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That tech stack entry does not exist.", "/admin/tech-stack")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	entry, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, techstackstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That tech stack entry does not exist.", "/admin/tech-stack")
			return
		}
		h.ErrLog.LogServerError(w, r, "load tech stack entry failed", err, "A database error occurred.", "/admin/tech-stack")
		return
	}

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete tech stack entry failed", err, "A database error occurred.", "/admin/tech-stack")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "That tech stack entry does not exist.", "/admin/tech-stack")
		return
	}

	viewkeys.Invalidate(viewkeys.TechStacks(h.slugOf(ctx, entry.DivisionID))...)
	http.Redirect(w, r, "/admin/tech-stack?success=deleted", http.StatusSeeOther)
}
