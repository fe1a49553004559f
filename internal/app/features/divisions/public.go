// internal/app/features/divisions/public.go
package divisions

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// listData is the view model for the public divisions index.
type listData struct {
	viewdata.BaseVM
	Divisions []divisionqueries.DivisionWithCounts
}

// List shows all divisions ordered by title.
// GET /divisions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	divisions, err := divisionqueries.ListWithCounts(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "division_list", listData{
		BaseVM:    viewdata.NewBaseVM(r, "Divisions", "/"),
		Divisions: divisions,
	})
}

// detailData is the view model for the public division detail page and
// its projects/members/achievements subpages.
type detailData struct {
	viewdata.BaseVM
	Division models.Division
	Counts   divisionqueries.Counts

	Projects      []models.Project
	ProjectPages  paging.Pages
	Members       []models.Member
	MemberPages   paging.Pages
	Achievements  []models.Achievement
	AchievePages  paging.Pages
	TechStacks    []models.TechStack
	Sort          string
	ActiveSection string
}

// Detail shows one division with a page of each relation.
// GET /divisions/{slug}
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, "division_detail", "overview")
}

// DetailProjects shows the division's projects tab.
// GET /divisions/{slug}/projects
func (h *Handler) DetailProjects(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, "division_projects", "projects")
}

// DetailMembers shows the division's roster tab, oldest member first.
// GET /divisions/{slug}/members
func (h *Handler) DetailMembers(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, "division_members", "members")
}

// DetailAchievements shows the division's achievements tab.
// GET /divisions/{slug}/achievements
func (h *Handler) DetailAchievements(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, "division_achievements", "achievements")
}

func (h *Handler) renderDetail(w http.ResponseWriter, r *http.Request, view, section string) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	opts := divisionqueries.DetailOptions{
		Sort:             paging.SortDirection(r),
		ProjectsPage:     paging.ParsePage(r, "projectsPage"),
		MembersPage:      paging.ParsePage(r, "membersPage"),
		AchievementsPage: paging.ParsePage(r, "achievementsPage"),
	}
	// The admin manager's sort control orders every tab, members
	// included; the public roster stays oldest first.
	if section == "manage" {
		opts.MembersSort = opts.Sort
	}

	detail, err := divisionqueries.BySlug(ctx, h.DB, slug, opts)
	if err != nil {
		if errors.Is(err, divisionqueries.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That division does not exist.", "/divisions")
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to load division", err, "A database error occurred.", "/divisions")
		return
	}

	data := detailData{
		BaseVM:   viewdata.NewBaseVM(r, detail.Division.Title, "/divisions"),
		Division: detail.Division,
		Counts: divisionqueries.Counts{
			Projects:     detail.ProjectsTotal,
			Members:      detail.MembersTotal,
			Achievements: detail.AchievementsTotal,
			TechStacks:   int64(len(detail.TechStacks)),
		},
		Projects:      detail.Projects,
		ProjectPages:  paging.Compute(detail.ProjectsTotal, opts.ProjectsPage),
		Members:       detail.Members,
		MemberPages:   paging.Compute(detail.MembersTotal, opts.MembersPage),
		Achievements:  detail.Achievements,
		AchievePages:  paging.Compute(detail.AchievementsTotal, opts.AchievementsPage),
		TechStacks:    detail.TechStacks,
		Sort:          paging.SortParam(r),
		ActiveSection: section,
	}

	templates.Render(w, r, view, data)
}
