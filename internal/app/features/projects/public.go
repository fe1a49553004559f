// internal/app/features/projects/public.go
package projects

import (
	"context"
	"net/http"

	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// listData is the view model for the public cross-division project listing.
type listData struct {
	viewdata.BaseVM
	Projects []divisionqueries.ProjectListItem
	Pages    paging.Pages
	Sort     string
}

// List shows one page of all projects across divisions.
// GET /projects
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r, "page")
	result, err := divisionqueries.ListProjects(ctx, h.DB, paging.SortDirection(r), page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list projects", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "project_list", listData{
		BaseVM:   viewdata.NewBaseVM(r, "Projects", "/"),
		Projects: result.Items,
		Pages:    paging.Compute(result.Total, page),
		Sort:     paging.SortParam(r),
	})
}
