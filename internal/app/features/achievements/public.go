// internal/app/features/achievements/public.go
package achievements

import (
	"context"
	"net/http"

	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// listData is the view model for the public cross-division achievement
// listing.
type listData struct {
	viewdata.BaseVM
	Achievements []divisionqueries.AchievementListItem
	Pages        paging.Pages
	Sort         string
}

// List shows one page of all achievements across divisions.
// GET /achievements
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r, "page")
	result, err := divisionqueries.ListAchievements(ctx, h.DB, paging.SortDirection(r), page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list achievements", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "achievement_list", listData{
		BaseVM:       viewdata.NewBaseVM(r, "Achievements", "/"),
		Achievements: result.Items,
		Pages:        paging.Compute(result.Total, page),
		Sort:         paging.SortParam(r),
	})
}
