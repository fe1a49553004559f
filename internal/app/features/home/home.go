// internal/app/features/home/home.go
package home

import (
	"context"
	"net/http"

	"github.com/cerc-club/clubsite/internal/app/store/queries/divisionqueries"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// divisionCard is one division tile on the landing page.
type divisionCard struct {
	Title       string
	Slug        string
	Description string
	IconName    string
	ColorClass  string
	Projects    int64
	Members     int64
}

// projectCard is one recent-project tile on the landing page.
type projectCard struct {
	Title         string
	Description   string
	ImageURL      string
	Tags          []string
	DivisionTitle string
	DemoURL       string
	GitHubURL     string
}

type pageData struct {
	viewdata.BaseVM
	Divisions      []divisionCard
	RecentProjects []projectCard
}

// Serve renders the landing page: all divisions plus the newest projects.
// GET /
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	divisions, err := divisionqueries.ListWithCounts(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load divisions", err, "A database error occurred.", "/")
		return
	}

	recent, err := divisionqueries.ListProjects(ctx, h.DB, -1, 1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load recent projects", err, "A database error occurred.", "/")
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Home", "/"),
	}
	for _, d := range divisions {
		data.Divisions = append(data.Divisions, divisionCard{
			Title:       d.Title,
			Slug:        d.Slug,
			Description: d.Description,
			IconName:    d.IconName,
			ColorClass:  d.ColorClass,
			Projects:    d.Counts.Projects,
			Members:     d.Counts.Members,
		})
	}
	for _, p := range recent.Items {
		data.RecentProjects = append(data.RecentProjects, projectCard{
			Title:         p.Title,
			Description:   p.Description,
			ImageURL:      p.ImageURL,
			Tags:          p.Tags,
			DivisionTitle: p.DivisionTitle,
			DemoURL:       p.DemoURL,
			GitHubURL:     p.GitHubURL,
		})
	}

	templates.Render(w, r, "home", data)
}
