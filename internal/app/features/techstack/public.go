// internal/app/features/techstack/public.go
package techstack

import (
	"context"
	"net/http"

	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// divisionGroup is one division together with its tech stack entries.
type divisionGroup struct {
	Division models.Division
	Stacks   []models.TechStack
}

// listData is the view model for the public tech stack page.
type listData struct {
	viewdata.BaseVM
	Groups []divisionGroup
}

// List shows every division with its technology strip, divisions ordered
// by title.
// GET /tech-stack
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	divisions, err := h.Divisions.ListByTitle(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list divisions", err, "A database error occurred.", "/")
		return
	}

	stacks, err := h.Store.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list tech stacks", err, "A database error occurred.", "/")
		return
	}

	byDivision := make(map[primitive.ObjectID][]models.TechStack, len(divisions))
	for _, ts := range stacks {
		byDivision[ts.DivisionID] = append(byDivision[ts.DivisionID], ts)
	}

	groups := make([]divisionGroup, 0, len(divisions))
	for _, d := range divisions {
		groups = append(groups, divisionGroup{Division: d, Stacks: byDivision[d.ID]})
	}

	templates.Render(w, r, "techstack_list", listData{
		BaseVM: viewdata.NewBaseVM(r, "Tech Stack", "/"),
		Groups: groups,
	})
}
