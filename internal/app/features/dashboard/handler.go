// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	"github.com/cerc-club/clubsite/internal/app/system/timeouts"
	"github.com/cerc-club/clubsite/internal/app/system/viewdata"
	"github.com/cerc-club/clubsite/internal/app/system/viewkeys"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the admin dashboard.
type Handler struct {
	DB           *mongo.Database
	Divisions    *divisionstore.Store
	Projects     *projectstore.Store
	Members      *memberstore.Store
	Achievements *achievementstore.Store
	TechStacks   *techstackstore.Store
	Log          *zap.Logger
	ErrLog       *uierrors.ErrorLogger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Divisions:    divisionstore.New(db),
		Projects:     projectstore.New(db),
		Members:      memberstore.New(db),
		Achievements: achievementstore.New(db),
		TechStacks:   techstackstore.New(db),
		Log:          logger,
		ErrLog:       errLog,
	}
}

// dashboardData is the view model for the admin dashboard.
type dashboardData struct {
	viewdata.BaseVM
	Divisions    int64
	Projects     int64
	Members      int64
	Achievements int64
	TechStacks   int64
	Success      string
}

// Serve shows site-wide content counts.
// GET /admin/dashboard
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
	}

	counts := []struct {
		dst   *int64
		name  string
		count func(context.Context, bson.M) (int64, error)
	}{
		{&data.Divisions, "divisions", h.Divisions.Count},
		{&data.Projects, "projects", h.Projects.Count},
		{&data.Members, "members", h.Members.Count},
		{&data.Achievements, "achievements", h.Achievements.Count},
		{&data.TechStacks, "tech stacks", h.TechStacks.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx, bson.M{})
		if err != nil {
			h.ErrLog.LogServerError(w, r, "count "+c.name+" failed", err, "A database error occurred.", "/")
			return
		}
		*c.dst = n
	}

	if r.URL.Query().Get("success") == "seeded" {
		data.Success = "Default divisions are in place."
	}

	templates.Render(w, r, "dashboard", data)
}

// Reseed re-runs the division seeding. Existing divisions are left
// untouched; only missing seed divisions are created.
// POST /admin/init
func (h *Handler) Reseed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Divisions.EnsureSeed(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "seed divisions failed", err, "A database error occurred.", "/admin/dashboard")
		return
	}

	h.Log.Info("division seed ensured")
	viewkeys.Invalidate(viewkeys.DivisionList()...)
	http.Redirect(w, r, "/admin/dashboard?success=seeded", http.StatusSeeOther)
}
