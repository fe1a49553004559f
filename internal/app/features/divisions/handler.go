// internal/app/features/divisions/handler.go
package divisions

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all division handlers, public and admin. It holds the
// child-entity stores as well because deleting a division cascades.
type Handler struct {
	DB           *mongo.Database
	Store        *divisionstore.Store
	Projects     *projectstore.Store
	Members      *memberstore.Store
	Achievements *achievementstore.Store
	TechStacks   *techstackstore.Store
	Log          *zap.Logger
	ErrLog       *uierrors.ErrorLogger
}

// NewHandler constructs a divisions Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Store:        divisionstore.New(db),
		Projects:     projectstore.New(db),
		Members:      memberstore.New(db),
		Achievements: achievementstore.New(db),
		TechStacks:   techstackstore.New(db),
		Log:          logger,
		ErrLog:       errLog,
	}
}
