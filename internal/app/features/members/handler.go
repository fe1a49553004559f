// internal/app/features/members/handler.go
package members

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the admin member handlers. Members have no standalone
// public page; they appear on division rosters.
type Handler struct {
	DB        *mongo.Database
	Store     *memberstore.Store
	Divisions *divisionstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a members Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Store:     memberstore.New(db),
		Divisions: divisionstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
	}
}
