// internal/app/features/achievements/handler.go
package achievements

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all achievement handlers, public and admin.
type Handler struct {
	DB        *mongo.Database
	Store     *achievementstore.Store
	Divisions *divisionstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs an achievements Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Store:     achievementstore.New(db),
		Divisions: divisionstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
	}
}
