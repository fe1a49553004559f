// internal/app/features/projects/handler.go
package projects

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all project handlers, public and admin.
type Handler struct {
	DB        *mongo.Database
	Store     *projectstore.Store
	Divisions *divisionstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Store:     projectstore.New(db),
		Divisions: divisionstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
	}
}
