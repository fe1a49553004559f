// internal/app/features/techstack/handler.go
package techstack

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the tech stack handlers. Tech stack entries are
// create/delete only; there is nothing on them worth editing in place.
type Handler struct {
	DB        *mongo.Database
	Store     *techstackstore.Store
	Divisions *divisionstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a techstack Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Store:     techstackstore.New(db),
		Divisions: divisionstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
	}
}
