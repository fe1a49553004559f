// internal/app/features/login/handler.go
package login

import (
	uierrors "github.com/cerc-club/clubsite/internal/app/features/errors"
	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the email+password sign-in handlers.
type Handler struct {
	DB       *mongo.Database
	Users    *userstore.Store
	Sessions *auth.SessionManager
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger

	// GoogleEnabled switches the "Sign in with Google" link on the form.
	GoogleEnabled bool
}

// NewHandler constructs a login Handler.
func NewHandler(db *mongo.Database, sessions *auth.SessionManager, googleEnabled bool, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Users:         userstore.New(db),
		Sessions:      sessions,
		Log:           logger,
		ErrLog:        errLog,
		GoogleEnabled: googleEnabled,
	}
}
