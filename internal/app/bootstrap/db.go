// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	oauthstatestore "github.com/cerc-club/clubsite/internal/app/store/oauthstate"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
)

// ConnectDB establishes the MongoDB connection used by the whole app.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates indexes, seeds the default divisions, and creates
// the initial admin account when one is configured.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	indexed := []interface {
		EnsureIndexes(context.Context) error
	}{
		divisionstore.New(db),
		projectstore.New(db),
		memberstore.New(db),
		achievementstore.New(db),
		techstackstore.New(db),
		userstore.New(db),
		oauthstatestore.New(db),
	}
	for _, s := range indexed {
		if err := s.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}

	if err := divisionstore.New(db).EnsureSeed(ctx); err != nil {
		return fmt.Errorf("seed divisions: %w", err)
	}

	return ensureAdminAccount(ctx, deps, appCfg, logger)
}

// ensureAdminAccount creates the configured admin user if it does not
// already exist. An existing account is left untouched, so changing the
// configured password does not overwrite a live one.
func ensureAdminAccount(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" {
		logger.Info("no admin_email configured; skipping admin bootstrap")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user, err := userstore.New(deps.MongoDatabase).EnsureAdmin(ctx, appCfg.AdminName, appCfg.AdminEmail, string(hash))
	if err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}

	logger.Info("admin account ready",
		zap.String("email", user.Email),
		zap.String("id", user.ID.Hex()))
	return nil
}
