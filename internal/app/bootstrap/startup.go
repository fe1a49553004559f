// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/cerc-club/clubsite/internal/app/system/viewkeys"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	viewkeys.SetNotifier(&viewkeys.LogNotifier{Log: logger})
	return nil
}
