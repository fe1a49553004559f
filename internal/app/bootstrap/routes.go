// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	achievementsfeature "github.com/cerc-club/clubsite/internal/app/features/achievements"
	authgooglefeature "github.com/cerc-club/clubsite/internal/app/features/authgoogle"
	dashboardfeature "github.com/cerc-club/clubsite/internal/app/features/dashboard"
	divisionsfeature "github.com/cerc-club/clubsite/internal/app/features/divisions"
	errorsfeature "github.com/cerc-club/clubsite/internal/app/features/errors"
	healthfeature "github.com/cerc-club/clubsite/internal/app/features/health"
	homefeature "github.com/cerc-club/clubsite/internal/app/features/home"
	loginfeature "github.com/cerc-club/clubsite/internal/app/features/login"
	logoutfeature "github.com/cerc-club/clubsite/internal/app/features/logout"
	membersfeature "github.com/cerc-club/clubsite/internal/app/features/members"
	projectsfeature "github.com/cerc-club/clubsite/internal/app/features/projects"
	techstackfeature "github.com/cerc-club/clubsite/internal/app/features/techstack"
	uploadsfeature "github.com/cerc-club/clubsite/internal/app/features/uploads"
	"github.com/cerc-club/clubsite/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, and mounts the public pages, the auth endpoints,
// and the session-gated admin area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Local file storage for uploaded images.
	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("file storage init failed", zap.Error(err))
		return nil, err
	}

	csrfKey := []byte(appCfg.CSRFKey)
	if len(csrfKey) == 0 {
		csrfKey = securecookie.GenerateRandomKey(32)
		logger.Warn("csrf key not configured; generated a random key (tokens reset on restart)")
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// All templates embed the CSRF token, so the middleware wraps the whole
	// router rather than just the admin area.
	r.Use(csrf.Protect(csrfKey, csrf.Secure(secure), csrf.Path("/")))

	// Error pages. NotFound is registered before the feature mounts so
	// chi copies it into each mounted subrouter.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets and uploaded files
	r.Handle("/static/*", fileserver.Handler("/static", "public"))
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	divisionsHandler := divisionsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/divisions", divisionsfeature.PublicRoutes(divisionsHandler))

	projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/projects", projectsfeature.PublicRoutes(projectsHandler))

	achievementsHandler := achievementsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/achievements", achievementsfeature.PublicRoutes(achievementsHandler))

	techStackHandler := techstackfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/tech-stack", techstackfeature.PublicRoutes(techStackHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(deps.MongoDatabase, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, errLog, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, googleHandler.IsConfigured(), errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Admin area: every route requires a signed-in user.
	membersHandler := membersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	uploadsHandler := uploadsfeature.NewHandler(fileStore, logger)

	r.Route("/admin", func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)

		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))
		r.Post("/init", dashboardHandler.Reseed)
		r.Mount("/upload", uploadsfeature.Routes(uploadsHandler))

		r.Route("/divisions", divisionsHandler.MountAdminRoutes)
		r.Route("/projects", projectsHandler.MountAdminRoutes)
		r.Route("/members", membersHandler.MountAdminRoutes)
		r.Route("/achievements", achievementsHandler.MountAdminRoutes)
		r.Route("/tech-stack", techStackHandler.MountAdminRoutes)
	})

	return r, nil
}
