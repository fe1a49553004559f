// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds the club site's application-level configuration.
//
// WAFFLE's CoreConfig covers framework concerns (ports, TLS, log level,
// environment); AppConfig is everything specific to this app. Values are
// loaded in LoadConfig from config files, CLUBSITE_* environment
// variables, and command-line flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: clubsite-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte key for gorilla/csrf (blank generates a dev-only key)

	// File storage configuration for uploaded images
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving stored files (e.g., "/files")

	// Base URL of the public site, used for OAuth callbacks
	BaseURL string // e.g., "https://club.example.edu" or "http://localhost:3000"

	// Google OAuth configuration (optional; password login always works)
	GoogleClientID     string
	GoogleClientSecret string

	// Initial admin account, created on startup if missing
	AdminName     string
	AdminEmail    string
	AdminPassword string
}
