package core

import (
	"time"

	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

type Config struct {
	Storage Storage

	HTTP HTTPAdapter

	// Optional config
	Sessions       SessionStorage // defaults to Storage
	CacheAdapter   Cache
	DisableCache   bool
	SessionConfig  *SessionConfig
	PasswordHasher crypto.PasswordHandler
	Verifier       CredentialVerifier
	Uploads        UploadStore
	OpTimeout      time.Duration
}

// App is the assembled backend handed to the HTTP adapter.
type App struct {
	Auth     *AuthService
	Posts    *PostService
	Sessions *SessionManager
	Uploads  UploadStore
}

// HTTPAdapter registers the application's routes on a concrete framework.
type HTTPAdapter interface {
	RegisterRoutes(app *App) error
}
