// Package picboard assembles the authentication and posting backend: a
// credential store, password hasher, session manager, access guard and
// content workflow wired behind a single HTTP surface.
package picboard

import (
	"time"

	"github.com/dmarquez-dev/picboard/core"
	"github.com/dmarquez-dev/picboard/pkg/cache"
	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

// interfaces
type (
	Storage        = core.Storage
	SessionStorage = core.SessionStorage
	UploadStore    = core.UploadStore
	Cache          = core.Cache

	HTTPAdapter = core.HTTPAdapter

	CredentialVerifier = core.CredentialVerifier
	PasswordHandler    = crypto.PasswordHandler
)

// structs
type (
	App           = core.App
	Config        = core.Config
	SessionConfig = core.SessionConfig
	CacheConfig   = core.CacheConfig
)

type (
	User        = core.User
	Session     = core.Session
	Post        = core.Post
	SessionData = core.SessionData
	StoredFile  = core.StoredFile

	SignUpInput     = core.SignUpInput
	SignInInput     = core.SignInInput
	CreatePostInput = core.CreatePostInput
)

const defaultOpTimeout = 5 * time.Second

// Constructors & helpers (convenience re-exports)
var (
	NewInMemoryCache     = cache.NewInMemoryCache
	NewBcrypt            = crypto.NewBcrypt
	NewLookupVerifier    = core.NewLookupVerifier
	DefaultSessionConfig = core.DefaultSessionConfig
)

var (
	ErrFieldsRequired = core.ErrFieldsRequired
	ErrWeakPassword   = core.ErrWeakPassword
	ErrUserExists     = core.ErrUserExists
	ErrUserNotFound   = core.ErrUserNotFound
)

var (
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrEmailNotRegistered = core.ErrEmailNotRegistered
	ErrIncorrectPassword  = core.ErrIncorrectPassword
)

var (
	ErrInvalidToken    = core.ErrInvalidToken
	ErrSessionNotFound = core.ErrSessionNotFound
	ErrSessionExpired  = core.ErrSessionExpired
	ErrUnauthorized    = core.ErrUnauthorized
	ErrPostNotFound    = core.ErrPostNotFound
)

var (
	ErrStorageRequired = core.ErrStorageRequired
	ErrHTTPRequired    = core.ErrHTTPRequired
	ErrUploadsRequired = core.ErrUploadsRequired
)

// New wires the services together, fills in defaults for everything
// optional, and registers the HTTP routes.
func New(config Config) (*App, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPRequired
	}

	// Set Defaults

	sessionStorage := config.Sessions
	if sessionStorage == nil {
		sessionStorage = config.Storage
	}

	cacheAdapter := config.CacheAdapter
	if cacheAdapter == nil && !config.DisableCache {
		cacheAdapter = NewInMemoryCache(CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	sessionConfig := config.SessionConfig
	if sessionConfig == nil {
		defaults := DefaultSessionConfig()
		sessionConfig = &defaults
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewBcrypt()
	}

	opTimeout := config.OpTimeout
	if opTimeout == 0 {
		opTimeout = defaultOpTimeout
	}

	sessionManager := core.NewSessionManager(
		*sessionConfig,
		sessionStorage,
		cacheAdapter,
	)

	verifier := config.Verifier
	if verifier == nil {
		verifier = core.NewLookupVerifier(config.Storage, passwordHasher)
	}

	app := &App{
		Auth:     core.NewAuthService(config.Storage, passwordHasher, sessionManager, verifier, opTimeout),
		Posts:    core.NewPostService(config.Storage, opTimeout),
		Sessions: sessionManager,
		Uploads:  config.Uploads,
	}

	if err := config.HTTP.RegisterRoutes(app); err != nil {
		return nil, err
	}

	return app, nil
}
