package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

type SessionConfig struct {
	MaxAge time.Duration
}

// DefaultSessionConfig expires sessions a day after login.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxAge: 24 * time.Hour,
	}
}

// SessionManager owns the session lifecycle: created at login, verified on
// every guarded request, destroyed at logout or expiry.
type SessionManager struct {
	config  SessionConfig
	storage SessionStorage
	cache   Cache
}

type CreateSessionResult struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"` // The raw token (not the hash)
}

func NewSessionManager(config SessionConfig, storage SessionStorage, cache Cache) *SessionManager {
	return &SessionManager{
		config:  config,
		storage: storage,
		cache:   cache,
	}
}

// MaxAge reports the configured session lifetime, e.g. for cookie MaxAge.
func (sm *SessionManager) MaxAge() time.Duration {
	return sm.config.MaxAge
}

func (sm *SessionManager) Create(ctx context.Context, userID string) (*CreateSessionResult, error) {
	token, err := crypto.GenerateHashedToken(crypto.DefaultTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	now := time.Now()
	session := &Session{
		ID:        id,
		UserID:    userID,
		TokenHash: token.Hash,
		ExpiresAt: now.Add(sm.config.MaxAge),
		CreatedAt: now,
	}

	if err := sm.storage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &CreateSessionResult{
		Session: session,
		Token:   token.Token,
	}, nil
}

// Verify resolves a raw token to its live session. Expired sessions are
// deleted lazily here.
func (sm *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	tokenHash := crypto.HashToken(token)

	if sm.cache != nil {
		if session, err := sm.cache.Get(tokenHash); err == nil && session != nil {
			if time.Now().Before(session.ExpiresAt) {
				return session, nil
			}
			sm.cache.Delete(tokenHash)
		}
	}

	session, err := sm.storage.GetSessionByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	valid, err := crypto.VerifyToken(token, session.TokenHash)
	if err != nil || !valid {
		return nil, ErrInvalidToken
	}

	if time.Now().After(session.ExpiresAt) {
		sm.storage.DeleteSessionByHash(ctx, tokenHash)
		return nil, ErrSessionExpired
	}

	if sm.cache != nil {
		sm.cache.Set(tokenHash, session)
	}

	return session, nil
}

// Destroy removes the session for a raw token. Destroying an already-absent
// session is not an error.
func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	tokenHash := crypto.HashToken(token)

	// Invalidate cache if available
	if sm.cache != nil {
		sm.cache.Delete(tokenHash)
	}

	if err := sm.storage.DeleteSessionByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DestroyExpired sweeps sessions past their expiry and reports how many were
// removed.
func (sm *SessionManager) DestroyExpired(ctx context.Context) (int, error) {
	if sm.cache != nil {
		sm.cache.Clear()
	}

	return sm.storage.DeleteExpiredSessions(ctx)
}
