// Package redis provides a Redis-backed SessionStorage. Sessions live under
// their token hash with a TTL matching their expiry, so Redis reclaims them
// on its own.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmarquez-dev/picboard/core"
)

const keyPrefix = "picboard:session:"

type SessionStore struct {
	client *redis.Client
}

var _ core.SessionStorage = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// storedSession is the wire form. Unlike the API model it must carry the
// token hash and is never exposed to clients.
type storedSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"tokenHash"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func sessionKey(tokenHash string) string {
	return keyPrefix + tokenHash
}

func (s *SessionStore) CreateSession(ctx context.Context, session *core.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	blob, err := json.Marshal(storedSession{
		ID:        session.ID,
		UserID:    session.UserID,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.client.Set(ctx, sessionKey(session.TokenHash), blob, ttl).Err()
}

func (s *SessionStore) GetSessionByHash(ctx context.Context, tokenHash string) (*core.Session, error) {
	blob, err := s.client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &core.Session{
		ID:        stored.ID,
		UserID:    stored.UserID,
		TokenHash: stored.TokenHash,
		ExpiresAt: stored.ExpiresAt,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (s *SessionStore) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	// DEL on a missing key is a no-op, which keeps logout idempotent.
	return s.client.Del(ctx, sessionKey(tokenHash)).Err()
}

// DeleteExpiredSessions is a no-op: Redis evicts sessions via key TTLs.
func (s *SessionStore) DeleteExpiredSessions(ctx context.Context) (int, error) {
	return 0, nil
}
