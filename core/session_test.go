package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSessionManagerCreateAndVerify(t *testing.T) {
	storage := newFakeStorage()
	sm := NewSessionManager(SessionConfig{MaxAge: 24 * time.Hour}, storage, nil)
	ctx := context.Background()

	result, err := sm.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("Create should return a raw token")
	}
	if result.Session.TokenHash == result.Token {
		t.Fatal("stored hash must differ from the raw token")
	}

	session, err := sm.Verify(ctx, result.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if session.UserID != "user-1" {
		t.Errorf("expected UserID user-1, got %s", session.UserID)
	}
}

func TestSessionManagerVerifyRejectsUnknownToken(t *testing.T) {
	sm := NewSessionManager(DefaultSessionConfig(), newFakeStorage(), nil)

	if _, err := sm.Verify(context.Background(), "no-such-token"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := sm.Verify(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestSessionManagerVerifyExpiresSessions(t *testing.T) {
	storage := newFakeStorage()
	sm := NewSessionManager(SessionConfig{MaxAge: time.Millisecond}, storage, nil)
	ctx := context.Background()

	result, err := sm.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := sm.Verify(ctx, result.Token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// Expired session was deleted lazily; a second Verify misses entirely.
	if _, err := sm.Verify(ctx, result.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after lazy delete, got %v", err)
	}
}

func TestSessionManagerDestroyIsIdempotent(t *testing.T) {
	storage := newFakeStorage()
	sm := NewSessionManager(DefaultSessionConfig(), storage, nil)
	ctx := context.Background()

	result, err := sm.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := sm.Destroy(ctx, result.Token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if _, err := sm.Verify(ctx, result.Token); err == nil {
		t.Fatal("Verify should fail after Destroy")
	}
	if err := sm.Destroy(ctx, result.Token); err != nil {
		t.Errorf("second Destroy should not error, got %v", err)
	}
	if err := sm.Destroy(ctx, ""); err != nil {
		t.Errorf("Destroy with empty token should not error, got %v", err)
	}
}

func TestSessionManagerDestroyExpired(t *testing.T) {
	storage := newFakeStorage()
	sm := NewSessionManager(SessionConfig{MaxAge: time.Millisecond}, storage, nil)
	ctx := context.Background()

	for range 3 {
		if _, err := sm.Create(ctx, "user-1"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	time.Sleep(5 * time.Millisecond)

	removed, err := sm.DestroyExpired(ctx)
	if err != nil {
		t.Fatalf("DestroyExpired failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed sessions, got %d", removed)
	}
}

func TestSessionManagerUsesCache(t *testing.T) {
	storage := newFakeStorage()
	cache := newCountingCache()
	sm := NewSessionManager(DefaultSessionConfig(), storage, cache)
	ctx := context.Background()

	result, err := sm.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// First Verify populates the cache, second is served from it.
	if _, err := sm.Verify(ctx, result.Token); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := sm.Verify(ctx, result.Token); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", cache.hits)
	}

	// Destroy must drop the cached entry too.
	if err := sm.Destroy(ctx, result.Token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if _, err := sm.Verify(ctx, result.Token); err == nil {
		t.Error("Verify should fail after Destroy even with a cache")
	}
}

// countingCache is a minimal Cache recording hit counts.
type countingCache struct {
	entries map[string]*Session
	hits    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[string]*Session)}
}

func (c *countingCache) Get(tokenHash string) (*Session, error) {
	s, ok := c.entries[tokenHash]
	if !ok {
		return nil, ErrCacheNotFound
	}
	c.hits++
	return s, nil
}

func (c *countingCache) Set(tokenHash string, session *Session) error {
	c.entries[tokenHash] = session
	return nil
}

func (c *countingCache) Delete(tokenHash string) error {
	delete(c.entries, tokenHash)
	return nil
}

func (c *countingCache) Clear() error {
	c.entries = make(map[string]*Session)
	return nil
}
