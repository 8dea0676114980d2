// Package memory provides the process-memory Storage implementation. It is
// the default store for development and the backend the service tests run
// against.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmarquez-dev/picboard/core"
	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

// Adapter keeps all records behind a single mutex, so the uniqueness check
// and insert in CreateUser are one atomic step.
type Adapter struct {
	mu       sync.RWMutex
	users    map[string]*core.User    // key: user ID
	sessions map[string]*core.Session // key: token hash
	posts    map[string]*core.Post    // key: post ID
}

var _ core.Storage = (*Adapter)(nil)

func New() *Adapter {
	return &Adapter{
		users:    make(map[string]*core.User),
		sessions: make(map[string]*core.Session),
		posts:    make(map[string]*core.Post),
	}
}

// UserStorage

func (a *Adapter) CreateUser(ctx context.Context, u *core.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return core.ErrUserExists
		}
	}

	id, err := crypto.NewID()
	if err != nil {
		return err
	}

	u.ID = id
	u.CreatedAt = time.Now()
	a.users[u.ID] = u
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	u, ok := a.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, u := range a.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

// SessionStorage

func (a *Adapter) CreateSession(ctx context.Context, s *core.Session) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sessions[s.TokenHash] = s
	return nil
}

func (a *Adapter) GetSessionByHash(ctx context.Context, tokenHash string) (*core.Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

func (a *Adapter) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.sessions, tokenHash)
	return nil
}

func (a *Adapter) DeleteExpiredSessions(ctx context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	removed := 0
	for hash, s := range a.sessions {
		if now.After(s.ExpiresAt) {
			delete(a.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

// PostStorage

func (a *Adapter) CreatePost(ctx context.Context, p *core.Post) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := crypto.NewID()
	if err != nil {
		return err
	}

	p.ID = id
	p.CreatedAt = time.Now()
	a.posts[p.ID] = p
	return nil
}

func (a *Adapter) GetPostByID(ctx context.Context, id string) (*core.Post, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p, ok := a.posts[id]
	if !ok {
		return nil, core.ErrPostNotFound
	}
	return p, nil
}

func (a *Adapter) ListPosts(ctx context.Context) ([]*core.Post, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*core.Post, 0, len(a.posts))
	for _, p := range a.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
