package core

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fakeStorage is a test-only Storage implementing store-level uniqueness
// under one mutex. Error fields allow behavior injection.
type fakeStorage struct {
	mu       sync.RWMutex
	users    map[string]*User
	sessions map[string]*Session
	posts    map[string]*Post
	nextID   int

	createUserErr    error
	createSessionErr error
	createPostErr    error
	getErr           error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:    make(map[string]*User),
		sessions: make(map[string]*Session),
		posts:    make(map[string]*Post),
	}
}

func (f *fakeStorage) nextIDLocked() string {
	f.nextID++
	return "id-" + strconv.Itoa(f.nextID)
}

func (f *fakeStorage) CreateUser(ctx context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return ErrUserExists
		}
	}
	u.ID = f.nextIDLocked()
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeStorage) GetUserByID(ctx context.Context, id string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeStorage) CreateSession(ctx context.Context, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *fakeStorage) GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeStorage) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeStorage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	removed := 0
	for hash, s := range f.sessions {
		if time.Now().After(s.ExpiresAt) {
			delete(f.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeStorage) CreatePost(ctx context.Context, p *Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createPostErr != nil {
		return f.createPostErr
	}
	p.ID = f.nextIDLocked()
	p.CreatedAt = time.Now()
	f.posts[p.ID] = p
	return nil
}

func (f *fakeStorage) GetPostByID(ctx context.Context, id string) (*Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (f *fakeStorage) ListPosts(ctx context.Context) ([]*Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStorage) postCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.posts)
}
