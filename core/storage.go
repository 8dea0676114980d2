package core

import (
	"context"
	"mime/multipart"
)

// Ports define interfaces for external dependencies. Every storage call takes
// a context so callers can bound it with a timeout.

// UserStorage defines user-related database operations.
//
// CreateUser must enforce (username, email) uniqueness atomically at the
// store level: two concurrent signups with the same email must not both
// succeed. Violations surface as ErrUserExists.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// SessionStorage defines session-related database operations.
// DeleteSessionByHash is idempotent: deleting an absent session is not an error.
type SessionStorage interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteSessionByHash(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)
}

// PostStorage defines post-related database operations.
type PostStorage interface {
	CreatePost(ctx context.Context, p *Post) error
	GetPostByID(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context) ([]*Post, error)
}

// Storage is the combined store an adapter provides.
type Storage interface {
	UserStorage
	SessionStorage
	PostStorage
}

// UploadStore receives a multipart file and yields its stored location.
// The file content itself is outside the core; only the path is persisted.
type UploadStore interface {
	Save(fh *multipart.FileHeader) (*StoredFile, error)
}
