package core

import "time"

// User is an account identity created once at signup.
//
// PasswordHash is the only credential material and never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	AvatarPath   string    `json:"avatarPath,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is an active login bound to a User.
//
// The raw token is handed to the client exactly once; only its hash is kept.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON (security!)
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a text+image entry linked to the identity that submitted it.
// Posts are immutable after creation and outlive their creator's session.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content,omitempty"`
	CreatorID string    `json:"creatorId"`
	MediaName string    `json:"mediaName,omitempty"`
	MediaPath string    `json:"mediaPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionData combines user and session info.
// The model handed to guarded handlers.
type SessionData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// StoredFile describes an upload after it has been written to storage.
// Path is the relative location persisted with the owning record.
type StoredFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
