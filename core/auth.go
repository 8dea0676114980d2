package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

// AuthService orchestrates the signup and login state transitions across the
// credential store, password hasher and session manager.
type AuthService struct {
	storage   Storage
	passwords crypto.PasswordHandler
	sessions  *SessionManager
	verifier  CredentialVerifier
	opTimeout time.Duration
}

func NewAuthService(storage Storage, passwords crypto.PasswordHandler, sessions *SessionManager, verifier CredentialVerifier, opTimeout time.Duration) *AuthService {
	return &AuthService{
		storage:   storage,
		passwords: passwords,
		sessions:  sessions,
		verifier:  verifier,
		opTimeout: opTimeout,
	}
}

// SignUpInput contains the data needed to register a new user
type SignUpInput struct {
	Username   string
	Email      string
	Password   string
	AvatarPath string // stored path of the uploaded photo, may be empty
}

// SignUpResult contains the newly created user and their first session
type SignUpResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"token"` // The raw token (not the hash)
}

// SignUp registers a new user. Ordering is fixed: validate, hash, persist,
// establish session.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	var missing []string
	if input.Username == "" {
		missing = append(missing, "username")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: please provide your %s", ErrFieldsRequired, strings.Join(missing, ", "))
	}

	if err := CheckPasswordStrength(input.Password); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	hashedPassword, err := hashPassword(ctx, s.passwords, input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		AvatarPath:   input.AvatarPath,
	}

	// Uniqueness is enforced by the store, not checked here first: two
	// concurrent signups with the same email must race inside the store.
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	sessionResult, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SignUpResult{
		User:    user,
		Session: sessionResult.Session,
		Token:   sessionResult.Token,
	}, nil
}

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string
	Password string
}

// SignInResult contains the authenticated user and their session
type SignInResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"token"` // The raw token (not the hash)
}

// SignIn authenticates a user and establishes a new session. Credential
// checking is delegated to the configured CredentialVerifier strategy.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: please enter both email and password to login", ErrFieldsRequired)
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	user, err := s.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	sessionResult, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SignInResult{
		User:    user,
		Session: sessionResult.Session,
		Token:   sessionResult.Token,
	}, nil
}

// SignOut destroys the session for the given token. Idempotent.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.sessions.Destroy(ctx, token)
}

// GetSession resolves a raw token to session data. A session whose user no
// longer resolves is treated as an invalid token, never as a live identity.
func (s *AuthService) GetSession(ctx context.Context, token string) (*SessionData, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	session, err := s.sessions.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &SessionData{
		User:    user,
		Session: session,
	}, nil
}

func (s *AuthService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// hashPassword runs the CPU-bound hash in its own goroutine so a cancelled
// request does not keep the caller blocked on it.
func hashPassword(ctx context.Context, h crypto.PasswordHandler, password string) (string, error) {
	type result struct {
		hash string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		hash, err := h.Hash(password)
		ch <- result{hash: hash, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.hash, r.err
	}
}

// verifyPassword is the Verify counterpart of hashPassword.
func verifyPassword(ctx context.Context, h crypto.PasswordHandler, password, hash string) (bool, error) {
	type result struct {
		valid bool
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		valid, err := h.Verify(password, hash)
		ch <- result{valid: valid, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case r := <-ch:
		return r.valid, r.err
	}
}
