package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarquez-dev/picboard/pkg/crypto"
)

// CredentialVerifier is the pluggable strategy the authentication workflow
// delegates credential checking to. There is exactly one login entry point;
// swapping the strategy swaps how credentials are checked, not the flow
// around them.
type CredentialVerifier interface {
	// Verify returns the user the credentials belong to.
	// Failures: ErrEmailNotRegistered for an unknown email,
	// ErrIncorrectPassword for a password mismatch.
	Verify(ctx context.Context, email, password string) (*User, error)
}

// lookupVerifier is the default strategy: direct lookup by email followed by
// a hash comparison.
type lookupVerifier struct {
	users     UserStorage
	passwords crypto.PasswordHandler
}

var _ CredentialVerifier = (*lookupVerifier)(nil)

func NewLookupVerifier(users UserStorage, passwords crypto.PasswordHandler) CredentialVerifier {
	return &lookupVerifier{
		users:     users,
		passwords: passwords,
	}
}

func (v *lookupVerifier) Verify(ctx context.Context, email, password string) (*User, error) {
	user, err := v.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := verifyPassword(ctx, v.passwords, password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrIncorrectPassword
	}

	return user, nil
}
