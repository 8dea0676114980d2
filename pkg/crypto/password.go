package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHandler is the pluggable one-way hashing scheme.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// DefaultBcryptCost matches the salt-round count the stored hashes were
// produced with.
const DefaultBcryptCost = 10

// Ensure Bcrypt implements PasswordHandler
var _ PasswordHandler = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a randomized salt at a fixed cost factor.
type Bcrypt struct {
	Cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: DefaultBcryptCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches the stored hash. The comparison is
// constant-structure; a mismatch is not an error.
func (b *Bcrypt) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
