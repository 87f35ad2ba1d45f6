package valueobject

import (
	"errors"
	"unicode/utf8"

	"github.com/oksasatya/registration-api/pkg/helpers"
)

const minPasswordLength = 8

var (
	ErrWeakPassword = errors.New("password must be at least 8 characters long")
	ErrEmptyHash    = errors.New("hashed password cannot be empty")
)

// Password holds a one-way bcrypt hash; plaintext is never stored.
type Password struct {
	hash string
}

// NewPassword hashes a plaintext password. Fails on plaintext shorter
// than 8 characters (empty included). Length counts characters, not
// bytes, so multi-byte input is not over-counted.
func NewPassword(plain string) (Password, error) {
	if utf8.RuneCountInString(plain) < minPasswordLength {
		return Password{}, ErrWeakPassword
	}
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: hash}, nil
}

// PasswordFromHash reconstructs a Password from a stored hash without
// re-validation. Reserved for repository rehydration.
func PasswordFromHash(hash string) (Password, error) {
	if hash == "" {
		return Password{}, ErrEmptyHash
	}
	return Password{hash: hash}, nil
}

// Verify performs the one-way comparison against a plaintext candidate.
func (p Password) Verify(plain string) bool {
	return helpers.CompareHashAndPassword(p.hash, plain)
}

func (p Password) Hash() string { return p.hash }

// String masks the value so it never leaks into logs.
func (p Password) String() string { return "********" }
