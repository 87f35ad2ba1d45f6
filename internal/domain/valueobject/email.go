package valueobject

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidEmail = errors.New("invalid email address")

// emailValidator is shared; validator.Validate is safe for concurrent use.
var emailValidator = validator.New()

// Email is a normalized (trimmed, lowercased) RFC 5322 address.
// Two Email values are equal iff their normalized forms are equal.
// Uniqueness across accounts is enforced at the persistence boundary,
// not here.
type Email struct {
	value string
}

// NewEmail validates and normalizes a raw address.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, ErrInvalidEmail
	}
	if strings.ContainsAny(normalized, " \t") {
		return Email{}, ErrInvalidEmail
	}
	if err := emailValidator.Var(normalized, "required,email"); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equal(other Email) bool { return e.value == other.value }

// IsZero reports whether the value was never constructed via NewEmail.
func (e Email) IsZero() bool { return e.value == "" }
