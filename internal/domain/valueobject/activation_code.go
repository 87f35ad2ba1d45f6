package valueobject

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// CodeLength is the number of digits in an activation code.
const CodeLength = 4

var ErrInvalidActivationCodeFormat = errors.New("activation code must be exactly 4 numeric digits")

// ActivationCode is a 4-digit numeric code ("0000"-"9999"), leading
// zeros significant.
type ActivationCode struct {
	value string
}

// NewActivationCode validates a candidate code string.
func NewActivationCode(code string) (ActivationCode, error) {
	if len(code) != CodeLength {
		return ActivationCode{}, ErrInvalidActivationCodeFormat
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return ActivationCode{}, ErrInvalidActivationCodeFormat
		}
	}
	return ActivationCode{value: code}, nil
}

// GenerateActivationCode returns a random zero-padded 4-digit code.
func GenerateActivationCode() (ActivationCode, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return ActivationCode{}, err
	}
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	return ActivationCode{value: fmt.Sprintf("%04d", n%10000)}, nil
}

// Matches is exact string equality: no trimming, no numeric coercion.
func (c ActivationCode) Matches(input string) bool { return c.value == input }

func (c ActivationCode) Equal(other ActivationCode) bool { return c.value == other.value }

func (c ActivationCode) String() string { return c.value }
