package valueobject

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidAccountID = errors.New("account id must be a version 7 UUID")

// AccountID wraps a time-ordered UUID v7. Any other UUID version is a
// construction error.
type AccountID struct {
	value uuid.UUID
}

// NewAccountID generates a fresh time-ordered identifier.
func NewAccountID() (AccountID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return AccountID{}, err
	}
	return AccountID{value: u}, nil
}

// AccountIDFromString parses and validates an identifier.
func AccountIDFromString(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, ErrInvalidAccountID
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, ErrInvalidAccountID
	}
	return AccountIDFromUUID(u)
}

// AccountIDFromUUID wraps an existing UUID, rejecting non-v7 values.
func AccountIDFromUUID(u uuid.UUID) (AccountID, error) {
	if u.Version() != 7 {
		return AccountID{}, ErrInvalidAccountID
	}
	return AccountID{value: u}, nil
}

func (id AccountID) UUID() uuid.UUID { return id.value }

func (id AccountID) String() string { return id.value.String() }

func (id AccountID) Equal(other AccountID) bool { return id.value == other.value }
