package entity

import (
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// Account is the aggregate root for the account bounded context.
// Identity and equality are by id alone: two instances with the same id
// are the same logical account regardless of other field values.
type Account struct {
	id        valueobject.AccountID
	email     valueobject.Email
	password  valueobject.Password
	activated bool
}

// NewAccount creates a fresh account pending activation.
func NewAccount(email valueobject.Email, password valueobject.Password) (*Account, error) {
	id, err := valueobject.NewAccountID()
	if err != nil {
		return nil, err
	}
	return &Account{
		id:       id,
		email:    email,
		password: password,
	}, nil
}

// RehydrateAccount rebuilds an account from persisted state. Reserved
// for repository use.
func RehydrateAccount(id valueobject.AccountID, email valueobject.Email, password valueobject.Password, activated bool) *Account {
	return &Account{
		id:        id,
		email:     email,
		password:  password,
		activated: activated,
	}
}

func (a *Account) ID() valueobject.AccountID { return a.id }
func (a *Account) Email() valueobject.Email { return a.email }
func (a *Account) Password() valueobject.Password { return a.password }
func (a *Account) IsActivated() bool { return a.activated }

// Activate flips the account to active. Idempotent: calling it on an
// already-active account leaves state unchanged and signals no error.
func (a *Account) Activate() {
	a.activated = true
}

// Equal compares by identity, not by value.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	return a.id.Equal(other.id)
}
