package entity

import (
	"time"

	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// ActivationTTL is how long an activation code stays usable.
const ActivationTTL = 60 * time.Second

// AccountActivation is a time-boxed one-time code tied to an account.
// Keyed by account id: at most one live code per account, a new code
// replaces the previous one (upsert at the persistence layer).
type AccountActivation struct {
	accountID valueobject.AccountID
	code      valueobject.ActivationCode
	createdAt time.Time
	expiresAt time.Time
}

// NewAccountActivation generates a random code expiring ActivationTTL
// from now.
func NewAccountActivation(accountID valueobject.AccountID) (*AccountActivation, error) {
	code, err := valueobject.GenerateActivationCode()
	if err != nil {
		return nil, err
	}
	createdAt := time.Now().UTC()
	return &AccountActivation{
		accountID: accountID,
		code:      code,
		createdAt: createdAt,
		expiresAt: createdAt.Add(ActivationTTL),
	}, nil
}

// RehydrateAccountActivation rebuilds an activation from persisted state.
func RehydrateAccountActivation(accountID valueobject.AccountID, code valueobject.ActivationCode, createdAt, expiresAt time.Time) *AccountActivation {
	return &AccountActivation{
		accountID: accountID,
		code:      code,
		createdAt: createdAt.UTC(),
		expiresAt: expiresAt.UTC(),
	}
}

func (a *AccountActivation) AccountID() valueobject.AccountID { return a.accountID }
func (a *AccountActivation) Code() valueobject.ActivationCode { return a.code }
func (a *AccountActivation) CreatedAt() time.Time { return a.createdAt }
func (a *AccountActivation) ExpiresAt() time.Time { return a.expiresAt }

// IsExpired reports whether the code is past its validity window.
// Strict comparison: expiry happens only after expiresAt.
func (a *AccountActivation) IsExpired() bool {
	return time.Now().UTC().After(a.expiresAt)
}

// IsValid combines both checks: the candidate must match and the code
// must not be expired.
func (a *AccountActivation) IsValid(input string) bool {
	return a.code.Matches(input) && !a.IsExpired()
}

// Equal compares by identity (account id).
func (a *AccountActivation) Equal(other *AccountActivation) bool {
	if other == nil {
		return false
	}
	return a.accountID.Equal(other.accountID)
}
