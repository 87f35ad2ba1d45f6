package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

func newAccountID(t *testing.T) valueobject.AccountID {
	t.Helper()
	id, err := valueobject.NewAccountID()
	require.NoError(t, err)
	return id
}

func TestNewAccountActivation_SetsWindow(t *testing.T) {
	activation, err := NewAccountActivation(newAccountID(t))
	require.NoError(t, err)

	assert.Len(t, activation.Code().String(), valueobject.CodeLength)
	assert.Equal(t, ActivationTTL, activation.ExpiresAt().Sub(activation.CreatedAt()))
	assert.False(t, activation.IsExpired())
}

func TestAccountActivation_IsExpired(t *testing.T) {
	id := newAccountID(t)
	code, err := valueobject.NewActivationCode("0042")
	require.NoError(t, err)

	created := time.Now().UTC().Add(-2 * ActivationTTL)
	expired := RehydrateAccountActivation(id, code, created, created.Add(ActivationTTL))
	assert.True(t, expired.IsExpired())

	fresh := RehydrateAccountActivation(id, code, time.Now().UTC(), time.Now().UTC().Add(ActivationTTL))
	assert.False(t, fresh.IsExpired())
}

func TestAccountActivation_ExactExpiryStillValid(t *testing.T) {
	// Expiry is strict: the code dies only after expires_at, not at it.
	id := newAccountID(t)
	code, err := valueobject.NewActivationCode("0042")
	require.NoError(t, err)

	created := time.Now().UTC()
	activation := RehydrateAccountActivation(id, code, created, created.Add(time.Hour))
	assert.False(t, activation.IsExpired())
}

func TestAccountActivation_IsValid(t *testing.T) {
	id := newAccountID(t)
	code, err := valueobject.NewActivationCode("0042")
	require.NoError(t, err)

	now := time.Now().UTC()
	live := RehydrateAccountActivation(id, code, now, now.Add(ActivationTTL))
	assert.True(t, live.IsValid("0042"))
	assert.False(t, live.IsValid("0043"))
	assert.False(t, live.IsValid("42"))

	dead := RehydrateAccountActivation(id, code, now.Add(-2*ActivationTTL), now.Add(-ActivationTTL))
	assert.False(t, dead.IsValid("0042"), "matching code on an expired activation is still invalid")
}

func TestAccountActivation_EqualByAccount(t *testing.T) {
	id := newAccountID(t)
	first, err := NewAccountActivation(id)
	require.NoError(t, err)
	second, err := NewAccountActivation(id)
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "same account, same identity")

	other, err := NewAccountActivation(newAccountID(t))
	require.NoError(t, err)
	assert.False(t, first.Equal(other))
}
