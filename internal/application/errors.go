package application

import "errors"

// Business-rule violations reported by the activation workflow. The
// ordering of checks in ActivateAccountHandler determines which of
// these a caller sees; infrastructure failures propagate as-is.
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrActivationCodeNotFound = errors.New("activation code not found")
	ErrActivationCodeExpired  = errors.New("activation code expired")
	ErrInvalidActivationCode  = errors.New("invalid activation code")
)
