package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// ActivateAccountCommand carries the parsed account id and candidate code.
type ActivateAccountCommand struct {
	AccountID valueobject.AccountID
	Code      valueobject.ActivationCode
}

// ActivateAccountHandler validates an activation attempt and flips the
// account to active.
type ActivateAccountHandler struct {
	Accounts    repo.AccountRepository
	Activations repo.AccountActivationRepository
	Indexer     AccountIndexer
	Logger      *logrus.Logger
}

func NewActivateAccountHandler(accounts repo.AccountRepository, activations repo.AccountActivationRepository, indexer AccountIndexer, logger *logrus.Logger) *ActivateAccountHandler {
	return &ActivateAccountHandler{Accounts: accounts, Activations: activations, Indexer: indexer, Logger: logger}
}

// Handle runs the activation workflow. The validation order is a
// contract, it decides which error a caller sees:
//
//  1. account missing        -> ErrAccountNotFound
//  2. activation missing     -> ErrActivationCodeNotFound
//  3. code expired           -> ErrActivationCodeExpired (wins over mismatch)
//  4. code value mismatch    -> ErrInvalidActivationCode
//
// Nothing mutates before step 5, so any failure leaves all entities
// untouched. Re-running against an already-active account with a valid
// matching code succeeds silently (Activate is a no-op).
func (h *ActivateAccountHandler) Handle(ctx context.Context, cmd ActivateAccountCommand) error {
	account, err := h.Accounts.FindByID(ctx, cmd.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	activation, err := h.Activations.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		return err
	}
	if activation == nil {
		return ErrActivationCodeNotFound
	}

	if activation.IsExpired() {
		return ErrActivationCodeExpired
	}

	if !activation.Code().Equal(cmd.Code) {
		return ErrInvalidActivationCode
	}

	account.Activate()

	if err := h.Accounts.Save(ctx, account); err != nil {
		return err
	}

	if h.Indexer != nil {
		if ierr := h.Indexer.Index(ctx, account); ierr != nil && h.Logger != nil {
			h.Logger.WithError(ierr).WithField("account_id", account.ID().String()).Warn("account index failed")
		}
	}

	return nil
}
