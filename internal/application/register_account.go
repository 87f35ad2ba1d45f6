package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/event"
	repo "github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// RegisterAccountCommand carries already-validated value objects; raw
// input validation happens at the HTTP boundary before this command is
// built.
type RegisterAccountCommand struct {
	Email    valueobject.Email
	Password valueobject.Password
}

// RegisterAccountHandler creates a new account and emits AccountCreated.
//
// The email existence check and the insert are a check-then-act pair
// with a theoretical race window between concurrent registrations. The
// window is closed at the persistence layer: Save translates the email
// unique-constraint violation into repo.ErrEmailAlreadyExists. The
// handler itself adds no extra locking.
type RegisterAccountHandler struct {
	Accounts   repo.AccountRepository
	Dispatcher event.Dispatcher
	Indexer    AccountIndexer
	Logger     *logrus.Logger
}

func NewRegisterAccountHandler(accounts repo.AccountRepository, dispatcher event.Dispatcher, indexer AccountIndexer, logger *logrus.Logger) *RegisterAccountHandler {
	return &RegisterAccountHandler{Accounts: accounts, Dispatcher: dispatcher, Indexer: indexer, Logger: logger}
}

// Handle runs the registration workflow and returns the new account.
// On success exactly one account row exists and exactly one
// AccountCreated event has been dispatched; the dispatch is
// synchronous, so control returns only after the activation email has
// been attempted.
func (h *RegisterAccountHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (*entity.Account, error) {
	existing, err := h.Accounts.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repo.ErrEmailAlreadyExists
	}

	account, err := entity.NewAccount(cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}

	if err := h.Accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	if h.Indexer != nil {
		if ierr := h.Indexer.Index(ctx, account); ierr != nil && h.Logger != nil {
			h.Logger.WithError(ierr).WithField("account_id", account.ID().String()).Warn("account index failed")
		}
	}

	if err := h.Dispatcher.Dispatch(ctx, event.AccountCreated{
		AccountID:  account.ID(),
		Email:      account.Email(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}
	return account, nil
}
