package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// ErrEmailAlreadyExists is surfaced by the storage layer when the email
// unique constraint is violated, and by the register workflow when the
// pre-insert existence check finds a match.
var ErrEmailAlreadyExists = errors.New("account with this email already exists")

// AccountRepository persists the Account aggregate. Find methods return
// (nil, nil) when no row matches; errors are infrastructure failures.
type AccountRepository interface {
	FindByID(ctx context.Context, id valueobject.AccountID) (*entity.Account, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.Account, error)
	// Save upserts by id. Implementations must enforce email uniqueness
	// at the storage level and translate the conflict into
	// ErrEmailAlreadyExists.
	Save(ctx context.Context, account *entity.Account) error
}
