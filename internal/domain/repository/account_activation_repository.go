package repository

import (
	"context"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// AccountActivationRepository persists activation codes, at most one
// per account. FindByAccountID returns (nil, nil) when no row matches.
type AccountActivationRepository interface {
	FindByAccountID(ctx context.Context, id valueobject.AccountID) (*entity.AccountActivation, error)
	// Save upserts by account id: a new code replaces any prior one in
	// a single atomic statement.
	Save(ctx context.Context, activation *entity.AccountActivation) error
}
