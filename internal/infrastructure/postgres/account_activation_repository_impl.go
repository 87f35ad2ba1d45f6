package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// AccountActivationRepository is the pgx-backed implementation of the
// activation store. The primary key on account_id plus the single
// upsert statement guarantee at most one live code per account.
type AccountActivationRepository struct {
	pool *pgxpool.Pool
}

func NewAccountActivationRepository(pool *pgxpool.Pool) *AccountActivationRepository {
	return &AccountActivationRepository{pool: pool}
}

func (r *AccountActivationRepository) Save(ctx context.Context, activation *entity.AccountActivation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO account_activation (account_id, code, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE
		SET code = EXCLUDED.code,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at
	`, activation.AccountID().UUID(), activation.Code().String(), activation.CreatedAt(), activation.ExpiresAt())
	return err
}

func (r *AccountActivationRepository) FindByAccountID(ctx context.Context, id valueobject.AccountID) (*entity.AccountActivation, error) {
	var (
		rawID     string
		rawCode   string
		createdAt time.Time
		expiresAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT account_id, code, created_at, expires_at
		FROM account_activation
		WHERE account_id = $1
	`, id.UUID()).Scan(&rawID, &rawCode, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	accountID, err := valueobject.AccountIDFromString(rawID)
	if err != nil {
		return nil, err
	}
	code, err := valueobject.NewActivationCode(rawCode)
	if err != nil {
		return nil, err
	}
	return entity.RehydrateAccountActivation(accountID, code, createdAt, expiresAt), nil
}

var _ repository.AccountActivationRepository = (*AccountActivationRepository)(nil)
