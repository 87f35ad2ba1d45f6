package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

const uniqueViolation = "23505"

// AccountRepository is the pgx-backed implementation of the account
// store. Save is a single upsert-by-id statement; the email unique
// constraint closes the register workflow's check-then-act window and
// is translated into repository.ErrEmailAlreadyExists.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Save(ctx context.Context, account *entity.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO account (id, email, password_hash, is_activated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    is_activated = EXCLUDED.is_activated,
		    updated_at = now()
	`, account.ID().UUID(), account.Email().String(), account.Password().Hash(), account.IsActivated())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "account_email_key" {
			return repository.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id valueobject.AccountID) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_activated
		FROM account
		WHERE id = $1
	`, id.UUID())
	return scanAccount(row)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_activated
		FROM account
		WHERE email = $1
	`, email.String())
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		rawID     string
		rawEmail  string
		hash      string
		activated bool
	)
	if err := row.Scan(&rawID, &rawEmail, &hash, &activated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	id, err := valueobject.AccountIDFromString(rawID)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.PasswordFromHash(hash)
	if err != nil {
		return nil, err
	}
	return entity.RehydrateAccount(id, email, password, activated), nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
