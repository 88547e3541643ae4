package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/dberrors"
)

// AccountRepository handles credential database operations
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. The accounts_username_key constraint is the
// source of truth for uniqueness; there is no pre-check, so two concurrent
// registrations cannot race past it.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		account.Username, account.PasswordHash, account.Role).
		Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// GetByUsername retrieves an account by username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, role, created_at
		FROM accounts
		WHERE username = $1`,
		username).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Role, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}
