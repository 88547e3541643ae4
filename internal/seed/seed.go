// Package seed creates default data on startup.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/app/repositories"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/auth"
)

const defaultAdminUsername = "admin"

// CreateDefaultAdmin ensures an admin account exists. The password comes
// from ADMIN_PASSWORD; a fresh install without it gets a well-known
// default that should be changed immediately.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := repositories.NewAccountRepository(dbPool)

	if _, err := accountRepo.GetByUsername(ctx, defaultAdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrAccountNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, seeding admin account with default password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Account{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := accountRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin account created")
	return nil
}
