package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/logger"
)

// SessionRepository handles session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new session row
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("id", "account_id", "expires_at", "created_at").
		Values(session.ID, session.AccountID, session.ExpiresAt, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sessionID", session.ID).Int64("accountID", session.AccountID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID and checks that it is still live.
// Revoked and expired sessions are rejected here so the auth gate makes a
// fresh decision on every request.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	sql, args, err := r.sb.Select("id", "account_id", "expires_at", "revoked_at", "created_at").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session := &models.Session{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&session.ID, &session.AccountID, &session.ExpiresAt, &session.RevokedAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	if session.RevokedAt != nil {
		return nil, apperrors.ErrSessionRevoked
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}

	return session, nil
}

// Revoke marks a session as revoked. Revoking an already-revoked or
// missing session is a no-op, so logout stays idempotent.
func (r *SessionRepository) Revoke(ctx context.Context, id string) error {
	sql, args, err := r.sb.Update("sessions").
		Set("revoked_at", time.Now()).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sessionID", id).Msg("Error executing revoke session query")
		return fmt.Errorf("error revoking session: %w", err)
	}

	return nil
}

// CleanupExpired removes sessions that expired or were revoked more than
// the retention window ago.
func (r *SessionRepository) CleanupExpired(ctx context.Context) (int64, error) {
	thirtyDaysAgo := time.Now().Add(-30 * 24 * time.Hour)

	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Or{
			squirrel.Lt{"expires_at": time.Now()},
			squirrel.And{
				squirrel.NotEq{"revoked_at": nil},
				squirrel.Lt{"created_at": thirtyDaysAgo},
			},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup sessions query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up sessions: %w", err)
	}

	deletedCount := cmdTag.RowsAffected()
	logger.Info().Int64("deletedCount", deletedCount).Msg("Cleaned up expired/revoked sessions")

	return deletedCount, nil
}
