package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/auth"
)

// AuthService handles registration, login and logout
type AuthService struct {
	accounts AccountStore
	sessions SessionStore
	tokenSvc *auth.TokenService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts AccountStore, sessions SessionStore, tokenSvc *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register creates a new student account. Both fields are trimmed and
// required; username uniqueness is enforced by the store's constraint,
// not a pre-check.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" {
		return nil, apperrors.NewFieldError("username", "username is required")
	}
	if password == "" {
		return nil, apperrors.NewFieldError("password", "password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Int64("accountID", account.ID).Msg("Account registered")
	return account, nil
}

// Login authenticates the credentials and opens a new session. Unknown
// username and wrong password both fail with ErrInvalidCredentials so the
// response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, expiresAt, err := s.tokenSvc.Issue(account, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	session := &models.Session{
		ID:        sessionID,
		AccountID: account.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	s.logger.Info().Str("username", username).Str("sessionID", sessionID).Msg("Login successful")

	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(time.Until(expiresAt).Seconds()),
		Role:      string(account.Role),
	}, nil
}

// Logout revokes the session so the token stops working immediately
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}
	s.logger.Info().Str("sessionID", sessionID).Msg("Session revoked")
	return nil
}
