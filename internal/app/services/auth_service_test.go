package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/auth"
)

type fakeAccountStore struct {
	byUsername map[string]*models.Account
	nextID     int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{byUsername: make(map[string]*models.Account), nextID: 1}
}

func (s *fakeAccountStore) Create(_ context.Context, account *models.Account) error {
	if _, exists := s.byUsername[account.Username]; exists {
		return apperrors.ErrUsernameAlreadyExists
	}
	account.ID = s.nextID
	s.nextID++
	account.CreatedAt = time.Now()
	s.byUsername[account.Username] = account
	return nil
}

func (s *fakeAccountStore) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	account, exists := s.byUsername[username]
	if !exists {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, session *models.Session) error {
	session.CreatedAt = time.Now()
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	session, exists := s.sessions[id]
	if !exists {
		return nil, apperrors.ErrSessionNotFound
	}
	if session.RevokedAt != nil {
		return nil, apperrors.ErrSessionRevoked
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

func (s *fakeSessionStore) Revoke(_ context.Context, id string) error {
	if session, exists := s.sessions[id]; exists && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "test-secret",
		SessionTTL:  time.Hour,
		TokenIssuer: "test",
	})
}

func newTestAuthService(accounts *fakeAccountStore, sessions *fakeSessionStore) *AuthService {
	return NewAuthService(accounts, sessions, newTestTokenService(), zerolog.Nop())
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password", func(t *testing.T) {
		accounts := newFakeAccountStore()
		svc := newTestAuthService(accounts, newFakeSessionStore())

		account, err := svc.Register(ctx, "  pradeep  ", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "pradeep", account.Username)
		assert.Equal(t, models.RoleStudent, account.Role)
		assert.NotEqual(t, "secret123", account.PasswordHash)
		assert.True(t, auth.CheckPassword(account.PasswordHash, "secret123"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		svc := newTestAuthService(newFakeAccountStore(), newFakeSessionStore())

		_, err := svc.Register(ctx, "   ", "secret123")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		var fieldErr *apperrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "username", fieldErr.Field)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		svc := newTestAuthService(newFakeAccountStore(), newFakeSessionStore())

		_, err := svc.Register(ctx, "pradeep", "")
		require.Error(t, err)

		var fieldErr *apperrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "password", fieldErr.Field)
	})

	t.Run("duplicate username keeps original account", func(t *testing.T) {
		accounts := newFakeAccountStore()
		svc := newTestAuthService(accounts, newFakeSessionStore())

		first, err := svc.Register(ctx, "pradeep", "original")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "pradeep", "other")
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

		stored, err := accounts.GetByUsername(ctx, "pradeep")
		require.NoError(t, err)
		assert.Equal(t, first.PasswordHash, stored.PasswordHash)
		assert.True(t, auth.CheckPassword(stored.PasswordHash, "original"))
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials open a session", func(t *testing.T) {
		accounts := newFakeAccountStore()
		sessions := newFakeSessionStore()
		svc := newTestAuthService(accounts, sessions)

		_, err := svc.Register(ctx, "pradeep", "secret123")
		require.NoError(t, err)

		resp, err := svc.Login(ctx, "pradeep", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, string(models.RoleStudent), resp.Role)
		assert.Greater(t, resp.ExpiresIn, int64(0))

		claims, err := newTestTokenService().Validate(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "pradeep", claims.Username)

		_, err = sessions.Get(ctx, claims.SessionID)
		assert.NoError(t, err)
	})

	t.Run("unknown username fails with invalid credentials", func(t *testing.T) {
		svc := newTestAuthService(newFakeAccountStore(), newFakeSessionStore())

		_, err := svc.Login(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password fails the same way as unknown user", func(t *testing.T) {
		accounts := newFakeAccountStore()
		svc := newTestAuthService(accounts, newFakeSessionStore())

		_, err := svc.Register(ctx, "pradeep", "secret123")
		require.NoError(t, err)

		_, wrongPassErr := svc.Login(ctx, "pradeep", "wrong")
		_, unknownErr := svc.Login(ctx, "nobody", "wrong")

		assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPassErr, unknownErr)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccountStore()
	sessions := newFakeSessionStore()
	svc := newTestAuthService(accounts, sessions)

	_, err := svc.Register(ctx, "pradeep", "secret123")
	require.NoError(t, err)

	resp, err := svc.Login(ctx, "pradeep", "secret123")
	require.NoError(t, err)

	claims, err := newTestTokenService().Validate(resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	_, err = sessions.Get(ctx, claims.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)

	// Logging out again is a no-op
	assert.NoError(t, svc.Logout(ctx, claims.SessionID))
}
