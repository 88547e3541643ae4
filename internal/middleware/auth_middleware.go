// Package middleware provides gin middleware for authentication and
// centralized error handling.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/auth"
)

// Context keys set by RequireAuth
const (
	ContextAccountID = "accountID"
	ContextUsername  = "username"
	ContextRole      = "role"
	ContextSessionID = "sessionID"
)

// AuthMiddleware gates protected routes. Every request re-checks the
// session row so a revoked session stops working immediately, token
// signature notwithstanding.
type AuthMiddleware struct {
	tokenSvc *auth.TokenService
	sessions services.SessionStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokenSvc *auth.TokenService, sessions services.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		sessions: sessions,
	}
}

// RequireAuth validates the bearer token and the session behind it
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Session expired, please log in again")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid session token")
			return
		}

		session, err := m.sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrSessionExpired):
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Session expired, please log in again")
			case errors.Is(err, apperrors.ErrSessionRevoked), errors.Is(err, apperrors.ErrSessionNotFound):
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Session is no longer valid")
			default:
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			}
			return
		}

		c.Set(ContextAccountID, session.AccountID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextSessionID, session.ID)

		c.Next()
	}
}

// RoleRequired checks the role set by RequireAuth
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// AccountIDFromContext reads the authenticated account id set by RequireAuth
func AccountIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextAccountID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// SessionIDFromContext reads the session id set by RequireAuth
func SessionIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextSessionID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}
