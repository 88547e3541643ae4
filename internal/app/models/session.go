package models

import "time"

// Session defines the server-side session row based on the 'sessions'
// table. Tokens presented by clients are only honored while the matching
// row is unrevoked and unexpired, so logout takes effect immediately.
type Session struct {
	ID        string     `json:"id" db:"id"` // UUID, also carried in the token claims
	AccountID int64      `json:"accountId" db:"account_id"`
	ExpiresAt time.Time  `json:"expiresAt" db:"expires_at"`
	RevokedAt *time.Time `json:"revokedAt,omitempty" db:"revoked_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
