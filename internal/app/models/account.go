package models

import "time"

// Account defines the login credential model based on the 'accounts' table
type Account struct {
	ID           int64     `json:"id" db:"id" example:"1"`                        // Unique identifier for the account
	Username     string    `json:"username" db:"username" example:"pradeep"`      // Unique login name
	PasswordHash string    `json:"-" db:"password_hash"`                          // Salted bcrypt hash (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"student"`              // Account role (student or admin)
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`                     // Timestamp when the account was created
}
