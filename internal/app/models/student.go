package models

import "time"

// Student defines the submitted student profile based on the 'students'
// table. One account relates to at most one student record; resubmitting
// the details form updates the existing row.
type Student struct {
	ID          int64     `json:"id" db:"id"`
	AccountID   int64     `json:"accountId" db:"account_id"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	Stream      string    `json:"stream" db:"stream"`
	PassingYear string    `json:"passingYear" db:"passing_year"`
	Board       string    `json:"board" db:"board"`
	SchoolName  string    `json:"schoolName" db:"school_name"`
	Percentage  string    `json:"percentage" db:"percentage"`
	Roll        string    `json:"roll" db:"roll"`
	Citizenship string    `json:"citizenship" db:"citizenship"`
	State       string    `json:"state" db:"state"`
	Address     string    `json:"address" db:"address"`
	PinCode     string    `json:"pinCode" db:"pin_code"`
	Caste       string    `json:"caste" db:"caste"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Documents []*Document `json:"documents,omitempty"`
}
