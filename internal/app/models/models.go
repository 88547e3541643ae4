package models

// Role defines the account role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)
