package entity

import "time"

// User is a back-office account (not a B2B partner).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" or "editor", carried into the token as-is
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
