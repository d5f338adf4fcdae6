// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered customer or admin. Email is stored trimmed and
// lower-cased; PasswordHash is an argon2id PHC string.
type User struct {
	ID            string
	Email         string
	AccountNumber string
	FirstName     string
	LastName      string
	IDNumber      string
	PasswordHash  string
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Profile is the registration input.
type Profile struct {
	FirstName     string
	LastName      string
	IDNumber      string
	Email         string
	AccountNumber string
	Role          string
}

// UserSummary is the user view returned to clients after authentication.
type UserSummary struct {
	ID            string
	FullName      string
	Email         string
	AccountNumber string
	Role          string
}

// Summary builds the client view of u.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		FullName:      u.FullName(),
		Email:         u.Email,
		AccountNumber: u.AccountNumber,
		Role:          u.Role,
	}
}
