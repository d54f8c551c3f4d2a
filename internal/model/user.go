package model

import "time"

// UserID uniquely identifies a user account across the system
type UserID string

// Role determines an account's privilege level
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account
type User struct {
	ID              UserID
	Username        string // login username (unique)
	Email           string // unique when set
	PasswordHash    string // bcrypt hash, never the plaintext
	Role            Role
	IsActive        bool
	ApprovedByAdmin bool
	CreatedAt       time.Time
	ExpiresAt       *time.Time // nil for admins and non-expiring accounts
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Expired reports whether the account's membership has lapsed.
// Admin accounts never expire, regardless of any stored expiry.
func (u *User) Expired(now time.Time) bool {
	if u.IsAdmin() || u.ExpiresAt == nil {
		return false
	}
	return now.After(*u.ExpiresAt)
}

// CanLogin reports whether the account passed the admin approval gate
// and has not been deactivated
func (u *User) CanLogin() bool {
	return u.IsActive && u.ApprovedByAdmin
}
