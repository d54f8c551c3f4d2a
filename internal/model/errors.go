package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already exists")
	ErrSelfDelete   = errors.New("cannot delete own account")
	ErrAdminDelete  = errors.New("cannot delete an admin account")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotApproved        = errors.New("account not approved by admin")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrAccountExpired     = errors.New("account expired")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// Authorization errors
	ErrAdminOnly = errors.New("admin privileges required")

	// Content errors
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrTipNotFound      = errors.New("tip not found")
)
