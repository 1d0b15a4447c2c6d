package admin

import "errors"

var (
	ErrAdminNotFound           = errors.New("admin not found")
	ErrUsernameTaken           = errors.New("username already taken")
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrUsernameTooShort        = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort        = errors.New("password must be at least 6 characters")
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")
)
