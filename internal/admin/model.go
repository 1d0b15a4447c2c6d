package admin

import "time"

type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UpdateProfileInput struct {
	Username        *string
	Email           *string
	NewPassword     *string
	CurrentPassword *string
}
