package auth

import "context"

// Repository is the data access contract for user accounts.
type Repository interface {
	// GetByEmail returns ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
