package auth

import (
	"context"
	"errors"
)

var ErrEmailTaken = errors.New("email taken")
var ErrUserNotFound = errors.New("user not found")

// UserRepository abstracts user persistence so the service can run against
// Postgres or the in-memory demo store.
type UserRepository interface {
	// Create persists a new user and fills in its store-assigned ID.
	// Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, u *User) error

	// FindByEmail returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
