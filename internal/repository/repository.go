// Package repository persists users. Every driver enforces email uniqueness
// inside Create so concurrent sign-ups cannot both succeed.
package repository

import (
	"context"
	"errors"

	"github.com/example/usersvc/internal/models"
)

var (
	// ErrNotFound is returned when no user has the requested email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Create when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository stores and retrieves users.
type UserRepository interface {
	// FindByEmail looks a user up by exact email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts user unless its case-folded email is taken.
	Create(ctx context.Context, user *models.User) error
	// Save persists the login fields (last login, token) of an existing user.
	Save(ctx context.Context, user *models.User) error
}
