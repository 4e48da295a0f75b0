package repository

import (
	"context"
	"errors"

	"artify/internal/domain/entity"
)

// ErrUserNotFound is returned when the backend has no such user record.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on the backend user collection.
// Identity lives with the external provider; these rows are the backend's
// mirror of it, written by the post-login upsert.
type UserRepository interface {
	// List retrieves every user record. Admin scope.
	List(ctx context.Context) ([]entity.User, error)

	// Upsert writes the principal's profile into the user collection.
	Upsert(ctx context.Context, user *entity.User) error

	// UpdateRole changes a user's role. Admin scope.
	UpdateRole(ctx context.Context, userID string, role entity.Role) error

	// Delete removes a user record. Admin scope.
	Delete(ctx context.Context, userID string) error

	// IsAdmin reports whether the given email carries the administrator role.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
