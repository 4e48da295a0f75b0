package repository

import (
	"context"
	"errors"

	"artify/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when the backend has no such association.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the operations on the favorites collection.
type FavoriteRepository interface {
	// ListByEmail retrieves all favorites saved by the given principal.
	ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error)

	// Add associates a listing with a principal.
	Add(ctx context.Context, artID, email string) (*entity.Favorite, error)

	// Remove deletes the association by its own identifier.
	Remove(ctx context.Context, favoriteID string) error
}
