package usecase

import (
	"context"

	"artify/internal/domain/entity"
)

// FavoritesUsecase serves the principal's saved listings. Removal is
// optimistic with rollback, same contract as the gallery.
type FavoritesUsecase interface {
	List(ctx context.Context, principal *entity.Principal) ([]entity.Favorite, error)

	// Remove deletes a saved favorite. An unconfirmed remove is a no-op.
	Remove(ctx context.Context, principal *entity.Principal, favoriteID string, confirmed bool) error
}
