package usecase

import (
	"context"

	"artify/internal/domain/entity"
)

// DetailsUsecase serves the single-listing page: the listing itself, the like
// toggle, saving it as a favorite and the share code.
type DetailsUsecase interface {
	Get(ctx context.Context, artID string) (*entity.Artwork, error)

	// ToggleLike flips the caller's like and returns the fresh count.
	ToggleLike(ctx context.Context, artID string) (int, error)

	// AddFavorite saves the listing for the principal. Without a signed-in
	// principal it fails with a login-required error before anything is
	// written.
	AddFavorite(ctx context.Context, principal *entity.Principal, artID string) (*entity.Favorite, error)

	// ShareQR renders the share code PNG for the listing's public page.
	ShareQR(artID string) ([]byte, error)
}
