package usecase

import (
	"context"
	"io"

	"artify/internal/domain/entity"
)

// CreateArtworkInput carries the add-artwork form. Image is uploaded to the
// image host first; the listing stores only the resulting URL.
type CreateArtworkInput struct {
	Title       string
	Category    string
	Medium      string
	Description string
	Dimensions  string
	Price       float64
	Visibility  entity.Visibility
	ImageName   string
	Image       io.Reader
}

// GalleryUsecase serves the principal's own corner of the site: their
// listings, the add form and the personal dashboard statistics. Mutations are
// applied optimistically to the held view and rolled back when the backend
// refuses them.
type GalleryUsecase interface {
	List(ctx context.Context, principal *entity.Principal) ([]entity.Artwork, error)
	Create(ctx context.Context, principal *entity.Principal, input CreateArtworkInput) (*entity.Artwork, error)
	Update(ctx context.Context, principal *entity.Principal, artID string, patch entity.ArtworkPatch) error

	// Delete removes an owned listing. The confirmed flag is the caller's
	// confirm step; an unconfirmed delete is a no-op.
	Delete(ctx context.Context, principal *entity.Principal, artID string, confirmed bool) error

	Stats(ctx context.Context, principal *entity.Principal) (*entity.DashboardStats, error)
}
