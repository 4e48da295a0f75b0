package repository

import (
	"context"

	"artify/internal/domain/entity"
)

// AdminRepository defines the admin-scoped aggregate endpoints.
type AdminRepository interface {
	// Stats retrieves the dashboard aggregates.
	Stats(ctx context.Context) (*entity.AdminStats, error)

	// Arts retrieves every listing regardless of visibility.
	Arts(ctx context.Context) ([]entity.Artwork, error)

	// Reports retrieves the open report queue.
	Reports(ctx context.Context) ([]entity.Report, error)

	// ResolveReport dismisses a report without touching the listing.
	ResolveReport(ctx context.Context, reportID string) error
}

// LikesRepository exposes the site-wide like aggregate shown on the landing
// page statistics strip.
type LikesRepository interface {
	// Total returns the aggregate like count. Implementations may serve a
	// cached value inside a short freshness window; this is a UX
	// optimization, not a correctness mechanism.
	Total(ctx context.Context) (int, error)
}
