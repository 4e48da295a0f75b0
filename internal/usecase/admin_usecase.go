package usecase

import (
	"context"

	"artify/internal/domain/entity"
)

// AdminUsecase serves the administrator screens: site statistics, the full
// listing table, user management and the report queue. List mutations follow
// the optimistic contract; destructive ones take a confirm flag.
type AdminUsecase interface {
	Stats(ctx context.Context) (*entity.AdminStats, error)

	// Arts lists every listing regardless of visibility.
	Arts(ctx context.Context) ([]entity.Artwork, error)
	DeleteArt(ctx context.Context, artID string, confirmed bool) error
	SetFeatured(ctx context.Context, artID string, featured bool) error
	SetVisibility(ctx context.Context, artID string, visibility entity.Visibility) error

	Users(ctx context.Context) ([]entity.User, error)

	// ToggleRole flips a user between the ordinary and administrator roles.
	ToggleRole(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string, confirmed bool) error

	Reports(ctx context.Context) ([]entity.Report, error)

	// ResolveReport dismisses a report, leaving the listing alone.
	ResolveReport(ctx context.Context, reportID string) error

	// DeleteReportedArt removes the reported listing and drops the report
	// from the queue.
	DeleteReportedArt(ctx context.Context, reportID, artID string, confirmed bool) error
}
