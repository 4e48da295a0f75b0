package usecase

import (
	"context"

	"artify/internal/domain/entity"
)

// ExploreQuery carries the public browse filters. Zero values mean no filter;
// Page and Limit are normalized by the usecase.
type ExploreQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

// ExploreView is one page of the public browse surface together with the
// derived pagination facts.
type ExploreView struct {
	Items      []entity.Artwork
	Total      int
	TotalPages int
	Page       int
	Limit      int
}

// ExploreUsecase serves the public browsing surfaces: the paginated explore
// grid, the featured strip and the landing page like aggregate.
type ExploreUsecase interface {
	Browse(ctx context.Context, q ExploreQuery) (*ExploreView, error)
	Featured(ctx context.Context) ([]entity.Artwork, error)
	SiteLikes(ctx context.Context) (int, error)
}
