package impl

import (
	"context"
	"log/slog"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultBrowseLimit = 12
	maxBrowseLimit     = 60
)

// exploreService implements the ExploreUsecase interface.
type exploreService struct {
	arts   repository.ArtworkRepository
	likes  repository.LikesRepository
	logger *slog.Logger
}

// NewExploreService is the constructor for exploreService.
func NewExploreService(
	arts repository.ArtworkRepository,
	likes repository.LikesRepository,
	logger *slog.Logger,
) usecase.ExploreUsecase {
	return &exploreService{arts: arts, likes: likes, logger: logger}
}

func (srv *exploreService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse serves one page of the public grid. Filtering, searching and
// pagination are all server-side; this only normalizes the query and derives
// the page count.
func (srv *exploreService) Browse(ctx context.Context, q usecase.ExploreQuery) (*usecase.ExploreView, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultBrowseLimit
	}
	if q.Limit > maxBrowseLimit {
		q.Limit = maxBrowseLimit
	}

	page, err := srv.arts.List(ctx, repository.ArtworkQuery{
		Search:   q.Search,
		Category: q.Category,
		Sort:     q.Sort,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		srv.log(ctx).Error("Browse failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "browse")
	}

	total := page.Total
	if total < len(page.Items) {
		total = len(page.Items)
	}

	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	return &usecase.ExploreView{
		Items:      page.Items,
		Total:      total,
		TotalPages: totalPages,
		Page:       q.Page,
		Limit:      q.Limit,
	}, nil
}

// Featured serves the home page strip.
func (srv *exploreService) Featured(ctx context.Context) ([]entity.Artwork, error) {
	items, err := srv.arts.Featured(ctx)
	if err != nil {
		srv.log(ctx).Error("Featured fetch failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "featured")
	}

	return items, nil
}

// SiteLikes serves the landing page like aggregate.
func (srv *exploreService) SiteLikes(ctx context.Context) (int, error) {
	total, err := srv.likes.Total(ctx)
	if err != nil {
		srv.log(ctx).Warn("Like aggregate fetch failed", slog.Any("error", err))

		return 0, wrapLoadError(err, "likes")
	}

	return total, nil
}

// wrapLoadError maps a repository failure to the load-failed taxonomy while
// letting session expiry and decode errors pass through untouched.
func wrapLoadError(err error, what string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrLoadFailed, what)
}
