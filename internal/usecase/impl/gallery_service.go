package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/domain/service"
	"artify/internal/usecase"

	"github.com/pkg/errors"
)

// galleryService implements the GalleryUsecase interface. One optimistic view
// of the owned listings is held per principal.
type galleryService struct {
	arts      repository.ArtworkRepository
	favorites repository.FavoriteRepository
	imageHost service.ImageHost
	logger    *slog.Logger

	views viewSet[entity.Artwork]
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(
	arts repository.ArtworkRepository,
	favorites repository.FavoriteRepository,
	imageHost service.ImageHost,
	logger *slog.Logger,
) usecase.GalleryUsecase {
	return &galleryService{arts: arts, favorites: favorites, imageHost: imageHost, logger: logger}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List refetches the principal's listings. A result that lost the race
// against a newer fetch or a mutation is discarded and the current view is
// served instead.
func (srv *galleryService) List(ctx context.Context, principal *entity.Principal) ([]entity.Artwork, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	view := srv.views.view(principal.Email)
	gen := view.begin()

	items, err := srv.arts.ListByOwner(ctx, principal.Email)
	if err != nil {
		srv.log(ctx).Error("Gallery fetch failed",
			slog.String("email", principal.Email), slog.Any("error", err))

		return nil, wrapLoadError(err, "gallery")
	}

	if !view.complete(gen, items) {
		return view.snapshot(), nil
	}

	return items, nil
}

// Create uploads the image first, then posts the listing denormalized with
// the owner's profile.
func (srv *galleryService) Create(ctx context.Context, principal *entity.Principal, input usecase.CreateArtworkInput) (*entity.Artwork, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	imageURL := ""
	if input.Image != nil {
		url, err := srv.imageHost.Upload(ctx, input.ImageName, input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	visibility := input.Visibility
	if !visibility.IsValid() {
		visibility = entity.VisibilityPublic
	}

	art := &entity.Artwork{
		Title:       input.Title,
		Image:       imageURL,
		Category:    input.Category,
		Medium:      input.Medium,
		Description: input.Description,
		Dimensions:  input.Dimensions,
		Price:       input.Price,
		Visibility:  visibility,
		OwnerName:   principal.Name,
		OwnerEmail:  principal.Email,
		OwnerPhoto:  principal.PhotoURL,
		CreatedAt:   time.Now(),
	}

	if err := srv.arts.Create(ctx, art); err != nil {
		srv.log(ctx).Error("Listing create failed",
			slog.String("email", principal.Email), slog.Any("error", err))

		return nil, err
	}

	srv.views.view(principal.Email).mutate(func(items []entity.Artwork) []entity.Artwork {
		return append(items, *art)
	})
	srv.log(ctx).Info("Listing created", slog.String("email", principal.Email), slog.String("title", art.Title))

	return art, nil
}

// Update patches an owned listing optimistically.
func (srv *galleryService) Update(ctx context.Context, principal *entity.Principal, artID string, patch entity.ArtworkPatch) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	view := srv.views.view(principal.Email)
	err := commitMutation(view, func(items []entity.Artwork) []entity.Artwork {
		for i := range items {
			if items[i].ID == artID {
				items[i] = patch.Apply(items[i])
			}
		}

		return items
	}, func() error {
		return srv.arts.Update(ctx, artID, patch)
	})
	if err != nil {
		srv.log(ctx).Warn("Listing update rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrUpdateFailed, artID)
	}

	return nil
}

// Delete removes an owned listing optimistically. Unconfirmed deletes do
// nothing at all.
func (srv *galleryService) Delete(ctx context.Context, principal *entity.Principal, artID string, confirmed bool) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	view := srv.views.view(principal.Email)
	err := commitMutation(view, func(items []entity.Artwork) []entity.Artwork {
		return removeWhere(items, func(a entity.Artwork) bool { return a.ID == artID })
	}, func() error {
		return srv.arts.Delete(ctx, artID)
	})
	if err != nil {
		srv.log(ctx).Warn("Listing delete rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrDeleteFailed, artID)
	}
	srv.log(ctx).Info("Listing deleted", slog.String("art_id", artID))

	return nil
}

// Stats derives the personal dashboard numbers from the owned listings and
// saved favorites.
func (srv *galleryService) Stats(ctx context.Context, principal *entity.Principal) (*entity.DashboardStats, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	arts, err := srv.arts.ListByOwner(ctx, principal.Email)
	if err != nil {
		return nil, wrapLoadError(err, "stats")
	}

	favs, err := srv.favorites.ListByEmail(ctx, principal.Email)
	if err != nil {
		srv.log(ctx).Warn("Favorite count unavailable for stats", slog.Any("error", err))
		favs = nil
	}

	stats := &entity.DashboardStats{
		TotalArtworks:  len(arts),
		TotalFavorites: len(favs),
	}
	today := time.Now().Truncate(24 * time.Hour)
	for _, art := range arts {
		stats.TotalLikes += art.Likes
		if !art.CreatedAt.Before(today) {
			stats.NewToday++
		}
	}

	return stats, nil
}

// wrapMutationError maps a repository failure onto the given taxonomy entry,
// letting errors that already carry one pass through.
func wrapMutationError(err error, base *domainerrors.BaseError, what string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(base, what)
}
