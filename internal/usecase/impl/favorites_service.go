package impl

import (
	"context"
	"log/slog"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/usecase"
)

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	favorites repository.FavoriteRepository
	logger    *slog.Logger

	views viewSet[entity.Favorite]
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(
	favorites repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.FavoritesUsecase {
	return &favoritesService{favorites: favorites, logger: logger}
}

func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoritesService) List(ctx context.Context, principal *entity.Principal) ([]entity.Favorite, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	view := srv.views.view(principal.Email)
	gen := view.begin()

	items, err := srv.favorites.ListByEmail(ctx, principal.Email)
	if err != nil {
		srv.log(ctx).Error("Favorites fetch failed",
			slog.String("email", principal.Email), slog.Any("error", err))

		return nil, wrapLoadError(err, "favorites")
	}

	if !view.complete(gen, items) {
		return view.snapshot(), nil
	}

	return items, nil
}

// Remove drops a favorite optimistically. Unconfirmed removes do nothing.
func (srv *favoritesService) Remove(ctx context.Context, principal *entity.Principal, favoriteID string, confirmed bool) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	view := srv.views.view(principal.Email)
	err := commitMutation(view, func(items []entity.Favorite) []entity.Favorite {
		return removeWhere(items, func(f entity.Favorite) bool { return f.ID == favoriteID })
	}, func() error {
		return srv.favorites.Remove(ctx, favoriteID)
	})
	if err != nil {
		srv.log(ctx).Warn("Favorite remove rolled back",
			slog.String("favorite_id", favoriteID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrDeleteFailed, favoriteID)
	}

	return nil
}
