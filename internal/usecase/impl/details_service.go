package impl

import (
	"context"
	"log/slog"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/domain/service"
	"artify/internal/usecase"

	"github.com/pkg/errors"
)

// detailsService implements the DetailsUsecase interface.
type detailsService struct {
	arts      repository.ArtworkRepository
	favorites repository.FavoriteRepository
	qr        service.QRCodeService
	logger    *slog.Logger
}

// NewDetailsService is the constructor for detailsService.
func NewDetailsService(
	arts repository.ArtworkRepository,
	favorites repository.FavoriteRepository,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.DetailsUsecase {
	return &detailsService{arts: arts, favorites: favorites, qr: qr, logger: logger}
}

func (srv *detailsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *detailsService) Get(ctx context.Context, artID string) (*entity.Artwork, error) {
	art, err := srv.arts.Get(ctx, artID)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, artID)
		}
		srv.log(ctx).Error("Listing fetch failed", slog.String("art_id", artID), slog.Any("error", err))

		return nil, wrapLoadError(err, artID)
	}

	return art, nil
}

func (srv *detailsService) ToggleLike(ctx context.Context, artID string) (int, error) {
	likes, err := srv.arts.ToggleLike(ctx, artID)
	if err != nil {
		srv.log(ctx).Warn("Like toggle failed", slog.String("art_id", artID), slog.Any("error", err))

		return 0, err
	}

	return likes, nil
}

// AddFavorite saves the listing for the principal. The login check comes
// first: an anonymous caller gets a login-required error and nothing is sent
// to the backend.
func (srv *detailsService) AddFavorite(ctx context.Context, principal *entity.Principal, artID string) (*entity.Favorite, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	favorite, err := srv.favorites.Add(ctx, artID, principal.Email)
	if err != nil {
		srv.log(ctx).Warn("Favorite add failed",
			slog.String("art_id", artID), slog.String("email", principal.Email), slog.Any("error", err))

		return nil, err
	}

	return favorite, nil
}

func (srv *detailsService) ShareQR(artID string) ([]byte, error) {
	return srv.qr.ShareQR(artID)
}

// requirePrincipal guards operations that only make sense for a signed-in
// principal.
func requirePrincipal(principal *entity.Principal) error {
	if principal == nil || principal.Email == "" {
		return errors.WithStack(domainerrors.ErrLoginRequired)
	}

	return nil
}
