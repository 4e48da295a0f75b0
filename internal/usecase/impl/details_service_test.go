package impl

import (
	"context"
	"testing"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQRService struct{}

func (stubQRService) ShareQR(artID string) ([]byte, error) {
	return []byte("png:" + artID), nil
}

func newDetailsFixture(t *testing.T, arts *fakeArtworkRepository, favorites *fakeFavoriteRepository) *detailsService {
	t.Helper()
	service := NewDetailsService(arts, favorites, stubQRService{}, testLogger(t))

	return service.(*detailsService)
}

func TestDetailsService_Get_MapsNotFound(t *testing.T) {
	arts := &fakeArtworkRepository{
		getFn: func(ctx context.Context, id string) (*entity.Artwork, error) {
			return nil, errors.Wrap(repository.ErrArtworkNotFound, id)
		},
	}
	service := newDetailsFixture(t, arts, &fakeFavoriteRepository{})

	_, err := service.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDetailsService_AddFavorite_AnonymousNeverWrites(t *testing.T) {
	favorites := &fakeFavoriteRepository{}
	service := newDetailsFixture(t, &fakeArtworkRepository{}, favorites)

	_, err := service.AddFavorite(context.Background(), nil, "a1")

	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
	assert.Zero(t, favorites.addCalls, "an anonymous favorite must not reach the backend")
}

func TestDetailsService_AddFavorite_UsesPrincipalEmail(t *testing.T) {
	favorites := &fakeFavoriteRepository{
		addFn: func(ctx context.Context, artID, email string) (*entity.Favorite, error) {
			assert.Equal(t, "a1", artID)
			assert.Equal(t, "ada@example.com", email)

			return &entity.Favorite{ID: "f1", ArtID: artID, UserEmail: email}, nil
		},
	}
	service := newDetailsFixture(t, &fakeArtworkRepository{}, favorites)

	favorite, err := service.AddFavorite(context.Background(), adaPrincipal(), "a1")

	require.NoError(t, err)
	assert.Equal(t, "f1", favorite.ID)
	assert.Equal(t, 1, favorites.addCalls)
}

func TestDetailsService_ToggleLike(t *testing.T) {
	arts := &fakeArtworkRepository{
		toggleLikeFn: func(ctx context.Context, id string) (int, error) {
			return 8, nil
		},
	}
	service := newDetailsFixture(t, arts, &fakeFavoriteRepository{})

	likes, err := service.ToggleLike(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, 8, likes)
}

func TestDetailsService_ShareQR(t *testing.T) {
	service := newDetailsFixture(t, &fakeArtworkRepository{}, &fakeFavoriteRepository{})

	png, err := service.ShareQR("a1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png:a1"), png)
}
