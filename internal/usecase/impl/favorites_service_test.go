package impl

import (
	"context"
	"testing"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesService_List_RequiresPrincipal(t *testing.T) {
	service := NewFavoritesService(&fakeFavoriteRepository{}, testLogger(t))

	_, err := service.List(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestFavoritesService_Remove_UnconfirmedIsNoOp(t *testing.T) {
	removed := false
	favorites := &fakeFavoriteRepository{
		removeFn: func(ctx context.Context, favoriteID string) error {
			removed = true

			return nil
		},
	}
	service := NewFavoritesService(favorites, testLogger(t))

	err := service.Remove(context.Background(), adaPrincipal(), "f1", false)

	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFavoritesService_Remove_RollsBackOnFailure(t *testing.T) {
	favorites := &fakeFavoriteRepository{
		listByEmailFn: func(ctx context.Context, email string) ([]entity.Favorite, error) {
			return []entity.Favorite{{ID: "f1"}, {ID: "f2"}}, nil
		},
		removeFn: func(ctx context.Context, favoriteID string) error {
			return errors.New("backend refused")
		},
	}
	service := NewFavoritesService(favorites, testLogger(t))
	principal := adaPrincipal()

	_, err := service.List(context.Background(), principal)
	require.NoError(t, err)

	err = service.Remove(context.Background(), principal, "f1", true)
	require.ErrorIs(t, err, domainerrors.ErrDeleteFailed)

	items := service.(*favoritesService).views.view(principal.Email).snapshot()
	require.Len(t, items, 2)
}

func TestFavoritesService_Remove_KeepsChangeOnSuccess(t *testing.T) {
	favorites := &fakeFavoriteRepository{
		listByEmailFn: func(ctx context.Context, email string) ([]entity.Favorite, error) {
			return []entity.Favorite{{ID: "f1"}, {ID: "f2"}}, nil
		},
	}
	service := NewFavoritesService(favorites, testLogger(t))
	principal := adaPrincipal()

	_, err := service.List(context.Background(), principal)
	require.NoError(t, err)

	require.NoError(t, service.Remove(context.Background(), principal, "f1", true))

	items := service.(*favoritesService).views.view(principal.Email).snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "f2", items[0].ID)
}
