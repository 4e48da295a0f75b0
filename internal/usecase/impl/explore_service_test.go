package impl

import (
	"context"
	"testing"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreService_Browse_PassesFiltersThrough(t *testing.T) {
	var got repository.ArtworkQuery
	arts := &fakeArtworkRepository{
		listFn: func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
			got = q

			return &repository.ArtworkPage{
				Items: []entity.Artwork{{ID: "a1"}},
				Total: 25, Page: q.Page, Limit: q.Limit,
			}, nil
		},
	}
	service := NewExploreService(arts, &fakeLikesRepository{}, testLogger(t))

	view, err := service.Browse(context.Background(), usecase.ExploreQuery{
		Search: "sunset", Category: "Painting", Sort: "price_asc", Page: 2, Limit: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, "sunset", got.Search)
	assert.Equal(t, "Painting", got.Category)
	assert.Equal(t, "price_asc", got.Sort)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 25, view.Total)
	assert.Equal(t, 3, view.TotalPages, "ceil(25/12)")
}

func TestExploreService_Browse_NormalizesPageAndLimit(t *testing.T) {
	var got repository.ArtworkQuery
	arts := &fakeArtworkRepository{
		listFn: func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
			got = q

			return &repository.ArtworkPage{}, nil
		},
	}
	service := NewExploreService(arts, &fakeLikesRepository{}, testLogger(t))

	_, err := service.Browse(context.Background(), usecase.ExploreQuery{Page: -3, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, defaultBrowseLimit, got.Limit)
}

func TestExploreService_Browse_TotalFallsBackToPageLength(t *testing.T) {
	arts := &fakeArtworkRepository{
		listFn: func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
			// A backend answering a bare array reports no total.
			return &repository.ArtworkPage{
				Items: []entity.Artwork{{ID: "a1"}, {ID: "a2"}},
				Total: 0,
			}, nil
		},
	}
	service := NewExploreService(arts, &fakeLikesRepository{}, testLogger(t))

	view, err := service.Browse(context.Background(), usecase.ExploreQuery{Page: 1, Limit: 12})

	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.TotalPages)
}

func TestExploreService_Browse_LoadFailure(t *testing.T) {
	arts := &fakeArtworkRepository{
		listFn: func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := NewExploreService(arts, &fakeLikesRepository{}, testLogger(t))

	_, err := service.Browse(context.Background(), usecase.ExploreQuery{})

	assert.ErrorIs(t, err, domainerrors.ErrLoadFailed)
}

func TestExploreService_Browse_SessionExpiryPassesThrough(t *testing.T) {
	arts := &fakeArtworkRepository{
		listFn: func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
			return nil, errors.WithStack(domainerrors.ErrSessionExpired)
		},
	}
	service := NewExploreService(arts, &fakeLikesRepository{}, testLogger(t))

	_, err := service.Browse(context.Background(), usecase.ExploreQuery{})

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestExploreService_SiteLikes(t *testing.T) {
	likes := &fakeLikesRepository{totalFn: func(ctx context.Context) (int, error) { return 321, nil }}
	service := NewExploreService(&fakeArtworkRepository{}, likes, testLogger(t))

	total, err := service.SiteLikes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 321, total)
}
