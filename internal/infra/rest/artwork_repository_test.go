package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"artify/internal/domain/entity"
	"artify/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArtworkRepository(t *testing.T, handler http.Handler) repository.ArtworkRepository {
	t.Helper()
	client := newTestClient(t, handler)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewArtworkRepository(client, logger)
}

func TestArtworkRepository_List_SendsQueryParams(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/arts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
		assert.Equal(t, "sunset", r.URL.Query().Get("search"))
		assert.Equal(t, "Painting", r.URL.Query().Get("category"))
		assert.Equal(t, "price_asc", r.URL.Query().Get("sort"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"_id": "a1", "title": "Sunset"}},
			"total": 25, "page": 2, "limit": 12,
		})
	}))

	page, err := repo.List(context.Background(), repository.ArtworkQuery{
		Search: "sunset", Category: "Painting", Sort: "price_asc", Page: 2, Limit: 12,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)
}

func TestArtworkRepository_List_BareArrayFallsBackToLength(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"a1"},{"_id":"a2"},{"_id":"a3"}]`))
	}))

	page, err := repo.List(context.Background(), repository.ArtworkQuery{Page: 1, Limit: 12})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Limit)
}

func TestArtworkRepository_Get_NotFound(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrArtworkNotFound)
}

func TestArtworkRepository_Get_WrappedPayload(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"_id":"a1","title":"Dawn","likes":4}}`))
	}))

	art, err := repo.Get(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, "a1", art.ID)
	assert.Equal(t, 4, art.Likes)
}

func TestArtworkRepository_ListByOwner_FallsThroughEndpoints(t *testing.T) {
	var paths []string
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		switch {
		case r.URL.Path == "/my-arts":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Query().Get("artistEmail") != "":
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`[{"_id":"a1","userEmail":"owner@example.com"}]`))
		}
	}))

	items, err := repo.ListByOwner(context.Background(), "owner@example.com")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	require.Len(t, paths, 3)
}

func TestArtworkRepository_ListByOwner_AllEmpty(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	items, err := repo.ListByOwner(context.Background(), "owner@example.com")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestArtworkRepository_Update_SendsOnlyPatchedFields(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/arts/a1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"featured": true}, body)

		w.WriteHeader(http.StatusOK)
	}))

	featured := true
	err := repo.Update(context.Background(), "a1", entity.ArtworkPatch{Featured: &featured})

	require.NoError(t, err)
}

func TestArtworkRepository_ToggleLike_BothShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare likes field", body: `{"likes":7}`, want: 7},
		{name: "wrapped in data", body: `{"data":{"likes":9}}`, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPatch, r.Method)
				assert.Equal(t, "/arts/a1/like", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))

			likes, err := repo.ToggleLike(context.Background(), "a1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, likes)
		})
	}
}

func TestArtworkRepository_ToggleLike_NoLikesField(t *testing.T) {
	repo := newTestArtworkRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	_, err := repo.ToggleLike(context.Background(), "a1")

	require.Error(t, err)
}
