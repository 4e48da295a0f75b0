package rest

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"artify/config"
	"artify/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLikesRepository(t *testing.T, ttl time.Duration, handler http.Handler) repository.LikesRepository {
	t.Helper()
	client := newTestClient(t, handler)
	cfg := &config.Config{}
	cfg.Backend = &config.BackendConfig{LikesFreshness: ttl}

	return NewLikesRepository(client, cfg)
}

func TestLikesRepository_Total_ServesCachedValueWithinWindow(t *testing.T) {
	var hits atomic.Int32
	repo := newTestLikesRepository(t, time.Minute, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"total":120}`))
	}))

	first, err := repo.Total(context.Background())
	require.NoError(t, err)

	second, err := repo.Total(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, first)
	assert.Equal(t, 120, second)
	assert.Equal(t, int32(1), hits.Load(), "second call within the window must be served from cache")
}

func TestLikesRepository_Total_RefetchesAfterWindow(t *testing.T) {
	var hits atomic.Int32
	repo := newTestLikesRepository(t, time.Nanosecond, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"total":120}`))
	}))

	_, err := repo.Total(context.Background())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = repo.Total(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestDecodeTotal_BareNumber(t *testing.T) {
	total, err := decodeTotal([]byte(`42`))

	require.NoError(t, err)
	assert.Equal(t, 42, total)
}
