package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"artify/config"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"

	"github.com/pkg/errors"
)

// likesRepository serves the site-wide like aggregate with a short freshness
// window, so the landing page statistics strip does not hammer the backend on
// every render. Purely a UX optimization.
type likesRepository struct {
	client *Client
	ttl    time.Duration

	mu        sync.Mutex
	total     int
	fetchedAt time.Time
}

// NewLikesRepository is the constructor for the likes repository.
func NewLikesRepository(client *Client, cfg *config.Config) repository.LikesRepository {
	return &likesRepository{client: client, ttl: cfg.Backend.LikesFreshness}
}

func (r *likesRepository) Total(ctx context.Context) (int, error) {
	r.mu.Lock()
	if !r.fetchedAt.IsZero() && time.Since(r.fetchedAt) < r.ttl {
		total := r.total
		r.mu.Unlock()

		return total, nil
	}
	r.mu.Unlock()

	raw, err := r.client.do(ctx, http.MethodGet, "/likes/total", nil, nil)
	if err != nil {
		return 0, err
	}

	total, err := decodeTotal(raw)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.total = total
	r.fetchedAt = time.Now()
	r.mu.Unlock()

	return total, nil
}

// decodeTotal accepts either a bare number or a {total} object.
func decodeTotal(raw []byte) (int, error) {
	if firstByte(raw) == '{' {
		var body struct {
			Total int `json:"total"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return 0, errors.WithStack(domainerrors.NewDecodeError("/likes/total", err.Error()))
		}

		return body.Total, nil
	}

	var total int
	if err := json.Unmarshal(raw, &total); err != nil {
		return 0, errors.WithStack(domainerrors.NewDecodeError("/likes/total", err.Error()))
	}

	return total, nil
}
