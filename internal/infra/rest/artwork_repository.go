package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"

	"github.com/pkg/errors"
)

// artworkRepository implements repository.ArtworkRepository against the
// backend artwork collection.
type artworkRepository struct {
	client *Client
	logger *slog.Logger
}

// NewArtworkRepository is the constructor for the artwork repository.
func NewArtworkRepository(client *Client, logger *slog.Logger) repository.ArtworkRepository {
	return &artworkRepository{client: client, logger: logger}
}

func (r *artworkRepository) List(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(max(q.Page, 1)))
	query.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}

	raw, err := r.client.do(ctx, http.MethodGet, "/arts", query, nil)
	if err != nil {
		return nil, err
	}

	items, total, page, limit, err := decodeList[entity.Artwork]("/arts", raw)
	if err != nil {
		return nil, err
	}

	// The backend does not always report a total; fall back to the page
	// length so the caller can still render something.
	if total == 0 {
		total = len(items)
	}
	if page == 0 {
		page = max(q.Page, 1)
	}
	if limit == 0 {
		limit = q.Limit
	}

	return &repository.ArtworkPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (r *artworkRepository) Featured(ctx context.Context) ([]entity.Artwork, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/arts/featured", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, _, _, err := decodeList[entity.Artwork]("/arts/featured", raw)

	return items, err
}

func (r *artworkRepository) Get(ctx context.Context, id string) (*entity.Artwork, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/arts/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, errors.Wrap(repository.ErrArtworkNotFound, id)
		}

		return nil, err
	}

	art, err := decodeArtwork("/arts/:id", raw)
	if err != nil {
		return nil, err
	}

	return art, nil
}

// ownerEndpoints is the fallback chain for the "my artworks" scope: a
// dedicated endpoint first, then the filtered collection under either of the
// parameter names the backend has answered to.
func ownerEndpoints(email string) []struct {
	path  string
	query url.Values
} {
	return []struct {
		path  string
		query url.Values
	}{
		{path: "/my-arts", query: url.Values{"email": {email}}},
		{path: "/arts", query: url.Values{"artistEmail": {email}, "page": {"1"}, "limit": {"100"}}},
		{path: "/arts", query: url.Values{"userEmail": {email}, "page": {"1"}, "limit": {"100"}}},
	}
}

func (r *artworkRepository) ListByOwner(ctx context.Context, email string) ([]entity.Artwork, error) {
	var lastErr error
	for _, ep := range ownerEndpoints(email) {
		raw, err := r.client.do(ctx, http.MethodGet, ep.path, ep.query, nil)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionExpired) {
				return nil, err
			}
			r.logger.Debug("Owner scope endpoint failed, trying next",
				slog.String("path", ep.path), slog.Any("error", err))
			lastErr = err

			continue
		}

		items, _, _, _, err := decodeList[entity.Artwork](ep.path, raw)
		if err != nil {
			lastErr = err

			continue
		}
		if len(items) > 0 {
			return items, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return []entity.Artwork{}, nil
}

func (r *artworkRepository) Create(ctx context.Context, art *entity.Artwork) error {
	_, err := r.client.do(ctx, http.MethodPost, "/arts", nil, art)

	return err
}

func (r *artworkRepository) Update(ctx context.Context, id string, patch entity.ArtworkPatch) error {
	_, err := r.client.do(ctx, http.MethodPatch, "/arts/"+url.PathEscape(id), nil, patch)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrap(repository.ErrArtworkNotFound, id)
	}

	return err
}

func (r *artworkRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/arts/"+url.PathEscape(id), nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrap(repository.ErrArtworkNotFound, id)
	}

	return err
}

func (r *artworkRepository) ToggleLike(ctx context.Context, id string) (int, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/arts/"+url.PathEscape(id)+"/like", nil, nil)
	if err != nil {
		return 0, err
	}

	// The like endpoint answers {likes} or wraps it as {data:{likes}}.
	var body struct {
		Likes *int `json:"likes"`
		Data  *struct {
			Likes int `json:"likes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, errors.WithStack(domainerrors.NewDecodeError("/arts/:id/like", err.Error()))
	}

	switch {
	case body.Likes != nil:
		return *body.Likes, nil
	case body.Data != nil:
		return body.Data.Likes, nil
	default:
		return 0, errors.WithStack(domainerrors.NewDecodeError("/arts/:id/like", "no likes field in response"))
	}
}

// decodeArtwork parses a single-listing payload, either the bare object or
// wrapped as {data:{...}}.
func decodeArtwork(endpoint string, raw []byte) (*entity.Artwork, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	payload := raw
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Data) > 0 && firstByte(wrapper.Data) == '{' {
		payload = wrapper.Data
	}

	var art entity.Artwork
	if err := json.Unmarshal(payload, &art); err != nil {
		return nil, errors.WithStack(domainerrors.NewDecodeError(endpoint, err.Error()))
	}
	if art.ID == "" {
		return nil, errors.WithStack(domainerrors.NewDecodeError(endpoint, "listing without _id"))
	}

	return &art, nil
}

// isStatus reports whether err is a RemoteError with the given status code.
func isStatus(err error, status int) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode() == "REMOTE_ERROR" && appErr.HTTPCode() == status
	}

	return false
}
