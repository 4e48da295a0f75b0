package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"

	"github.com/pkg/errors"
)

// favoriteRepository implements repository.FavoriteRepository against the
// backend favorites collection.
type favoriteRepository struct {
	client *Client
}

// NewFavoriteRepository is the constructor for the favorite repository.
func NewFavoriteRepository(client *Client) repository.FavoriteRepository {
	return &favoriteRepository{client: client}
}

func (r *favoriteRepository) ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/favorites", url.Values{"email": {email}}, nil)
	if err != nil {
		return nil, err
	}

	items, _, _, _, err := decodeList[entity.Favorite]("/favorites", raw)

	return items, err
}

func (r *favoriteRepository) Add(ctx context.Context, artID, email string) (*entity.Favorite, error) {
	body := map[string]string{"artId": artID, "userEmail": email}
	raw, err := r.client.do(ctx, http.MethodPost, "/favorites", nil, body)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	payload := raw
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Data) > 0 && firstByte(wrapper.Data) == '{' {
		payload = wrapper.Data
	}

	var fav entity.Favorite
	if err := json.Unmarshal(payload, &fav); err != nil {
		return nil, errors.WithStack(domainerrors.NewDecodeError("/favorites", err.Error()))
	}
	if fav.ArtID == "" {
		fav.ArtID = artID
	}
	if fav.UserEmail == "" {
		fav.UserEmail = email
	}

	return &fav, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, favoriteID string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(favoriteID), nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrap(repository.ErrFavoriteNotFound, favoriteID)
	}

	return err
}
