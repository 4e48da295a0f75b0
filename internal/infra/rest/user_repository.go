package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"artify/internal/domain/entity"
	"artify/internal/domain/repository"

	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository against the backend
// user collection.
type userRepository struct {
	client *Client
}

// NewUserRepository is the constructor for the user repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, _, _, err := decodeList[entity.User]("/users", raw)

	return items, err
}

func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	_, err := r.client.do(ctx, http.MethodPost, "/users", nil, user)

	return err
}

func (r *userRepository) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	body := map[string]string{"role": role.String()}
	_, err := r.client.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/role", nil, body)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrap(repository.ErrUserNotFound, userID)
	}

	return err
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrap(repository.ErrUserNotFound, userID)
	}

	return err
}

// IsAdmin resolves the caller's role by scanning the user collection. The
// backend has no per-email lookup endpoint.
func (r *userRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return entity.ParseRole(u.Role) == entity.RoleAdmin, nil
		}
	}

	return false, nil
}
