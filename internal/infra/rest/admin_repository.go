package rest

import (
	"context"
	"net/http"
	"net/url"

	"artify/internal/domain/entity"
	"artify/internal/domain/repository"
)

// adminRepository implements repository.AdminRepository against the
// admin-scoped endpoints.
type adminRepository struct {
	client *Client
}

// NewAdminRepository is the constructor for the admin repository.
func NewAdminRepository(client *Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

func (r *adminRepository) Stats(ctx context.Context) (*entity.AdminStats, error) {
	var stats entity.AdminStats
	if err := r.client.getJSON(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *adminRepository) Arts(ctx context.Context) ([]entity.Artwork, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/admin/arts", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, _, _, err := decodeList[entity.Artwork]("/admin/arts", raw)

	return items, err
}

func (r *adminRepository) Reports(ctx context.Context) ([]entity.Report, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/admin/reports", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, _, _, err := decodeList[entity.Report]("/admin/reports", raw)

	return items, err
}

func (r *adminRepository) ResolveReport(ctx context.Context, reportID string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/admin/reports/"+url.PathEscape(reportID), nil, nil)

	return err
}
