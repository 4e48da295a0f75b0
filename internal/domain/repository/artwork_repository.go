// Package repository defines the interfaces for the remote data layer.
// The backend REST API is the source of truth; these interfaces act as a
// contract between the application layer and the HTTP infrastructure, so
// usecases never see URLs or status codes.
package repository

import (
	"context"
	"errors"

	"artify/internal/domain/entity"
)

// ErrArtworkNotFound is returned when the backend reports no such listing.
var ErrArtworkNotFound = errors.New("artwork not found")

// ArtworkQuery carries the server-side pagination and filter parameters of
// the browse endpoint.
type ArtworkQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

// ArtworkPage is one page of listings together with the server-reported
// total. Total is zero when the backend answered with a bare array and
// reported no count.
type ArtworkPage struct {
	Items []entity.Artwork
	Total int
	Page  int
	Limit int
}

// ArtworkRepository defines the operations on the backend artwork collection.
type ArtworkRepository interface {
	// List retrieves a page of public listings matching the query.
	List(ctx context.Context, q ArtworkQuery) (*ArtworkPage, error)

	// Featured retrieves the listings flagged for the home page.
	Featured(ctx context.Context) ([]entity.Artwork, error)

	// Get retrieves a single listing by ID.
	Get(ctx context.Context, id string) (*entity.Artwork, error)

	// ListByOwner retrieves every listing owned by the given email.
	ListByOwner(ctx context.Context, email string) ([]entity.Artwork, error)

	// Create persists a new listing; owner fields are denormalized from the
	// principal by the caller.
	Create(ctx context.Context, art *entity.Artwork) error

	// Update applies a partial update to a listing.
	Update(ctx context.Context, id string, patch entity.ArtworkPatch) error

	// Delete removes a listing.
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the caller's like and returns the updated like count.
	ToggleLike(ctx context.Context, id string) (likes int, err error)
}
