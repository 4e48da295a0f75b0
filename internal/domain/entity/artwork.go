// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Visibility controls whether a listing is shown to everyone or only its owner.
type Visibility string

const (
	// VisibilityPublic means the listing appears in public browsing surfaces.
	VisibilityPublic Visibility = "Public"
	// VisibilityPrivate means the listing is visible only to its owner.
	VisibilityPrivate Visibility = "Private"
)

// IsValid checks if the Visibility is a valid value.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate:
		return true
	default:
		return false
	}
}

// Artwork is a listing as consumed from the backend. The backend owns the
// record; copies held here are ephemeral view state, invalidated by refetch
// or patched optimistically and reconciled against the server.
type Artwork struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Medium      string     `json:"medium,omitempty"`
	Description string     `json:"description,omitempty"`
	Dimensions  string     `json:"dimensions,omitempty"`
	Price       float64    `json:"price,omitempty"`
	Visibility  Visibility `json:"visibility"`
	Featured    bool       `json:"featured"`
	Likes       int        `json:"likes"`
	OwnerName   string     `json:"userName,omitempty"`
	OwnerEmail  string     `json:"userEmail,omitempty"`
	OwnerPhoto  string     `json:"artistPhoto,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
}

// ArtworkPatch is a partial update applied to a listing. Nil fields are left
// untouched by the backend.
type ArtworkPatch struct {
	Title       *string     `json:"title,omitempty"`
	Image       *string     `json:"image,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Medium      *string     `json:"medium,omitempty"`
	Description *string     `json:"description,omitempty"`
	Dimensions  *string     `json:"dimensions,omitempty"`
	Price       *float64    `json:"price,omitempty"`
	Visibility  *Visibility `json:"visibility,omitempty"`
	Featured    *bool       `json:"featured,omitempty"`
}

// Apply copies the non-nil patch fields onto a listing. Used for the local,
// optimistic half of an edit before the server confirms it.
func (p ArtworkPatch) Apply(a Artwork) Artwork {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Medium != nil {
		a.Medium = *p.Medium
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Dimensions != nil {
		a.Dimensions = *p.Dimensions
	}
	if p.Price != nil {
		a.Price = *p.Price
	}
	if p.Visibility != nil {
		a.Visibility = *p.Visibility
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}

	return a
}
