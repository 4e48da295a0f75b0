package entity

import "time"

// Favorite associates a principal with an artwork listing. The backend owns
// the association; the embedded artwork fields are denormalized so the
// favorites table can render without a second fetch.
type Favorite struct {
	ID        string    `json:"_id"`
	ArtID     string    `json:"artId"`
	UserEmail string    `json:"userEmail"`
	Title     string    `json:"title,omitempty"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	Price     float64   `json:"price,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
