package entity

import "time"

// Report flags a listing as objectionable. Reports are aggregated per listing
// by the backend and visible to administrators only.
type Report struct {
	ID        string    `json:"_id"`
	ArtID     string    `json:"artId"`
	ArtTitle  string    `json:"artTitle,omitempty"`
	ArtImage  string    `json:"artImage,omitempty"`
	Count     int       `json:"count"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
