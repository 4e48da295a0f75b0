// Package entity contains the core business objects of the project.
package entity

import "time"

// Principal is the authenticated identity as known to the client. It is
// issued by the identity provider on login or registration, held by the
// session for the lifetime of the browser session, and discarded on logout.
type Principal struct {
	Email    string // Primary identifier; non-empty for any resolved principal.
	Name     string // Display name reported by the identity provider.
	PhotoURL string // Avatar reference, may be empty.
	Role     Role   // Ordinary user or administrator, mirrored from the backend.
	IDToken  string // Provider-issued ID token backing this session.
}

// User is a backend user record as listed on the admin screens. Distinct from
// Principal: the backend owns these rows, the client only mirrors them.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
