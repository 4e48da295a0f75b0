// Package service defines the interfaces for external collaborators the
// domain depends on: the identity provider, the OAuth broker, the image host
// and small supporting services. Implementations live under internal/infra.
package service

import "context"

// IdentityUser is the provider's view of an authenticated account, returned
// by every sign-in and sign-up operation.
type IdentityUser struct {
	UID          string // Provider-assigned account identifier.
	Email        string
	DisplayName  string
	PhotoURL     string
	IDToken      string // Short-lived token proving the authentication.
	RefreshToken string
}

// IdentityProvider abstracts the third-party authentication service. The
// provider owns credentials and account state; the client only holds the
// tokens it hands back.
type IdentityProvider interface {
	// SignIn authenticates an email/password pair.
	SignIn(ctx context.Context, email, password string) (*IdentityUser, error)

	// SignUp creates a new account for an email/password pair.
	SignUp(ctx context.Context, email, password string) (*IdentityUser, error)

	// SignInWithGoogle exchanges a verified Google ID token for a provider
	// session, creating the account on first sign-in.
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*IdentityUser, error)

	// UpdateProfile sets the display name and avatar URL on the account
	// behind the given ID token.
	UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*IdentityUser, error)

	// SignOut revokes the refresh token so the session cannot be renewed.
	SignOut(ctx context.Context, refreshToken string) error
}
