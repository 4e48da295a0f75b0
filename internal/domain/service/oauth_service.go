package service

import "context"

// GoogleUser holds the identity claims extracted from a verified Google ID
// token.
type GoogleUser struct {
	Sub           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// OAuthService drives the Google sign-in flow: building the authorization
// URL, validating the returned state, exchanging the authorization code and
// verifying the resulting ID token.
type OAuthService interface {
	// AuthorizationURL returns the URL the user agent should visit and the
	// state parameter stored for CSRF validation.
	AuthorizationURL() (url string, state string)

	// ValidateState checks and consumes a state parameter returned by the
	// provider callback.
	ValidateState(state string) bool

	// ExchangeCode trades the authorization code for a Google ID token.
	ExchangeCode(ctx context.Context, code string) (idToken string, err error)

	// VerifyIDToken checks the token's issuer, audience and expiry and
	// returns the identity claims.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
