// Package firebase implements the IdentityProvider interface against the
// Firebase Auth REST surface. Only the public web API key is held here; all
// credential checking happens at the provider.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"artify/config"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com/v1"

// Client talks to the identity provider's account endpoints.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the identity provider client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	endpoint := defaultEndpoint
	apiKey := ""
	if cfg.Identity != nil {
		if cfg.Identity.Endpoint != "" {
			endpoint = strings.TrimRight(cfg.Identity.Endpoint, "/")
		}
		apiKey = cfg.Identity.APIKey
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// accountResponse is the provider's reply to every account operation.
type accountResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r *accountResponse) toIdentityUser() *service.IdentityUser {
	return &service.IdentityUser{
		UID:          r.LocalID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PhotoURL:     r.PhotoURL,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	resp, err := c.post(ctx, "accounts:signInWithPassword", body)
	if err != nil {
		return nil, err
	}

	return resp.toIdentityUser(), nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	resp, err := c.post(ctx, "accounts:signUp", body)
	if err != nil {
		return nil, err
	}

	return resp.toIdentityUser(), nil
}

func (c *Client) SignInWithGoogle(ctx context.Context, googleIDToken string) (*service.IdentityUser, error) {
	post := url.Values{}
	post.Set("id_token", googleIDToken)
	post.Set("providerId", "google.com")

	body := map[string]any{
		"postBody":            post.Encode(),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}

	resp, err := c.post(ctx, "accounts:signInWithIdp", body)
	if err != nil {
		return nil, err
	}

	return resp.toIdentityUser(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*service.IdentityUser, error) {
	body := map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"photoUrl":          photoURL,
		"returnSecureToken": true,
	}

	resp, err := c.post(ctx, "accounts:update", body)
	if err != nil {
		return nil, err
	}

	user := resp.toIdentityUser()
	if user.IDToken == "" {
		user.IDToken = idToken
	}

	return user, nil
}

// SignOut discards the session on the provider side. The REST surface keeps
// no server session to revoke; dropping the tokens is the sign-out, so this
// only confirms the contract.
func (c *Client) SignOut(ctx context.Context, refreshToken string) error {
	return nil
}

func (c *Client) post(ctx context.Context, op string, body map[string]any) (*accountResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal identity request")
	}

	endpoint := c.endpoint + "/" + op + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build identity request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "identity provider %s failed", op)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapProviderError(op, raw)
	}

	var account accountResponse
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, errors.WithStack(domainerrors.NewDecodeError(op, err.Error()))
	}

	return &account, nil
}

// mapProviderError converts the provider's error codes into the domain
// taxonomy so callers never see provider-specific strings.
func (c *Client) mapProviderError(op string, raw []byte) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)
	code := body.Error.Message

	c.logger.Warn("Identity provider rejected the request",
		slog.String("operation", op),
		slog.String("code", code))

	switch {
	case code == "EMAIL_EXISTS":
		return errors.WithStack(domainerrors.ErrEmailTaken)
	case code == "EMAIL_NOT_FOUND",
		code == "INVALID_PASSWORD",
		code == "INVALID_LOGIN_CREDENTIALS":
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(code))
	default:
		return errors.WithStack(domainerrors.ErrAuthFailed.WithDetails(code))
	}
}
