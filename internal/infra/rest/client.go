// Package rest implements the remote data layer over the backend REST API.
// It is the only place that knows URLs, envelopes and status codes; the
// repository interfaces it implements keep that knowledge out of the
// application layer.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"artify/config"
	domainerrors "artify/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UnauthorizedHook is invoked whenever the backend answers 401 or 403. The
// delivery layer installs a hook that tears down the session and redirects to
// the login screen; the original call still fails with the remote error.
type UnauthorizedHook func(ctx context.Context)

// Client is the shared HTTP core behind every repository. No retries, no
// request queuing; every call carries the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHook
}

// ClientParams holds dependencies for the REST client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient is the constructor for the REST client.
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL:    strings.TrimRight(params.Config.Backend.BaseURL, "/"),
		httpClient: &http.Client{},
		logger:     params.Logger,
	}
}

// SetUnauthorizedHook installs the 401/403 interceptor. Installed after
// construction because the hook closes over the session, which itself
// depends on repositories built from this client.
func (c *Client) SetUnauthorizedHook(hook UnauthorizedHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = hook
}

func (c *Client) unauthorizedHook() UnauthorizedHook {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.onUnauthorized
}

// errorBody is the optional JSON error envelope the backend attaches to
// non-2xx responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}

	return b.Message
}

// do performs one round trip: marshal the body, execute, enforce the
// authorization interceptor, surface non-2xx responses as RemoteError and
// return the raw payload bytes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response", path)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.logger.Warn("Backend rejected the session",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		if hook := c.unauthorizedHook(); hook != nil {
			hook(ctx)
		}

		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)

		return nil, errors.WithStack(domainerrors.NewRemoteError(resp.StatusCode, eb.text(), method+" "+path))
	}

	return raw, nil
}

// getJSON performs a GET and decodes a single JSON object into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.WithStack(domainerrors.NewDecodeError(path, err.Error()))
	}

	return nil
}
