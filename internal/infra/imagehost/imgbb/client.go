// Package imgbb implements the ImageHost interface against the external
// image hosting API: one multipart upload in, one public URL out.
package imgbb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"artify/config"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://api.imgbb.com/1/upload"

// Client uploads images to the hosting service.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the image host client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.ImageHost {
	endpoint := defaultEndpoint
	apiKey := ""
	if cfg.ImageHost != nil {
		if cfg.ImageHost.Endpoint != "" {
			endpoint = cfg.ImageHost.Endpoint
		}
		apiKey = cfg.ImageHost.APIKey
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// uploadResponse is the hosting API's reply envelope.
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload streams the image as a multipart form and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)

	go func() {
		part, err := form.CreateFormFile("image", filename)
		if err != nil {
			pipeWriter.CloseWithError(err)

			return
		}
		if _, err := io.Copy(part, image); err != nil {
			pipeWriter.CloseWithError(err)

			return
		}
		pipeWriter.CloseWithError(form.Close())
	}()

	endpoint := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pipeReader)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, "failed to read upload response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Image host rejected the upload", slog.Int("status", resp.StatusCode))

		return "", errors.Wrapf(domainerrors.ErrUploadFailed, "image host answered %d", resp.StatusCode)
	}

	var body uploadResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.WithStack(domainerrors.NewDecodeError("image host", err.Error()))
	}
	if !body.Success || body.Data.URL == "" {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, "image host reported failure")
	}

	return body.Data.URL, nil
}
