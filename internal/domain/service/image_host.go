package service

import (
	"context"
	"io"
)

// ImageHost abstracts the external image upload service: it accepts a file
// and returns a public URL, nothing else is stored client-side.
type ImageHost interface {
	Upload(ctx context.Context, filename string, image io.Reader) (url string, err error)
}
