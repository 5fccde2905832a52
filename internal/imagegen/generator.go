// Package imagegen wraps the external image-generation APIs.
package imagegen

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Image is a generated image, returned either as a URL to fetch or inline
type Image struct {
	URL      string
	Data     []byte
	MIMEType string
}

// Generator produces one image per prompt
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (*Image, error)
}

// Bytes returns the image data, downloading it when only a URL was returned
func (img *Image) Bytes(ctx context.Context, client *http.Client) ([]byte, error) {
	if len(img.Data) > 0 {
		return img.Data, nil
	}
	if img.URL == "" {
		return nil, fmt.Errorf("image has neither data nor url")
	}
	return Fetch(ctx, client, img.URL)
}

// Fetch downloads url and returns the body. Non-2xx responses are errors.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}
