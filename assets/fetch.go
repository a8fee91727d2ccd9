package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
)

// maxAssetSize bounds the bytes read for one texture.
const maxAssetSize = 16 << 20

// ErrHTTPStatus is returned by HTTPFetcher for non-200 responses.
var ErrHTTPStatus = errors.New("assets: unexpected HTTP status")

// Fetcher retrieves the raw bytes of a texture file.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, name string) ([]byte, error)

// Fetch calls f(ctx, name).
func (f FetcherFunc) Fetch(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}

// DirFetcher reads textures from a file system, typically os.DirFS.
func DirFetcher(fsys fs.FS) Fetcher {
	return FetcherFunc(func(ctx context.Context, name string) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
		return data, nil
	})
}

// HTTPFetcher downloads textures relative to a base URL.
type HTTPFetcher struct {
	// BaseURL is joined with the texture file name.
	BaseURL string

	// Client is used for requests. Nil means http.DefaultClient.
	Client *http.Client
}

// Fetch downloads BaseURL/name.
func (h *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(h.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("assets: build URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request: %w", err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s for %s", ErrHTTPStatus, resp.Status, u)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", u, err)
	}
	return data, nil
}
