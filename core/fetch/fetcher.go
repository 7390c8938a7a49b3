// Package fetch retrieves board files hosted on an authoring server.
// It performs HTTP GET requests with sensible defaults for content tooling.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avery-linden/boardtext/core"
	"github.com/avery-linden/boardtext/core/board"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "boardtext/1.0 (https://github.com/avery-linden/boardtext)"
)

// HTTPFetcher fetches board files via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves and decodes the board file at the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return board.Decode(data)
}
