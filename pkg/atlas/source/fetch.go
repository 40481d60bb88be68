package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

// DefaultUserAgent identifies the fetcher to remote servers.
const DefaultUserAgent = "atlas/1.0 (article analysis)"

// Fetcher downloads article pages. A single attempt is made per call.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewFetcher creates a fetcher whose client gives up after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: DefaultUserAgent,
	}
}

// Fetch downloads and parses the page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", url, err, internalerr.ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: HTTP %d: %w", url, resp.StatusCode, internalerr.ErrFetch)
	}

	doc, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	doc.URL = url
	return doc, nil
}
