// Package http provides the HTTP-based implementation of
// storeintel.Fetcher. All network access in the system goes through
// it so that timeout and header policy are enforced uniformly.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/storeintel/storeintel"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is the browser-like identification header sent on
// every request. Storefronts routinely reject unadorned Go clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements storeintel.Fetcher at compile time.
var _ storeintel.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using a shared http.Client. The underlying
// connection pool is shared across all concurrent callers; Fetcher is
// safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the identification header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient substitutes the underlying http.Client. The client's own
// timeout is left untouched.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch issues a GET for the URL and classifies the outcome. The
// returned result is never nil. Connection failures, DNS failures,
// and timeouts classify as FetchTransportError; 404 as FetchNotFound;
// any other non-200 as FetchBadStatus with the status attached.
func (f *Fetcher) Fetch(ctx context.Context, url string) *storeintel.FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &storeintel.FetchResult{Kind: storeintel.FetchTransportError}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return &storeintel.FetchResult{Kind: storeintel.FetchTransportError}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &storeintel.FetchResult{
			StatusCode: resp.StatusCode,
			Kind:       storeintel.FetchNotFound,
		}
	case resp.StatusCode != http.StatusOK:
		return &storeintel.FetchResult{
			StatusCode: resp.StatusCode,
			Kind:       storeintel.FetchBadStatus,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &storeintel.FetchResult{
			StatusCode: resp.StatusCode,
			Kind:       storeintel.FetchTransportError,
		}
	}

	return &storeintel.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       body,
		Kind:       storeintel.FetchOK,
	}
}

// Close releases resources. The shared http.Client requires no
// explicit cleanup, so this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
