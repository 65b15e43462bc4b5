// Package slog provides logging decorators for storeintel
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/storeintel/storeintel"
)

// Ensure Fetcher implements storeintel.Fetcher.
var _ storeintel.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a storeintel.Fetcher with debug logging of every
// request and its classified outcome.
type Fetcher struct {
	next   storeintel.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next storeintel.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) *storeintel.FetchResult {
	begin := time.Now()
	result := f.next.Fetch(ctx, url)
	f.logger.Debug("fetch",
		"url", url,
		"kind", string(result.Kind),
		"status", result.StatusCode,
		"bytes", len(result.Body),
		"duration", time.Since(begin),
	)
	return result
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
