// Package mock provides function-field fakes for storeintel
// interfaces.
package mock

import (
	"context"

	"github.com/storeintel/storeintel"
)

var _ storeintel.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of storeintel.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) *storeintel.FetchResult
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) *storeintel.FetchResult {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
