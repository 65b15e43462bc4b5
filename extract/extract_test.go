package extract_test

import (
	"context"
	"net/http"

	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/mock"
)

// siteFetcher fakes a site: exact URL matches return 200 with the
// mapped body, everything else 404.
func siteFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) *storeintel.FetchResult {
			if body, ok := pages[url]; ok {
				return &storeintel.FetchResult{
					StatusCode: http.StatusOK,
					Body:       []byte(body),
					Kind:       storeintel.FetchOK,
				}
			}
			return &storeintel.FetchResult{
				StatusCode: http.StatusNotFound,
				Kind:       storeintel.FetchNotFound,
			}
		},
	}
}

// downFetcher fakes an unreachable host.
func downFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) *storeintel.FetchResult {
			return &storeintel.FetchResult{Kind: storeintel.FetchTransportError}
		},
	}
}
