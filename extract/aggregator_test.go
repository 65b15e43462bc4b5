package extract_test

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/extract"
	"github.com/storeintel/storeintel/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_ExtractSiteInsights(t *testing.T) {
	t.Parallel()

	t.Run("invalid URL fails before any fetch", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		a := &extract.Aggregator{Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) *storeintel.FetchResult {
				fetches++
				return &storeintel.FetchResult{Kind: storeintel.FetchOK, StatusCode: http.StatusOK}
			},
		}}

		insights := a.ExtractSiteInsights(context.Background(), "   ")

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.EINVALID, insights.Err.Code)
		assert.Equal(t, http.StatusBadRequest, insights.Err.StatusCode)
		assert.True(t, strings.HasPrefix(insights.Err.Message, "invalid URL:"))
		assert.Zero(t, fetches)
	})

	t.Run("unreachable root is terminal after a single fetch", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		a := &extract.Aggregator{Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) *storeintel.FetchResult {
				fetches++
				return &storeintel.FetchResult{Kind: storeintel.FetchTransportError}
			},
		}}

		insights := a.ExtractSiteInsights(context.Background(), "example.com")

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.EUNREACHABLE, insights.Err.Code)
		assert.Equal(t, "website not accessible or does not exist", insights.Err.Message)
		assert.Equal(t, http.StatusUnauthorized, insights.Err.StatusCode)
		assert.Equal(t, 1, fetches)
	})

	t.Run("missing root maps to not found", func(t *testing.T) {
		t.Parallel()

		a := &extract.Aggregator{Fetcher: siteFetcher(nil)}
		insights := a.ExtractSiteInsights(context.Background(), base)

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.ENOTFOUND, insights.Err.Code)
		assert.Equal(t, "website not found", insights.Err.Message)
		assert.Equal(t, http.StatusNotFound, insights.Err.StatusCode)
	})

	t.Run("error status on root is terminal and preserved", func(t *testing.T) {
		t.Parallel()

		a := &extract.Aggregator{Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) *storeintel.FetchResult {
				return &storeintel.FetchResult{
					Kind:       storeintel.FetchBadStatus,
					StatusCode: http.StatusServiceUnavailable,
				}
			},
		}}

		insights := a.ExtractSiteInsights(context.Background(), base)

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.EBADSTATUS, insights.Err.Code)
		assert.Equal(t, "website returned status code 503", insights.Err.Message)
		assert.Equal(t, http.StatusServiceUnavailable, insights.Err.StatusCode)
	})

	t.Run("successful run populates every section", func(t *testing.T) {
		t.Parallel()

		home := `<html><body>
			<a href="https://instagram.com/acme">Instagram</a>
			<a href="/contact">Contact</a>
			<p>support@example.com</p>
		</body></html>`

		now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		a := &extract.Aggregator{
			Fetcher: siteFetcher(map[string]string{
				base:                    home,
				base + "/products.json": `{"products":[{"id":1,"title":"Linen Shirt"}]}`,
				base + "/pages/faq": `<html><body>
					<div class="qa-pair"><h3>How fast is shipping?</h3><p>Two business days.</p></div>
				</body></html>`,
				base + "/pages/about": `<html><body><main>` + longText("We make premium goods.") + `</main></body></html>`,
			}),
			Now: func() time.Time { return now },
		}

		insights := a.ExtractSiteInsights(context.Background(), base)

		require.False(t, insights.Failed())
		assert.Equal(t, base, insights.WebsiteURL)
		assert.Equal(t, now, insights.ExtractedAt)
		assert.Equal(t, strconv.FormatUint(xxhash.Sum64([]byte(home)), 16), insights.ContentHash)

		require.NotNil(t, insights.Catalog)
		assert.Equal(t, 1, insights.Catalog.TotalCount)
		assert.Equal(t, "acme", insights.Social["instagram"])
		assert.Equal(t, []string{"support@example.com"}, insights.Contact.Emails)
		assert.Contains(t, insights.ImportantLinks, "contact_us")
		require.Len(t, insights.FAQs, 1)
		assert.Contains(t, insights.BrandContext, "premium goods")

		require.NotNil(t, insights.ProductCategories)
		assert.Equal(t, 1, insights.ProductCategories.CategoryCounts["apparel"])
		require.NotNil(t, insights.BrandAnalysis)
		assert.Contains(t, insights.BrandAnalysis.KeyThemes, "quality")
		require.NotNil(t, insights.FAQInsights)
		assert.Equal(t, 1, insights.FAQInsights.TotalFAQs)
	})

	t.Run("limiter paces every stage after the first", func(t *testing.T) {
		t.Parallel()

		waits := 0
		a := &extract.Aggregator{
			Fetcher: siteFetcher(map[string]string{base: `<html><body>shop</body></html>`}),
			Limiter: &mock.StageLimiter{WaitFn: func(context.Context) error {
				waits++
				return nil
			}},
		}

		insights := a.ExtractSiteInsights(context.Background(), base)

		require.False(t, insights.Failed())
		assert.Equal(t, 7, waits)
	})

	t.Run("limiter failure aborts with a terminal extraction error", func(t *testing.T) {
		t.Parallel()

		a := &extract.Aggregator{
			Fetcher: siteFetcher(map[string]string{base: `<html><body>shop</body></html>`}),
			Limiter: &mock.StageLimiter{WaitFn: func(context.Context) error {
				return context.Canceled
			}},
		}

		insights := a.ExtractSiteInsights(context.Background(), base)

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.EEXTRACTION, insights.Err.Code)
		assert.Equal(t, "error occurred during data extraction", insights.Err.Message)
		assert.Equal(t, http.StatusInternalServerError, insights.Err.StatusCode)
	})

	t.Run("stage panic discards partial results", func(t *testing.T) {
		t.Parallel()

		home := `<html><body>
			<a href="https://instagram.com/acme">Instagram</a>
		</body></html>`

		a := &extract.Aggregator{Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) *storeintel.FetchResult {
				if strings.HasSuffix(url, "/products.json") {
					panic("parser blew up")
				}
				if url == base {
					return &storeintel.FetchResult{
						StatusCode: http.StatusOK,
						Body:       []byte(home),
						Kind:       storeintel.FetchOK,
					}
				}
				return &storeintel.FetchResult{StatusCode: http.StatusNotFound, Kind: storeintel.FetchNotFound}
			},
		}}

		insights := a.ExtractSiteInsights(context.Background(), base)

		require.True(t, insights.Failed())
		assert.Equal(t, storeintel.EEXTRACTION, insights.Err.Code)
		assert.Equal(t, base, insights.WebsiteURL)
		assert.Nil(t, insights.Catalog)
		assert.Empty(t, insights.Social)
		assert.Empty(t, insights.ContentHash)
	})
}
