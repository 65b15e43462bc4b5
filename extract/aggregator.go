package extract

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/storeintel/storeintel"
)

// Aggregator runs every extraction stage for one site and assembles
// the result into a single immutable SiteInsights. Validation failure
// or root-fetch failure is terminal: no stage runs. Once the root is
// reachable the eight stages run strictly sequentially, separated by
// the politeness limiter; a fault inside any single stage aborts the
// whole aggregation with a terminal extraction error rather than
// returning partial data.
type Aggregator struct {
	Fetcher storeintel.Fetcher

	// Limiter paces the stages. Nil disables pausing (tests).
	Limiter storeintel.StageLimiter

	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// ExtractSiteInsights extracts all insights for one site. The
// returned value is always well-formed: failures are reported through
// its Err field, never as a panic or a Go error.
func (a *Aggregator) ExtractSiteInsights(ctx context.Context, rawURL string) *storeintel.SiteInsights {
	insights := &storeintel.SiteInsights{ExtractedAt: a.now()}

	siteURL, err := storeintel.NormalizeURL(rawURL)
	if err != nil {
		insights.WebsiteURL = rawURL
		insights.Err = &storeintel.InsightsError{
			Code:       storeintel.EINVALID,
			Message:    fmt.Sprintf("invalid URL: %s", storeintel.ErrorMessage(err)),
			StatusCode: http.StatusBadRequest,
		}
		return insights
	}
	insights.WebsiteURL = siteURL

	root := a.Fetcher.Fetch(ctx, siteURL)
	switch root.Kind {
	case storeintel.FetchTransportError:
		// 401 preserved for compatibility with the historical
		// result shape consumed by external collaborators.
		insights.Err = &storeintel.InsightsError{
			Code:       storeintel.EUNREACHABLE,
			Message:    "website not accessible or does not exist",
			StatusCode: http.StatusUnauthorized,
		}
		return insights
	case storeintel.FetchNotFound:
		insights.Err = &storeintel.InsightsError{
			Code:       storeintel.ENOTFOUND,
			Message:    "website not found",
			StatusCode: http.StatusNotFound,
		}
		return insights
	case storeintel.FetchBadStatus:
		insights.Err = &storeintel.InsightsError{
			Code:       storeintel.EBADSTATUS,
			Message:    fmt.Sprintf("website returned status code %d", root.StatusCode),
			StatusCode: root.StatusCode,
		}
		return insights
	}

	insights.ContentHash = strconv.FormatUint(xxhash.Sum64(root.Body), 16)

	extractor := &Extractor{Fetcher: a.Fetcher}

	stages := []struct {
		name string
		run  func(context.Context)
	}{
		{"catalog", func(ctx context.Context) { insights.Catalog = extractor.Catalog(ctx, siteURL) }},
		{"hero_products", func(ctx context.Context) { insights.HeroProducts = extractor.HeroProducts(ctx, siteURL) }},
		{"policies", func(ctx context.Context) { insights.Policies = extractor.Policies(ctx, siteURL) }},
		{"faqs", func(ctx context.Context) { insights.FAQs = extractor.FAQs(ctx, siteURL) }},
		{"social_handles", func(ctx context.Context) { insights.Social = extractor.SocialHandles(ctx, siteURL) }},
		{"contact_details", func(ctx context.Context) { insights.Contact = extractor.ContactDetails(ctx, siteURL) }},
		{"brand_context", func(ctx context.Context) { insights.BrandContext = extractor.BrandContext(ctx, siteURL) }},
		{"important_links", func(ctx context.Context) { insights.ImportantLinks = extractor.ImportantLinks(ctx, siteURL) }},
	}

	for i, stage := range stages {
		if i > 0 {
			if err := a.wait(ctx); err != nil {
				return a.extractionFailure(insights, siteURL)
			}
		}
		if err := runStage(ctx, stage.run); err != nil {
			return a.extractionFailure(insights, siteURL)
		}
	}

	if insights.Catalog != nil && len(insights.Catalog.Products) > 0 {
		insights.ProductCategories = CategorizeProducts(insights.Catalog.Products)
	}
	if insights.BrandContext != "" {
		insights.BrandAnalysis = AnalyzeBrandText(insights.BrandContext)
	}
	if len(insights.FAQs) > 0 {
		insights.FAQInsights = AnalyzeFAQPatterns(insights.FAQs)
	}

	return insights
}

// extractionFailure is the terminal all-or-nothing result: a stage
// fault discards every partial artifact.
func (a *Aggregator) extractionFailure(insights *storeintel.SiteInsights, siteURL string) *storeintel.SiteInsights {
	return &storeintel.SiteInsights{
		WebsiteURL:  siteURL,
		ExtractedAt: insights.ExtractedAt,
		Err: &storeintel.InsightsError{
			Code:       storeintel.EEXTRACTION,
			Message:    "error occurred during data extraction",
			StatusCode: http.StatusInternalServerError,
		},
	}
}

// runStage executes one stage, converting panics into errors so a
// faulty extractor can never crash the caller.
func runStage(ctx context.Context, run func(context.Context)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = storeintel.Errorf(storeintel.EEXTRACTION, "stage panic: %v", r)
		}
	}()
	run(ctx)
	return nil
}

func (a *Aggregator) wait(ctx context.Context) error {
	if a.Limiter == nil {
		return nil
	}
	return a.Limiter.Wait(ctx)
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
