// Package extract implements the extraction pipeline: the per-artifact
// extractors with their cascading fallback strategies, the per-site
// insight aggregator, the concurrent bulk orchestrator, and the
// competitive summarizer.
package extract

import (
	"context"
	"net/url"
	"strings"

	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// Content acceptance thresholds and truncation caps. These are
// behavior-compatible constants: downstream consumers depend on the
// exact values, so they are named here rather than re-derived.
const (
	// substantialContentMin is the minimum character count for a
	// probed page to be accepted as real content.
	substantialContentMin = 100

	// titleCap, descriptionCap, brandContentCap, and policyContentCap
	// bound stored text lengths, in characters.
	titleCap         = 200
	descriptionCap   = 500
	brandContentCap  = 1500
	policyContentCap = 2000
)

// Extractor recovers individual artifacts (catalog, policies, FAQs,
// social handles, contact details, brand narrative, important links)
// from one site. All page access goes through the shared Fetcher; the
// Extractor itself holds no mutable state and is safe for concurrent
// use.
type Extractor struct {
	Fetcher storeintel.Fetcher
}

// fetchPage fetches a URL and parses it into a probe page. Returns
// nil when the page is unreachable, missing, or unparseable: callers
// treat absence as routine, never as an error.
func (e *Extractor) fetchPage(ctx context.Context, pageURL string) *goquery.Page {
	result := e.Fetcher.Fetch(ctx, pageURL)
	if !result.OK() {
		return nil
	}
	page, err := goquery.ParsePage(result.Body, pageURL)
	if err != nil {
		return nil
	}
	return page
}

// joinPath resolves a conventional path suffix against the site base
// URL.
func joinPath(baseURL, path string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return strings.TrimRight(baseURL, "/") + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return strings.TrimRight(baseURL, "/") + path
	}
	return base.ResolveReference(ref).String()
}

// truncate caps a string at n characters (not bytes).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
