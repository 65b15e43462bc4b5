package extract

import (
	"context"

	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// policyPaths lists the conventional path candidates probed per
// policy kind, in order. The first path returning substantial content
// wins; kinds are independent of each other.
var policyPaths = []struct {
	kind  storeintel.PolicyKind
	paths []string
}{
	{storeintel.PolicyPrivacy, []string{"/pages/privacy-policy", "/privacy-policy", "/privacy"}},
	{storeintel.PolicyReturn, []string{"/pages/return-policy", "/return-policy", "/returns", "/pages/returns"}},
	{storeintel.PolicyRefund, []string{"/pages/refund-policy", "/refund-policy", "/refunds", "/pages/refunds"}},
	{storeintel.PolicyTerms, []string{"/pages/terms-of-service", "/terms-of-service", "/terms", "/pages/terms"}},
	{storeintel.PolicyShipping, []string{"/pages/shipping-policy", "/shipping-policy", "/shipping", "/pages/shipping"}},
}

// contentSelectors locate the main content region of a probed page;
// first match wins, whole-page text is the fallback.
var contentSelectors = []string{
	".main-content", ".content", ".policy-content", "main", ".page-content",
}

// Policies probes the conventional policy pages and returns the kinds
// for which substantial content was found, truncated to the storage
// cap. A missing policy is absence, not an error.
func (e *Extractor) Policies(ctx context.Context, baseURL string) storeintel.PolicySet {
	policies := storeintel.PolicySet{}

	for _, entry := range policyPaths {
		for _, path := range entry.paths {
			content := e.probePageContent(ctx, joinPath(baseURL, path))
			if len([]rune(content)) > substantialContentMin {
				policies[entry.kind] = truncate(content, policyContentCap)
				break
			}
		}
	}

	return policies
}

// probePageContent fetches a candidate page and extracts its main
// text: chrome (script/style/nav/header/footer) is stripped, the
// content selector list is tried first, and the whole-page text is
// the fallback. Returns the empty string when the page is
// unreachable.
func (e *Extractor) probePageContent(ctx context.Context, pageURL string) string {
	page := e.fetchPage(ctx, pageURL)
	if page == nil {
		return ""
	}
	page.StripChrome()

	for _, selector := range contentSelectors {
		sel := page.SelectFirst(selector)
		if sel.Length() > 0 {
			return goquery.SelectionText(sel)
		}
	}
	return page.Text()
}
