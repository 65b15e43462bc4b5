package extract

import (
	"context"
	"regexp"
	"strings"
)

// linkPatterns identify operationally important links by keyword, in
// fixed order per link kind. The first anchor whose visible text or
// href matches wins for that kind.
var linkPatterns = []struct {
	kind     string
	patterns []*regexp.Regexp
}{
	{"order_tracking", compileAll(`track`, `order.*track`, `track.*order`)},
	{"contact_us", compileAll(`contact`, `contact.*us`)},
	{"blog", compileAll(`blog`, `news`, `articles`)},
	{"support", compileAll(`support`, `help`, `customer.*service`)},
	{"store_locator", compileAll(`store.*locat`, `find.*store`, `locations`)},
	{"size_guide", compileAll(`size.*guide`, `sizing`, `fit.*guide`)},
}

// ImportantLinks extracts conventional storefront links (order
// tracking, contact, blog, support, store locator, size guide) from
// homepage anchors, resolved to absolute URLs.
func (e *Extractor) ImportantLinks(ctx context.Context, baseURL string) map[string]string {
	important := map[string]string{}

	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return important
	}

	links := page.Links()

	for _, entry := range linkPatterns {
		for _, link := range links {
			text := strings.ToLower(link.Text)
			href := strings.ToLower(link.Href)

			for _, pattern := range entry.patterns {
				if pattern.MatchString(text) || pattern.MatchString(href) {
					important[entry.kind] = page.ResolveURL(link.Href)
					break
				}
			}
			if _, ok := important[entry.kind]; ok {
				break
			}
		}
	}

	return important
}
