package extract

import (
	"context"

	"github.com/storeintel/storeintel/goquery"
)

// aboutPaths are the conventional about/brand-story page candidates,
// probed in order.
var aboutPaths = []string{
	"/pages/about", "/about", "/pages/about-us", "/about-us",
	"/pages/our-story", "/our-story",
}

// BrandContext extracts the brand/about narrative, truncated to the
// storage cap. Returns the empty string when no candidate page yields
// substantial content.
func (e *Extractor) BrandContext(ctx context.Context, baseURL string) string {
	for _, path := range aboutPaths {
		page := e.fetchPage(ctx, joinPath(baseURL, path))
		if page == nil {
			continue
		}
		page.StripChrome()

		for _, selector := range contentSelectors {
			content := goquery.SelectionText(page.SelectFirst(selector))
			if len([]rune(content)) > substantialContentMin {
				return truncate(content, brandContentCap)
			}
		}

		if body := page.Text(); len([]rune(body)) > substantialContentMin {
			return truncate(body, brandContentCap)
		}
	}

	return ""
}
