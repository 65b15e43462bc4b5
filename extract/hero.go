package extract

import (
	"context"
	"strconv"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// heroSelectors target featured/hero product placements on the
// homepage. Every selector is scanned (no short-circuit) with up to
// heroPerSelector elements taken from each; duplicates across
// selectors are dropped.
var heroSelectors = []string{
	".hero-product",
	".featured-product",
	".product-card",
	".product-item",
	`[class*="hero"]`,
	`[class*="featured"]`,
	".slider .product",
	".carousel .product",
}

const heroPerSelector = 6

// HeroProducts extracts featured products from the homepage. Returns
// an empty list when the homepage is unreachable.
func (e *Extractor) HeroProducts(ctx context.Context, baseURL string) []storeintel.HeroProduct {
	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return []storeintel.HeroProduct{}
	}

	heroes := []storeintel.HeroProduct{}
	seen := make(map[uint64]bool)

	for _, selector := range heroSelectors {
		elements := page.Select(selector)
		elements.Slice(0, min(elements.Length(), heroPerSelector)).Each(func(_ int, sel *gq.Selection) {
			hero := extractHeroProduct(page, sel)
			if hero == (storeintel.HeroProduct{}) {
				return
			}
			key := heroKey(hero)
			if seen[key] {
				return
			}
			seen[key] = true
			heroes = append(heroes, hero)
		})
	}

	return heroes
}

func extractHeroProduct(page *goquery.Page, sel *gq.Selection) storeintel.HeroProduct {
	var hero storeintel.HeroProduct

	title := sel.Find("h1, h2, h3, h4, h5, h6").First()
	if title.Length() == 0 {
		title = sel.Find(`[class*="title"], [class*="name"]`).First()
	}
	hero.Title = goquery.SelectionText(title)

	link := sel.Find("a[href]").First()
	if link.Length() == 0 {
		link = sel.Closest("a[href]")
	}
	if href, ok := link.Attr("href"); ok && href != "" {
		hero.URL = page.ResolveURL(href)
	}

	if src, ok := sel.Find("img").First().Attr("src"); ok && src != "" {
		hero.Image = page.ResolveURL(src)
	}

	hero.Price = goquery.SelectionText(sel.Find(`[class*="price"], [class*="cost"], [class*="amount"]`).First())

	return hero
}

// heroKey builds a dedup key over every field; the same placement
// frequently matches several hero selectors.
func heroKey(h storeintel.HeroProduct) uint64 {
	d := xxhash.New()
	for _, field := range []string{h.Title, h.URL, h.Image, h.Price} {
		_, _ = d.WriteString(field)
		_, _ = d.WriteString("|" + strconv.Itoa(len(field)) + "|")
	}
	return d.Sum64()
}
