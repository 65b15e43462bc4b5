package extract

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// ProductFeedPath is the conventional structured products feed probed
// by the first cascade tier.
const ProductFeedPath = "/products.json"

// Selector-voting tier configuration. Candidates are tried in
// priority order; the first one matching at least
// selectorVoteThreshold elements is accepted as the product grid.
const (
	selectorVoteThreshold = 3
	maxSelectorProducts   = 50
	maxFallbackProducts   = 20
)

// productSelectors is the fixed candidate list for the product grid,
// in priority order.
var productSelectors = []string{
	".product-item", ".product-card", ".product",
	`[class*="product"]`, "[data-product]",
	".woocommerce-LoopProduct-link", ".product-wrap",
	".grid-product", ".product-grid-item",
	".item-product", ".product-list-item",
}

// Per-field candidate selectors, first match wins.
var (
	productTitleSelectors = []string{
		"h1", "h2", "h3", "h4", `[class*="title"]`, `[class*="name"]`, "a",
	}
	productPriceSelectors = []string{
		`[class*="price"]`, `[class*="cost"]`, `[class*="amount"]`,
		".money", ".currency", "[data-price]",
	}
	productDescSelectors = []string{
		".description", ".summary", `[class*="desc"]`,
	}
)

// priceTokenRe matches an optionally symbol-prefixed numeric price
// token inside a price element's text.
var priceTokenRe = regexp.MustCompile(`[$£€₹¥₩฿₱₫]?[\d,.]+(\.\d{2})?`)

// anchoredPriceRe matches a currency-symbol-prefixed price token; the
// symbol is mandatory here because the fallback tier anchors on it.
var anchoredPriceRe = regexp.MustCompile(`[$£€₹¥₩฿₱₫][\d,.]+`)

// Catalog recovers the product catalog through a three-tier fallback
// cascade: structured feed, selector voting on the homepage, then
// price-anchored scanning. A later tier runs only when the previous
// one yielded zero products.
func (e *Extractor) Catalog(ctx context.Context, baseURL string) *storeintel.Catalog {
	currency := e.detectCurrency(ctx, baseURL)

	catalog := e.feedCatalog(ctx, baseURL)
	if len(catalog.Products) == 0 {
		catalog = e.scrapedCatalog(ctx, baseURL)
	}
	catalog.Currency = currency
	return catalog
}

// detectCurrency classifies the site currency from the homepage.
// Unreachable pages default to USD.
func (e *Extractor) detectCurrency(ctx context.Context, baseURL string) string {
	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return goquery.DefaultCurrency
	}
	return goquery.DetectCurrency(page)
}

// feedProduct is the wire shape of one product in the conventional
// products feed.
type feedProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Handle      string          `json:"handle"`
	ProductType string          `json:"product_type"`
	Vendor      string          `json:"vendor"`
	Tags        json.RawMessage `json:"tags"`
	Variants    []feedVariant   `json:"variants"`
	Images      []struct {
		Src string `json:"src"`
	} `json:"images"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	PublishedAt string `json:"published_at"`
	Status      string `json:"status"`
}

type feedVariant struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Price             flexString `json:"price"`
	CompareAtPrice    flexString `json:"compare_at_price"`
	SKU               string     `json:"sku"`
	InventoryQuantity int        `json:"inventory_quantity"`
	Available         bool       `json:"available"`
}

// flexString decodes a JSON value that may arrive as a string, a
// number, or null. Feeds in the wild disagree on how prices are
// encoded.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// feedCatalog probes the structured products feed. A reachable feed
// with valid JSON and a non-empty product array short-circuits the
// cascade and implies the shopify platform.
func (e *Extractor) feedCatalog(ctx context.Context, baseURL string) *storeintel.Catalog {
	result := e.Fetcher.Fetch(ctx, joinPath(baseURL, ProductFeedPath))
	if !result.OK() {
		return &storeintel.Catalog{
			Products: []storeintel.Product{},
			Platform: storeintel.PlatformUnknown,
		}
	}

	var feed struct {
		Products []feedProduct `json:"products"`
	}
	if err := json.Unmarshal(result.Body, &feed); err != nil {
		return &storeintel.Catalog{
			Products: []storeintel.Product{},
			Platform: storeintel.PlatformShopify,
			Err:      "invalid JSON response from products endpoint",
		}
	}

	products := make([]storeintel.Product, 0, len(feed.Products))
	for _, fp := range feed.Products {
		product := storeintel.Product{
			ID:          fp.ID,
			Title:       fp.Title,
			Handle:      fp.Handle,
			ProductType: fp.ProductType,
			Vendor:      fp.Vendor,
			Tags:        normalizeTags(fp.Tags),
			Variants:    make([]storeintel.ProductVariant, 0, len(fp.Variants)),
			CreatedAt:   fp.CreatedAt,
			UpdatedAt:   fp.UpdatedAt,
			PublishedAt: fp.PublishedAt,
			Status:      fp.Status,
		}
		for _, img := range fp.Images {
			if img.Src != "" {
				product.Images = append(product.Images, img.Src)
			}
		}
		for _, v := range fp.Variants {
			product.Variants = append(product.Variants, storeintel.ProductVariant{
				ID:                v.ID,
				Title:             v.Title,
				Price:             string(v.Price),
				CompareAtPrice:    string(v.CompareAtPrice),
				SKU:               v.SKU,
				InventoryQuantity: v.InventoryQuantity,
				Available:         v.Available,
			})
		}
		products = append(products, product)
	}

	return &storeintel.Catalog{
		Products:   products,
		TotalCount: len(products),
		Platform:   storeintel.PlatformShopify,
	}
}

// normalizeTags accepts tags encoded as either a JSON array or a
// comma-separated string.
func normalizeTags(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		var tags []string
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				tags = append(tags, strings.TrimSpace(s))
			}
		}
		return tags
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var tags []string
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}

	return nil
}

// scrapedCatalog runs the selector-voting tier over the homepage and
// falls back to price-anchored scanning when no candidate selector
// qualifies.
func (e *Extractor) scrapedCatalog(ctx context.Context, baseURL string) *storeintel.Catalog {
	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return &storeintel.Catalog{
			Products: []storeintel.Product{},
			Platform: storeintel.PlatformGeneric,
			Err:      "could not access website",
		}
	}

	products := e.selectorProducts(page)
	if len(products) == 0 {
		products = e.anchoredProducts(page)
	}

	return &storeintel.Catalog{
		Products:   products,
		TotalCount: len(products),
		Platform:   goquery.DetectPlatform(page),
	}
}

// selectorProducts applies the candidate selectors in priority order
// and extracts one product per matched element from the first
// candidate that clears the vote threshold. Selectors are tried in
// fixed order, not by match count: first-to-reach-threshold wins.
func (e *Extractor) selectorProducts(page *goquery.Page) []storeintel.Product {
	products := []storeintel.Product{}

	for _, selector := range productSelectors {
		elements := page.Select(selector)
		count := elements.Length()
		if count > maxSelectorProducts {
			count = maxSelectorProducts
		}
		if count < selectorVoteThreshold {
			continue
		}

		elements.Slice(0, count).Each(func(_ int, sel *gq.Selection) {
			product := extractProductData(page, sel)
			if product.Title != "" {
				products = append(products, product)
			}
		})
		break
	}

	return products
}

// extractProductData pulls one product out of a grid element using
// nested candidate-selector lists, first match wins per field.
// Elements that yield no title are discarded by the caller.
func extractProductData(page *goquery.Page, sel *gq.Selection) storeintel.Product {
	product := storeintel.Product{Availability: "unknown"}

	for _, s := range productTitleSelectors {
		if text := goquery.SelectionText(sel.Find(s).First()); text != "" {
			product.Title = truncate(text, titleCap)
			break
		}
	}

	for _, s := range productPriceSelectors {
		priceSel := sel.Find(s).First()
		if priceSel.Length() == 0 {
			continue
		}
		if token := priceTokenRe.FindString(goquery.SelectionText(priceSel)); token != "" {
			product.Price = token
			break
		}
	}

	img := sel.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		product.Image = page.ResolveURL(src)
	} else if src, ok := img.Attr("data-src"); ok && src != "" {
		// Lazily loaded images park the real URL in data-src.
		product.Image = page.ResolveURL(src)
	}

	if href, ok := sel.Find("a").First().Attr("href"); ok && href != "" {
		product.URL = page.ResolveURL(href)
	}

	for _, s := range productDescSelectors {
		if text := goquery.SelectionText(sel.Find(s).First()); text != "" {
			product.Description = truncate(text, descriptionCap)
			break
		}
	}

	return product
}

// anchoredProducts is the last-resort tier: scan text nodes for
// currency-symbol-prefixed price tokens and reconstruct products from
// the surrounding DOM. Matches without a qualifying nearby title are
// discarded.
func (e *Extractor) anchoredProducts(page *goquery.Page) []storeintel.Product {
	products := []storeintel.Product{}

	for _, match := range page.ScanText(anchoredPriceRe, maxFallbackProducts) {
		title := goquery.SelectionText(match.Parent.Find("h1, h2, h3, h4, h5, h6, a").First())
		if len(title) <= 5 {
			continue
		}

		product := storeintel.Product{
			Title: truncate(title, titleCap),
			Price: match.Text,
		}
		if src, ok := match.Parent.Find("img").First().Attr("src"); ok && src != "" {
			product.Image = page.ResolveURL(src)
		}
		products = append(products, product)
	}

	return products
}
