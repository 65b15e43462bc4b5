package storeintel

// Platform identifies the e-commerce platform a site runs on.
type Platform string

// Known platforms. Unknown means detection never ran (e.g. the feed
// endpoint was unreachable); Generic means detection ran but matched
// nothing.
const (
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
	PlatformMagento     Platform = "magento"
	PlatformBigCommerce Platform = "bigcommerce"
	PlatformPrestaShop  Platform = "prestashop"
	PlatformOpenCart    Platform = "opencart"
	PlatformGeneric     Platform = "generic"
	PlatformUnknown     Platform = "unknown"
)

// ProductVariant is a purchasable variation of a product. Price is
// textual and currency-agnostic; the catalog carries the detected
// currency separately.
type ProductVariant struct {
	ID                int64  `json:"id,omitempty"`
	Title             string `json:"title,omitempty"`
	Price             string `json:"price,omitempty"`
	CompareAtPrice    string `json:"compare_at_price,omitempty"`
	SKU               string `json:"sku,omitempty"`
	InventoryQuantity int    `json:"inventory_quantity,omitempty"`
	Available         bool   `json:"available,omitempty"`
}

// Product is a single catalog entry. Feed-sourced products carry the
// full structured shape (handle, vendor, variants, timestamps);
// scraped products carry the flat shape (price, image, URL,
// description). Tag order is insignificant; image and variant order
// is preserved.
type Product struct {
	ID          int64            `json:"id,omitempty"`
	Title       string           `json:"title"`
	Handle      string           `json:"handle,omitempty"`
	ProductType string           `json:"product_type,omitempty"`
	Vendor      string           `json:"vendor,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Variants    []ProductVariant `json:"variants,omitzero"`
	Images      []string         `json:"images,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
	PublishedAt string           `json:"published_at,omitempty"`
	Status      string           `json:"status,omitempty"`

	// Scraped-tier fields.
	Price        string `json:"price,omitempty"`
	Image        string `json:"image,omitempty"`
	URL          string `json:"url,omitempty"`
	Description  string `json:"description,omitempty"`
	Availability string `json:"availability,omitempty"`
}

// Catalog is the recovered product list for one site. TotalCount
// always equals len(Products) unless Err is set, in which case both
// are zero.
type Catalog struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"total_count"`
	Platform   Platform  `json:"platform"`
	Currency   string    `json:"currency,omitempty"`
	Err        string    `json:"error,omitempty"`
}

// HeroProduct is a featured product surfaced on the homepage.
type HeroProduct struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Image string `json:"image,omitempty"`
	Price string `json:"price,omitempty"`
}
