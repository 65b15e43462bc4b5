package goquery

import (
	"strings"

	"github.com/storeintel/storeintel"
)

// platformKeywords lists text keywords per platform, checked in
// order. Shopify and WooCommerce additionally have attribute markers
// that are more reliable than keywords.
var platformKeywords = []struct {
	platform storeintel.Platform
	keyword  string
}{
	{storeintel.PlatformShopify, "shopify"},
	{storeintel.PlatformWooCommerce, "woocommerce"},
	{storeintel.PlatformMagento, "magento"},
	{storeintel.PlatformBigCommerce, "bigcommerce"},
	{storeintel.PlatformPrestaShop, "prestashop"},
	{storeintel.PlatformOpenCart, "opencart"},
}

// DetectPlatform classifies the e-commerce platform from page text
// and platform-specific attribute markers. Returns PlatformGeneric
// when nothing matches.
func DetectPlatform(page *Page) storeintel.Platform {
	text := strings.ToLower(page.Text())

	for _, entry := range platformKeywords {
		if strings.Contains(text, entry.keyword) {
			return entry.platform
		}
		switch entry.platform {
		case storeintel.PlatformShopify:
			if page.Select(`[name="shopify-checkout-api-token"]`).Length() > 0 {
				return storeintel.PlatformShopify
			}
		case storeintel.PlatformWooCommerce:
			if page.Select(`[class*="woocommerce"]`).Length() > 0 {
				return storeintel.PlatformWooCommerce
			}
		}
	}

	return storeintel.PlatformGeneric
}
