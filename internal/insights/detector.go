package insights

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Shopify storefront signatures checked against the homepage. Any one
// match is sufficient; there is no weighting.
const (
	sigThemeBootstrap = "Shopify.theme"
	sigCDNHost        = "cdn.shopify.com"
	sigSubdomain      = "myshopify.com"
)

// IsShopifyStore reports whether the homepage carries any Shopify
// signature. The raw markup and the parsed document are checked
// separately: the string literals against the body, and link/script
// tags against the CDN hostname in the DOM.
func IsShopifyStore(body string, doc *goquery.Document) bool {
	if strings.Contains(body, sigThemeBootstrap) {
		return true
	}
	if strings.Contains(body, sigCDNHost) {
		return true
	}
	if strings.Contains(body, sigSubdomain) {
		return true
	}
	if doc == nil {
		return false
	}
	if doc.Find(`link[href*="` + sigCDNHost + `"]`).Length() > 0 {
		return true
	}
	return doc.Find(`script[src*="`+sigCDNHost+`"]`).Length() > 0
}
