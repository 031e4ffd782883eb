package insights

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const heroProductCap = 10

// extractHeroProducts returns the catalog products whose links appear
// on the homepage, in page-encounter order. Handles are deduplicated on
// first sight; links to products outside the fetched catalog are
// skipped, never synthesized. At most heroProductCap products are
// returned.
func extractHeroProducts(doc *goquery.Document, catalog []Product) []Product {
	hero := []Product{}
	if doc == nil || len(catalog) == 0 {
		return hero
	}

	byHandle := make(map[string]Product, len(catalog))
	for _, p := range catalog {
		if _, ok := byHandle[p.Handle]; !ok {
			byHandle[p.Handle] = p
		}
	}

	seen := map[string]bool{}
	doc.Find(`a[href*="/products/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		handle := handleFromHref(href)
		if handle == "" || seen[handle] {
			return
		}
		seen[handle] = true
		if p, ok := byHandle[handle]; ok {
			hero = append(hero, p)
		}
	})

	if len(hero) > heroProductCap {
		hero = hero[:heroProductCap]
	}
	return hero
}

// handleFromHref extracts the trailing path segment before any query
// string, e.g. "/products/blue-shirt?variant=1" -> "blue-shirt".
func handleFromHref(href string) string {
	segments := strings.Split(href, "/")
	last := segments[len(segments)-1]
	return strings.SplitN(last, "?", 2)[0]
}
