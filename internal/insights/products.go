package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Feed endpoints tried in order. The first endpoint returning 200 with
// a structurally valid document (a "products" collection, even an empty
// one) wins; later endpoints are never attempted.
var productFeedPaths = []string{
	"/products.json",
	"/collections/all/products.json",
}

type productFeed struct {
	Products []feedProduct `json:"products"`
}

type feedProduct struct {
	ID       json.Number      `json:"id"`
	Title    string           `json:"title"`
	Handle   string           `json:"handle"`
	BodyHTML string           `json:"body_html"`
	Tags     json.RawMessage  `json:"tags"`
	Variants []map[string]any `json:"variants"`
	Images   []struct {
		Src string `json:"src"`
	} `json:"images"`
}

// extractProducts fetches the catalog from the first working feed
// endpoint. Transport and parse failures on an endpoint are swallowed
// and the next endpoint tried; exhausting all endpoints yields an empty
// catalog, not an error.
func extractProducts(ctx context.Context, f Fetcher, base string, pageLimit int) []Product {
	products := []Product{}
	for _, path := range productFeedPaths {
		res, err := f.Fetch(ctx, fmt.Sprintf("%s%s?limit=%d", base, path, pageLimit))
		if err != nil || res.StatusCode != http.StatusOK {
			continue
		}

		// Structural validity requires the products key itself, so that
		// an empty-but-valid feed still stops the endpoint chain.
		var probe map[string]json.RawMessage
		if err := json.Unmarshal([]byte(res.Body), &probe); err != nil {
			continue
		}
		rawProducts, ok := probe["products"]
		if !ok {
			continue
		}
		var feed []feedProduct
		if err := json.Unmarshal(rawProducts, &feed); err != nil {
			continue
		}

		for _, fp := range feed {
			products = append(products, Product{
				ID:          fp.ID.String(),
				Title:       fp.Title,
				Handle:      fp.Handle,
				Description: fp.BodyHTML,
				Price:       firstVariantPrice(fp.Variants),
				Image:       firstImageSrc(fp),
				URL:         base + "/products/" + fp.Handle,
				Tags:        normalizeTags(fp.Tags),
				Variants:    fp.Variants,
			})
		}
		break
	}
	return products
}

// firstVariantPrice returns the first variant's price, or "" when the
// product has no variants or the variant carries no price.
func firstVariantPrice(variants []map[string]any) string {
	if len(variants) == 0 {
		return ""
	}
	price, ok := variants[0]["price"]
	if !ok || price == nil {
		return ""
	}
	if s, ok := price.(string); ok {
		return s
	}
	return fmt.Sprint(price)
}

func firstImageSrc(fp feedProduct) string {
	if len(fp.Images) == 0 {
		return ""
	}
	return fp.Images[0].Src
}

// normalizeTags accepts the two encodings Shopify feeds use: a JSON
// list of strings, or a single comma-and-space-delimited string.
func normalizeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil && joined != "" {
		return strings.Split(joined, ", ")
	}
	return []string{}
}
