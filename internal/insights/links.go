package insights

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type linkRule struct {
	name    string
	pattern *regexp.Regexp
}

// Named link categories in fixed evaluation order. A keyword match
// against either the href or the visible anchor text flags a category.
var linkRules = []linkRule{
	{"order_tracking", regexp.MustCompile(`(order.?tracking|track.?order|track.?package)`)},
	{"contact_us", regexp.MustCompile(`(contact|contact.?us)`)},
	{"blogs", regexp.MustCompile(`(blog|news|articles)`)},
	{"shipping", regexp.MustCompile(`(shipping|delivery)`)},
	{"careers", regexp.MustCompile(`(careers|jobs|join.?us|work.?with.?us)`)},
}

// extractLinks scans homepage anchors for the named categories and
// stores the absolute resolved URL. Later anchors overwrite earlier
// ones for the same category (last match wins, same policy as socials).
func extractLinks(doc *goquery.Document, base string) Links {
	var links Links
	if doc == nil {
		return links
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.ToLower(href)
		text := strings.ToLower(sel.Text())
		for _, rule := range linkRules {
			if rule.pattern.MatchString(href) || rule.pattern.MatchString(text) {
				setLink(&links, rule.name, resolveURL(base, href))
			}
		}
	})
	return links
}

func setLink(l *Links, category, url string) {
	switch category {
	case "order_tracking":
		l.OrderTracking = url
	case "contact_us":
		l.ContactUs = url
	case "blogs":
		l.Blogs = url
	case "shipping":
		l.Shipping = url
	case "careers":
		l.Careers = url
	}
}
