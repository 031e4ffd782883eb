package insights

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var contactPaths = []string{
	"/contact",
	"/pages/contact",
	"/pages/contact-us",
}

var (
	emailPattern      = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.[a-zA-Z]{2,}`)
	emailLeadPattern  = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.[a-zA-Z]{2,}`)
	phonePattern      = regexp.MustCompile(`\+?[\d\s()\-]{10,20}`)
	phoneStripPattern = regexp.MustCompile(`[\s()\-]+`)
)

// extractContact prefers a dedicated contact page (first candidate path
// answering 200) and falls back to the homepage. Emails come from an
// email-shaped token scan of the visible text unioned with mailto
// links; phones from a digit-shaped token scan unioned with tel links.
// Both sets are deduplicated; order is not significant, but the output
// is sorted for stability.
func extractContact(ctx context.Context, f Fetcher, base string, homepage *goquery.Document) Contact {
	doc := homepage
	for _, path := range contactPaths {
		res, err := f.Fetch(ctx, base+path)
		if err != nil || res.StatusCode != http.StatusOK {
			continue
		}
		parsed, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
		if err != nil {
			continue
		}
		doc = parsed
		break
	}

	contact := Contact{Emails: []string{}, Phones: []string{}}
	if doc == nil {
		return contact
	}

	text := visibleText(doc.Selection)

	emails := map[string]bool{}
	for _, e := range emailPattern.FindAllString(text, -1) {
		emails[e] = true
	}
	doc.Find(`a[href*="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		email := strings.TrimSpace(strings.SplitN(strings.ReplaceAll(href, "mailto:", ""), "?", 2)[0])
		if emailLeadPattern.MatchString(email) {
			emails[email] = true
		}
	})

	phones := map[string]bool{}
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		cleaned := phoneStripPattern.ReplaceAllString(candidate, "")
		if len(cleaned) >= 10 {
			phones[strings.TrimSpace(candidate)] = true
		}
	}
	doc.Find(`a[href*="tel:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		phone := strings.TrimSpace(strings.ReplaceAll(href, "tel:", ""))
		if phone != "" {
			phones[phone] = true
		}
	})

	contact.Emails = sortedKeys(emails)
	contact.Phones = sortedKeys(phones)
	return contact
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
