package insights

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate paths per text-block field, tried in order. The first path
// answering 200 with locatable content wins; the rest are skipped.
var (
	policyPrivacyPaths = []string{
		"/policies/privacy-policy",
		"/pages/privacy-policy",
		"/pages/privacy",
	}
	policyReturnPaths = []string{
		"/policies/refund-policy",
		"/pages/refund-policy",
		"/pages/returns",
		"/pages/return-policy",
	}
	policyRefundPaths = []string{
		"/policies/refund-policy",
		"/pages/refund-policy",
		"/pages/refunds",
	}
	policyTermsPaths = []string{
		"/policies/terms-of-service",
		"/pages/terms-of-service",
		"/pages/terms",
		"/pages/terms-conditions",
	}
	aboutPaths = []string{
		"/about",
		"/pages/about",
		"/pages/about-us",
		"/pages/our-story",
		"/pages/story",
	}
)

var contentClassPattern = regexp.MustCompile(`(content|main|page)`)

// extractPolicies populates each policy field from the first candidate
// path that yields readable content. Fields fail independently; a fetch
// or parse failure just moves on to the next path.
func extractPolicies(ctx context.Context, f Fetcher, base string) Policies {
	return Policies{
		Privacy:      extractTextBlock(ctx, f, base, policyPrivacyPaths),
		ReturnPolicy: extractTextBlock(ctx, f, base, policyReturnPaths),
		Refund:       extractTextBlock(ctx, f, base, policyRefundPaths),
		Terms:        extractTextBlock(ctx, f, base, policyTermsPaths),
	}
}

// extractAbout returns the brand's about blurb, or "" when no candidate
// page yields content.
func extractAbout(ctx context.Context, f Fetcher, base string) string {
	return extractTextBlock(ctx, f, base, aboutPaths)
}

// extractTextBlock tries each path in order and returns the visible
// text of the first page whose main content can be located.
func extractTextBlock(ctx context.Context, f Fetcher, base string, paths []string) string {
	for _, path := range paths {
		res, err := f.Fetch(ctx, base+path)
		if err != nil || res.StatusCode != http.StatusOK {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
		if err != nil {
			continue
		}
		content := mainContent(doc)
		if content == nil {
			continue
		}
		if text := visibleText(content); text != "" {
			return text
		}
	}
	return ""
}

// mainContent locates the page's content container: the first <main>
// landmark, else the first div whose class matches a content/main/page
// naming pattern. Returns nil when neither is present.
func mainContent(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}
	var found *goquery.Selection
	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		if ok && contentClassPattern.MatchString(class) {
			found = sel
			return false
		}
		return true
	})
	return found
}
