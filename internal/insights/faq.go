package insights

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var faqPaths = []string{
	"/faq",
	"/pages/faq",
	"/pages/faqs",
	"/pages/frequently-asked-questions",
}

var (
	faqItemClassPattern     = regexp.MustCompile(`(accordion|faq-item|collapse)`)
	faqQuestionClassPattern = regexp.MustCompile(`(question|header|title)`)
	faqAnswerClassPattern   = regexp.MustCompile(`(answer|content|body)`)
	faqHeadingClassPattern  = regexp.MustCompile(`(question|faq-question)`)
)

// extractFAQs tries each candidate path until one yields pairs. Per
// page, accordion-style grouped items are collected first; the flat
// heading-then-next-block heuristic runs only when the accordion scan
// finds nothing. The two strategies are never merged.
func extractFAQs(ctx context.Context, f Fetcher, base string) []FAQ {
	faqs := []FAQ{}
	for _, path := range faqPaths {
		res, err := f.Fetch(ctx, base+path)
		if err != nil || res.StatusCode != http.StatusOK {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
		if err != nil {
			continue
		}

		faqs = accordionFAQs(doc)
		if len(faqs) == 0 {
			faqs = flatFAQs(doc)
		}
		if len(faqs) > 0 {
			break
		}
	}
	return faqs
}

// accordionFAQs collects question/answer pairs from grouped items whose
// class marks them as accordion or FAQ entries.
func accordionFAQs(doc *goquery.Document) []FAQ {
	faqs := []FAQ{}
	doc.Find("details, div").Each(func(_ int, item *goquery.Selection) {
		if !classMatches(item, faqItemClassPattern) {
			return
		}
		question := firstClassMatch(item, "summary, h3, h4, button, div", faqQuestionClassPattern)
		answer := firstClassMatch(item, "div, p", faqAnswerClassPattern)
		if question == nil || answer == nil {
			return
		}
		q := flatText(question)
		a := flatText(answer)
		if q != "" && a != "" {
			faqs = append(faqs, FAQ{Question: q, Answer: a})
		}
	})
	return faqs
}

// flatFAQs pairs each heading-like question node with the next p or div
// in document order.
func flatFAQs(doc *goquery.Document) []FAQ {
	faqs := []FAQ{}
	doc.Find("h3, h4, strong").Each(func(_ int, heading *goquery.Selection) {
		if !classMatches(heading, faqHeadingClassPattern) {
			return
		}
		q := flatText(heading)
		if q == "" || len(heading.Nodes) == 0 {
			return
		}
		answerNode := nextElement(heading.Nodes[0], "p", "div")
		a := flatTextNode(answerNode)
		if a != "" {
			faqs = append(faqs, FAQ{Question: q, Answer: a})
		}
	})
	return faqs
}

func classMatches(sel *goquery.Selection, pattern *regexp.Regexp) bool {
	class, ok := sel.Attr("class")
	return ok && pattern.MatchString(class)
}

// firstClassMatch returns the first descendant matching the selector
// whose class attribute matches pattern, or nil.
func firstClassMatch(sel *goquery.Selection, selector string, pattern *regexp.Regexp) *goquery.Selection {
	var found *goquery.Selection
	sel.Find(selector).EachWithBreak(func(_ int, candidate *goquery.Selection) bool {
		if classMatches(candidate, pattern) {
			found = candidate
			return false
		}
		return true
	})
	return found
}
