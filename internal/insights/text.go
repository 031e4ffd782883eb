package insights

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// visibleText extracts the visible text of a selection. Each text node
// is trimmed and empty nodes dropped; the remainder is joined with
// newlines so block boundaries survive as line breaks. Script, style,
// and similar non-rendered subtrees are skipped.
func visibleText(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	var lines []string
	for _, node := range sel.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*lines = append(*lines, t)
		}
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}

// flatText joins the trimmed text segments of sel with no separator,
// the compact form used for question/answer snippets.
func flatText(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "")
}

func flatTextNode(n *html.Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, "")
}

// nextElement returns the first element with one of the given tag names
// that follows n in document order, ignoring n's own subtree boundary
// the way a flat reading of the page would.
func nextElement(n *html.Node, names ...string) *html.Node {
	for cur := nextNode(n); cur != nil; cur = nextNode(cur) {
		if cur.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if cur.Data == name {
				return cur
			}
		}
	}
	return nil
}

// nextNode advances one step in document order: first child, else next
// sibling, else the next sibling of the nearest ancestor that has one.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.NextSibling != nil {
			return cur.NextSibling
		}
	}
	return nil
}
