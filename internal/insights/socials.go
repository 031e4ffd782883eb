package insights

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type socialRule struct {
	name      string
	candidate *regexp.Regexp
	username  *regexp.Regexp
	// handle builds the stored value from a username regex match, or
	// returns "" to fall back to the raw href.
	handle func(m []string) string
}

func atGroup(i int) func([]string) string {
	return func(m []string) string {
		if len(m) > i && m[i] != "" {
			return "@" + m[i]
		}
		return ""
	}
}

func bareGroup(i int) func([]string) string {
	return func(m []string) string {
		if len(m) > i && m[i] != "" {
			return m[i]
		}
		return ""
	}
}

// Recognized platforms in fixed evaluation order. The linkedin handle
// intentionally keys off the path kind segment; preserved as shipped.
var socialRules = []socialRule{
	{
		name:      "instagram",
		candidate: regexp.MustCompile(`(instagram\.com|instagram)`),
		username:  regexp.MustCompile(`instagram\.com/([\w._]+)`),
		handle:    atGroup(1),
	},
	{
		name:      "facebook",
		candidate: regexp.MustCompile(`(facebook\.com|facebook)`),
		username:  regexp.MustCompile(`facebook\.com/([\w.]+)`),
		handle:    atGroup(1),
	},
	{
		name:      "tiktok",
		candidate: regexp.MustCompile(`(tiktok\.com|tiktok)`),
		username:  regexp.MustCompile(`tiktok\.com/@?([\w.]+)`),
		handle:    atGroup(1),
	},
	{
		name:      "twitter",
		candidate: regexp.MustCompile(`(twitter\.com|x\.com)`),
		username:  regexp.MustCompile(`(twitter|x)\.com/(\w+)`),
		handle:    atGroup(2),
	},
	{
		name:      "youtube",
		candidate: regexp.MustCompile(`(youtube\.com|youtube)`),
		username:  regexp.MustCompile(`youtube\.com/(user|channel)/(\w+)`),
		handle:    bareGroup(2),
	},
	{
		name:      "linkedin",
		candidate: regexp.MustCompile(`(linkedin\.com|linkedin)`),
		username:  regexp.MustCompile(`linkedin\.com/(company|in)/([\w\-]+)`),
		handle:    atGroup(1),
	},
	{
		name:      "pinterest",
		candidate: regexp.MustCompile(`(pinterest\.com|pinterest)`),
		username:  regexp.MustCompile(`pinterest\.com/(\w+)`),
		handle:    atGroup(1),
	},
}

// extractSocials scans every homepage anchor for recognized social
// platforms. The stored value is the extracted handle where the URL
// shape allows it, otherwise the raw href. Later anchors overwrite
// earlier ones for the same platform (last match wins).
func extractSocials(doc *goquery.Document) Socials {
	var socials Socials
	if doc == nil {
		return socials
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.ToLower(href)
		if href == "" {
			return
		}
		for _, rule := range socialRules {
			if !rule.candidate.MatchString(href) {
				continue
			}
			value := ""
			if m := rule.username.FindStringSubmatch(href); m != nil {
				value = rule.handle(m)
			}
			if value == "" {
				value = href
			}
			setSocial(&socials, rule.name, value)
		}
	})
	return socials
}

func setSocial(s *Socials, platform, value string) {
	switch platform {
	case "instagram":
		s.Instagram = value
	case "facebook":
		s.Facebook = value
	case "tiktok":
		s.TikTok = value
	case "twitter":
		s.Twitter = value
	case "youtube":
		s.YouTube = value
	case "linkedin":
		s.LinkedIn = value
	case "pinterest":
		s.Pinterest = value
	}
}
