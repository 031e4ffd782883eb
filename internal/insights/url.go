package insights

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a user-supplied storefront URL: it ensures
// a scheme (defaulting to https) and rebuilds the URL as
// scheme://host/path with any trailing slash, query, and fragment
// removed. The result is the base for all relative resolution in a run.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		// Malformed input is not validated here; pass it through so the
		// homepage fetch surfaces the failure.
		return strings.TrimRight(raw, "/")
	}
	return u.Scheme + "://" + u.Host + strings.TrimRight(u.Path, "/")
}

// resolveURL resolves href against base, returning href unchanged when
// either side fails to parse.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
