package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks_MatchesHrefOrText(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
		<a href="/pages/track-order">Where is my parcel?</a>
		<a href="/pages/help">Contact us</a>
		<a href="/blogs/journal">Journal</a>
		<a href="/pages/delivery-info">Delivery</a>
		<a href="https://jobs.store.test/openings">Careers</a>
	</body></html>`)

	links := extractLinks(doc, base)
	assert.Equal(t, base+"/pages/track-order", links.OrderTracking)
	assert.Equal(t, base+"/pages/help", links.ContactUs, "matched on anchor text")
	assert.Equal(t, base+"/blogs/journal", links.Blogs)
	assert.Equal(t, base+"/pages/delivery-info", links.Shipping)
	assert.Equal(t, "https://jobs.store.test/openings", links.Careers, "absolute href kept")
}

func TestExtractLinks_LastMatchWins(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
		<a href="/pages/shipping-old">Shipping</a>
		<a href="/pages/shipping-new">Shipping</a>
	</body></html>`)

	links := extractLinks(doc, base)
	assert.Equal(t, base+"/pages/shipping-new", links.Shipping)
}

func TestExtractLinks_Empty(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><a href="/products/x">buy</a></body></html>`)
	assert.Equal(t, Links{}, extractLinks(doc, base))
}
