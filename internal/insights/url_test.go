package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare host gets https", in: "shop.com", want: "https://shop.com"},
		{name: "trailing slash removed", in: "shop.com/", want: "https://shop.com"},
		{name: "existing https kept", in: "https://shop.com", want: "https://shop.com"},
		{name: "http not upgraded", in: "http://shop.com/", want: "http://shop.com"},
		{name: "path preserved without trailing slash", in: "https://shop.com/store/", want: "https://shop.com/store"},
		{name: "query dropped", in: "shop.com/?utm_source=x", want: "https://shop.com"},
		{name: "fragment dropped", in: "shop.com#top", want: "https://shop.com"},
		{name: "surrounding whitespace trimmed", in: "  shop.com  ", want: "https://shop.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://shop.com/pages/faq", resolveURL("https://shop.com", "/pages/faq"))
	assert.Equal(t, "https://other.com/x", resolveURL("https://shop.com", "https://other.com/x"))
}
