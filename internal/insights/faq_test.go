package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accordionPage = `<html><body>
	<div class="faq-item">
		<button class="faq-question">Do you ship abroad?</button>
		<div class="faq-answer">Yes, worldwide.</div>
	</div>
	<details class="accordion">
		<summary class="accordion-title">Returns?</summary>
		<p class="accordion-body">Within 30 days.</p>
	</details>
	<div class="faq-item">
		<button class="faq-question">Unanswered?</button>
	</div>
</body></html>`

const flatPage = `<html><body>
	<h3 class="question">How long is delivery?</h3>
	<p>Three to five days.</p>
	<h4 class="faq-question">Where are you based?</h4>
	<div>Lisbon.</div>
	<h3>Not a question heading</h3>
	<p>Ignored.</p>
</body></html>`

func TestExtractFAQs_Accordion(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher().page(base+"/faq", accordionPage)

	faqs := extractFAQs(context.Background(), f, base)
	require.Len(t, faqs, 2)
	assert.Equal(t, FAQ{Question: "Do you ship abroad?", Answer: "Yes, worldwide."}, faqs[0])
	assert.Equal(t, FAQ{Question: "Returns?", Answer: "Within 30 days."}, faqs[1])
}

func TestExtractFAQs_FlatFallback(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher().page(base+"/faq", flatPage)

	faqs := extractFAQs(context.Background(), f, base)
	require.Len(t, faqs, 2)
	assert.Equal(t, FAQ{Question: "How long is delivery?", Answer: "Three to five days."}, faqs[0])
	assert.Equal(t, FAQ{Question: "Where are you based?", Answer: "Lisbon."}, faqs[1])
}

func TestExtractFAQs_AccordionWinsOverFlat(t *testing.T) {
	t.Parallel()

	// Both styles on one page: only the accordion result is used,
	// never a merge.
	combined := `<html><body>
		<div class="faq-item">
			<div class="question">Accordion Q</div>
			<div class="answer">Accordion A</div>
		</div>
		<h3 class="question">Flat Q</h3>
		<p>Flat A</p>
	</body></html>`
	f := newFakeFetcher().page(base+"/faq", combined)

	faqs := extractFAQs(context.Background(), f, base)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Accordion Q", faqs[0].Question)
}

func TestExtractFAQs_TriesLaterPathsWhenEmpty(t *testing.T) {
	t.Parallel()

	// A 200 FAQ page with no extractable pairs falls through to the
	// next candidate path.
	f := newFakeFetcher().
		page(base+"/faq", `<html><body><p>Nothing structured.</p></body></html>`).
		page(base+"/pages/faq", flatPage)

	faqs := extractFAQs(context.Background(), f, base)
	require.Len(t, faqs, 2)
	assert.Contains(t, f.fetched, base+"/pages/faq")
}

func TestExtractFAQs_AllPathsMissing(t *testing.T) {
	t.Parallel()

	faqs := extractFAQs(context.Background(), newFakeFetcher(), base)
	assert.Empty(t, faqs)
	assert.NotNil(t, faqs)
}
