package extract_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/storeintel/storeintel/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_FAQs(t *testing.T) {
	t.Parallel()

	t.Run("extracts question and answer pairs", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<div class="accordion-item">
				<h3>Do you ship internationally?</h3>
				<div class="answer">Yes, we ship to over 40 countries.</div>
			</div>
			<div class="accordion-item">
				<h3>How long do returns take?</h3>
				<p>Refunds post within 5 business days.</p>
			</div>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base + "/pages/faq": page,
		})}

		faqs := e.FAQs(context.Background(), base)

		require.Len(t, faqs, 2)
		assert.Equal(t, "Do you ship internationally?", faqs[0].Question)
		assert.Equal(t, "Yes, we ship to over 40 countries.", faqs[0].Answer)
		assert.Equal(t, "How long do returns take?", faqs[1].Question)
		assert.Equal(t, "Refunds post within 5 business days.", faqs[1].Answer)
	})

	t.Run("first page yielding pairs stops the probing", func(t *testing.T) {
		t.Parallel()

		empty := `<html><body><p>nothing here</p></body></html>`
		withPairs := `<html><body>
			<div class="question">
				<h3>What sizes do you carry?</h3>
				<p>Sizes XS through 3XL.</p>
			</div>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base + "/pages/faq": empty,
			base + "/faq":       withPairs,
			base + "/help":      `<html><body><div class="faq-item"><h3>Never read?</h3><p>Never read.</p></div></body></html>`,
		})}

		faqs := e.FAQs(context.Background(), base)

		require.Len(t, faqs, 1)
		assert.Equal(t, "What sizes do you carry?", faqs[0].Question)
	})

	t.Run("falls back to question-class text for the question", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<div class="accordion-item">
				<span class="question-header">Can I change my order?</span>
				<span class="answer-body">Within one hour of placing it.</span>
			</div>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base + "/pages/faq": page,
		})}

		faqs := e.FAQs(context.Background(), base)

		require.Len(t, faqs, 1)
		assert.Equal(t, "Can I change my order?", faqs[0].Question)
		assert.Equal(t, "Within one hour of placing it.", faqs[0].Answer)
	})

	t.Run("rejects pairs below the minimum length", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<div class="faq-item"><h3>Why?</h3><p>Because of reasons explained at length.</p></div>
			<div class="faq-item"><h3>A question long enough to pass?</h3><p>No.</p></div>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base + "/faq": page,
		})}

		faqs := e.FAQs(context.Background(), base)
		assert.Empty(t, faqs)
	})

	t.Run("caps the number of pairs", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 30; i++ {
			fmt.Fprintf(&b, `<div class="qa-pair"><h3>Question number %02d?</h3><p>Answer number %02d.</p></div>`, i, i)
		}
		b.WriteString("</body></html>")

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base + "/help": b.String(),
		})}

		faqs := e.FAQs(context.Background(), base)
		assert.Len(t, faqs, 20)
	})

	t.Run("empty list when no candidate page responds", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Fetcher: downFetcher()}
		faqs := e.FAQs(context.Background(), base)

		assert.NotNil(t, faqs)
		assert.Empty(t, faqs)
	})
}
