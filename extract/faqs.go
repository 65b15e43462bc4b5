package extract

import (
	"context"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// faqPaths are the conventional FAQ page candidates, probed in order.
// The first page yielding any accepted pair stops the probing.
var faqPaths = []string{"/pages/faq", "/faq", "/pages/frequently-asked-questions", "/help"}

// faqItemSelectors locate question/answer containers. All selectors
// are scanned on the accepted page.
var faqItemSelectors = []string{
	".faq-item", ".question", ".accordion-item", `[class*="faq"]`, ".qa-pair",
}

const (
	maxFAQs   = 20
	minFAQLen = 5
)

// FAQs discovers question/answer pairs from the conventional FAQ
// pages, capped at maxFAQs in discovery order.
func (e *Extractor) FAQs(ctx context.Context, baseURL string) []storeintel.FAQEntry {
	for _, path := range faqPaths {
		page := e.fetchPage(ctx, joinPath(baseURL, path))
		if page == nil {
			continue
		}

		faqs := extractFAQPairs(page)
		if len(faqs) > 0 {
			if len(faqs) > maxFAQs {
				faqs = faqs[:maxFAQs]
			}
			return faqs
		}
	}

	return []storeintel.FAQEntry{}
}

// extractFAQPairs pulls question/answer pairs out of one page. A pair
// requires a heading or question-class element plus an answer-class
// element or following paragraph, both beyond the minimum length.
func extractFAQPairs(page *goquery.Page) []storeintel.FAQEntry {
	faqs := []storeintel.FAQEntry{}

	for _, selector := range faqItemSelectors {
		page.Select(selector).Each(func(_ int, item *gq.Selection) {
			question := goquery.SelectionText(item.Find("h1, h2, h3, h4, h5, h6").First())
			if question == "" {
				question = goquery.SelectionText(item.Find(`[class*="question"]`).First())
			}

			answer := goquery.SelectionText(item.Find(`[class*="answer"]`).First())
			if answer == "" {
				answer = goquery.SelectionText(item.Find("p").First())
			}

			if len(question) > minFAQLen && len(answer) > minFAQLen {
				faqs = append(faqs, storeintel.FAQEntry{
					Question: question,
					Answer:   answer,
				})
			}
		})
	}

	return faqs
}
