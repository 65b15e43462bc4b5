package extract

import (
	"strings"

	"github.com/storeintel/storeintel"
)

// categoryKeywords classifies products into coarse retail categories
// by keyword, first matching category wins. Unmatched products fall
// into "other".
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"apparel", []string{"shirt", "dress", "pants", "jacket", "hoodie", "sweater", "tee", "top"}},
	{"accessories", []string{"bag", "watch", "jewelry", "belt", "hat", "sunglasses"}},
	{"footwear", []string{"shoes", "boots", "sneakers", "sandals", "heels"}},
	{"beauty", []string{"makeup", "skincare", "perfume", "cosmetics", "beauty"}},
	{"fitness", []string{"protein", "supplement", "equipment", "yoga", "workout"}},
	{"home", []string{"candle", "decor", "furniture", "kitchen", "bathroom"}},
}

// brandThemeKeywords identify recurring brand-positioning themes in
// narrative text.
var brandThemeKeywords = []struct {
	theme    string
	keywords []string
}{
	{"sustainability", []string{"sustainable", "eco-friendly", "environmental", "green", "organic", "natural"}},
	{"quality", []string{"premium", "luxury", "high-quality", "craftsmanship", "artisan"}},
	{"innovation", []string{"innovative", "technology", "cutting-edge", "advanced", "revolutionary"}},
	{"community", []string{"community", "together", "family", "connect", "share"}},
	{"wellness", []string{"wellness", "health", "fitness", "mindfulness", "balance"}},
}

// faqTopicKeywords bucket FAQ questions into recurring customer
// concerns.
var faqTopicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"shipping", []string{"ship", "delivery", "shipping"}},
	{"returns", []string{"return", "refund", "exchange"}},
	{"sizing", []string{"size", "fit", "sizing"}},
	{"payment", []string{"payment", "pay", "credit card", "paypal"}},
	{"products", []string{"product", "material", "quality"}},
}

// CategorizeProducts groups catalog products into keyword-derived
// categories. Pure function of its input.
func CategorizeProducts(products []storeintel.Product) *storeintel.ProductCategories {
	categories := make(map[string][]string)

	for _, product := range products {
		title := strings.ToLower(product.Title)
		productType := strings.ToLower(product.ProductType)
		tags := make([]string, 0, len(product.Tags))
		for _, tag := range product.Tags {
			tags = append(tags, strings.ToLower(tag))
		}

		name := "other"
		for _, category := range categoryKeywords {
			if matchesAnyKeyword(category.keywords, title, productType, tags) {
				name = category.name
				break
			}
		}
		categories[name] = append(categories[name], product.Title)
	}

	counts := make(map[string]int, len(categories))
	total := 0
	for name, titles := range categories {
		counts[name] = len(titles)
		total += len(titles)
	}

	return &storeintel.ProductCategories{
		Categories:       categories,
		CategoryCounts:   counts,
		TotalCategorized: total,
	}
}

func matchesAnyKeyword(keywords []string, title, productType string, tags []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(title, keyword) || strings.Contains(productType, keyword) {
			return true
		}
		for _, tag := range tags {
			if strings.Contains(tag, keyword) {
				return true
			}
		}
	}
	return false
}

// AnalyzeBrandText summarizes a brand narrative: word count and the
// positioning themes its wording suggests.
func AnalyzeBrandText(text string) *storeintel.BrandAnalysis {
	analysis := &storeintel.BrandAnalysis{
		WordCount: len(strings.Fields(text)),
		KeyThemes: []string{},
	}

	lower := strings.ToLower(text)
	for _, entry := range brandThemeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				analysis.KeyThemes = append(analysis.KeyThemes, entry.theme)
				break
			}
		}
	}

	return analysis
}

// AnalyzeFAQPatterns summarizes FAQ coverage: per-topic question
// counts and average answer length.
func AnalyzeFAQPatterns(faqs []storeintel.FAQEntry) *storeintel.FAQInsights {
	insights := &storeintel.FAQInsights{
		TotalFAQs:    len(faqs),
		CommonTopics: map[string]int{},
	}
	if len(faqs) == 0 {
		return insights
	}

	totalAnswerLen := 0
	for _, faq := range faqs {
		question := strings.ToLower(faq.Question)
		totalAnswerLen += len(faq.Answer)

		for _, entry := range faqTopicKeywords {
			for _, keyword := range entry.keywords {
				if strings.Contains(question, keyword) {
					insights.CommonTopics[entry.topic]++
					break
				}
			}
		}
	}
	insights.AvgAnswerLength = float64(totalAnswerLen) / float64(len(faqs))

	return insights
}
