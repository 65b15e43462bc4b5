package storeintel

import "time"

// PolicyKind identifies a store policy document.
type PolicyKind string

// Policy kinds probed for every site.
const (
	PolicyPrivacy  PolicyKind = "privacy_policy"
	PolicyReturn   PolicyKind = "return_policy"
	PolicyRefund   PolicyKind = "refund_policy"
	PolicyTerms    PolicyKind = "terms_of_service"
	PolicyShipping PolicyKind = "shipping_policy"
)

// PolicySet maps policy kinds to truncated policy text. A kind is
// present only if substantial content was found for it.
type PolicySet map[PolicyKind]string

// FAQEntry is one question/answer pair discovered on a FAQ page.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SocialHandles maps a platform name (instagram, facebook, twitter,
// tiktok, youtube, linkedin, pinterest) to the first handle matched
// for it.
type SocialHandles map[string]string

// ContactInfo holds contact details harvested from a site.
type ContactInfo struct {
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"address"`
}

// InsightsError is the terminal error of a failed site extraction.
// When set it replaces every extracted artifact on the SiteInsights.
type InsightsError struct {
	Code       string `json:"code"`
	Message    string `json:"error"`
	StatusCode int    `json:"status_code,omitempty"`
}

// SiteInsights is the aggregate produced by one extraction run over a
// single site. It is created once per run and never mutated after
// being returned; later comparisons read it immutably.
type SiteInsights struct {
	WebsiteURL  string    `json:"website_url"`
	ExtractedAt time.Time `json:"extraction_timestamp"`

	Catalog        *Catalog          `json:"product_catalog,omitempty"`
	HeroProducts   []HeroProduct     `json:"hero_products,omitempty"`
	Policies       PolicySet         `json:"policies,omitempty"`
	FAQs           []FAQEntry        `json:"faqs,omitempty"`
	Social         SocialHandles     `json:"social_handles,omitempty"`
	Contact        *ContactInfo      `json:"contact_details,omitempty"`
	BrandContext   string            `json:"brand_context,omitempty"`
	ImportantLinks map[string]string `json:"important_links,omitempty"`

	// ContentHash is the xxhash of the homepage body, recorded so
	// callers can detect unchanged sites between runs.
	ContentHash string `json:"content_hash,omitempty"`

	// Derived keyword analyses, attached on success.
	ProductCategories *ProductCategories `json:"product_categories,omitempty"`
	BrandAnalysis     *BrandAnalysis     `json:"brand_analysis,omitempty"`
	FAQInsights       *FAQInsights       `json:"faq_insights,omitempty"`

	// Err is the terminal error of a failed run. When non-nil no
	// other field above is populated.
	Err *InsightsError `json:"error,omitempty"`
}

// Failed reports whether the extraction ended in a terminal error.
func (s *SiteInsights) Failed() bool {
	return s.Err != nil
}

// ProductCategories groups catalog products by keyword-derived
// category.
type ProductCategories struct {
	Categories       map[string][]string `json:"categories"` // category -> product titles
	CategoryCounts   map[string]int      `json:"category_counts"`
	TotalCategorized int                 `json:"total_categorized"`
}

// BrandAnalysis summarizes the brand narrative text.
type BrandAnalysis struct {
	WordCount int      `json:"word_count"`
	KeyThemes []string `json:"key_themes"`
}

// FAQInsights summarizes FAQ coverage by topic.
type FAQInsights struct {
	TotalFAQs       int            `json:"total_faqs"`
	CommonTopics    map[string]int `json:"common_topics"`
	AvgAnswerLength float64        `json:"avg_answer_length"`
}
