package storeintel

// CompetitorProductCount is one competitor's catalog size, keyed by
// its display name.
type CompetitorProductCount struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// CompetitiveSummary compares one main site against a set of
// competitor extractions. It is derived and read-only: raw counts
// only, recomputed from its inputs, never persisted as a source of
// truth. Competitors whose own extraction failed are counted in
// TotalCompetitorsAnalyzed but excluded from every per-metric table.
type CompetitiveSummary struct {
	TotalCompetitorsAnalyzed int                      `json:"total_competitors_analyzed"`
	MainSiteProducts         int                      `json:"main_site_products"`
	CompetitorProductCounts  []CompetitorProductCount `json:"competitor_product_counts"`
	SocialPresence           map[string]int           `json:"social_presence_comparison"`
	PolicyComparison         map[string]int           `json:"policy_comparison"`
}

// CompetitiveAnalysis bundles a main-site extraction with its
// competitor extractions and their summary.
type CompetitiveAnalysis struct {
	MainSite    *SiteInsights       `json:"main_site"`
	Competitors []*SiteInsights     `json:"competitors"`
	Summary     *CompetitiveSummary `json:"competitive_summary"`
}
