package extract

import (
	"context"

	"github.com/storeintel/storeintel"
)

// mainSiteKey is the row key used for the main site in comparison
// tables.
const mainSiteKey = "main_site"

// SummarizeCompetitive reduces one main extraction plus its
// competitor extractions into a diff-style summary of raw counts. It
// is a pure function of its inputs. Failed competitors count toward
// TotalCompetitorsAnalyzed but are excluded from every metric table.
func SummarizeCompetitive(main *storeintel.SiteInsights, competitors []*storeintel.SiteInsights) *storeintel.CompetitiveSummary {
	summary := &storeintel.CompetitiveSummary{
		TotalCompetitorsAnalyzed: len(competitors),
		CompetitorProductCounts:  []storeintel.CompetitorProductCount{},
		SocialPresence:           map[string]int{},
		PolicyComparison:         map[string]int{},
	}

	if main != nil && !main.Failed() {
		if main.Catalog != nil {
			summary.MainSiteProducts = main.Catalog.TotalCount
		}
		summary.SocialPresence[mainSiteKey] = len(main.Social)
		summary.PolicyComparison[mainSiteKey] = len(main.Policies)
	}

	for _, comp := range competitors {
		if comp == nil || comp.Failed() {
			continue
		}
		name := storeintel.SiteName(comp.WebsiteURL)

		if comp.Catalog != nil {
			summary.CompetitorProductCounts = append(summary.CompetitorProductCounts, storeintel.CompetitorProductCount{
				Name:         name,
				ProductCount: comp.Catalog.TotalCount,
			})
		}
		if len(comp.Social) > 0 {
			summary.SocialPresence[name] = len(comp.Social)
		}
		if len(comp.Policies) > 0 {
			summary.PolicyComparison[name] = len(comp.Policies)
		}
	}

	return summary
}

// CompetitiveAnalysis extracts the main site and each competitor
// sequentially (politeness over parallelism for a single operator
// request) and attaches their summary. A failed main-site extraction
// short-circuits: competitors are not fetched.
func (a *Aggregator) CompetitiveAnalysis(ctx context.Context, mainURL string, competitorURLs []string) *storeintel.CompetitiveAnalysis {
	analysis := &storeintel.CompetitiveAnalysis{
		Competitors: []*storeintel.SiteInsights{},
	}

	analysis.MainSite = a.ExtractSiteInsights(ctx, mainURL)
	if analysis.MainSite.Failed() {
		return analysis
	}

	for _, url := range competitorURLs {
		if err := a.wait(ctx); err != nil {
			break
		}
		analysis.Competitors = append(analysis.Competitors, a.ExtractSiteInsights(ctx, url))
	}

	analysis.Summary = SummarizeCompetitive(analysis.MainSite, analysis.Competitors)
	return analysis
}
