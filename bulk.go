package storeintel

import "time"

// BulkFailure records one URL that could not be analyzed during a
// bulk run, tagged with the reason.
type BulkFailure struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// BulkRun is the outcome of analyzing many URLs concurrently. It is
// mutated only by the orchestrator while tasks complete and is final
// once returned. Successful and Failed together always account for
// every submitted URL; results appear in completion order, not
// submission order.
type BulkRun struct {
	ID             string          `json:"id"`
	TotalURLs      int             `json:"total_urls"`
	Successful     []*SiteInsights `json:"successful"`
	Failed         []BulkFailure   `json:"failed"`
	ProcessingTime time.Duration   `json:"-"`
	SuccessRate    float64         `json:"success_rate"`
}

// ProcessingSeconds returns the wall-clock batch duration in seconds,
// the unit exposed to external collaborators.
func (r *BulkRun) ProcessingSeconds() float64 {
	return r.ProcessingTime.Seconds()
}
