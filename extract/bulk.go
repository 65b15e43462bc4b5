package extract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storeintel/storeintel"
	"golang.org/x/sync/errgroup"
)

// Bulk orchestration defaults. The worker bound is deliberately small
// to respect target-host load; the task timeout is an outer bound
// independent of the fetcher's per-request timeout.
const (
	DefaultWorkers     = 3
	DefaultTaskTimeout = 120 * time.Second
)

// Progress reports one completed bulk task.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as tasks complete, in completion order.
type ProgressFunc func(Progress)

// Orchestrator runs the Aggregator over many URLs concurrently with a
// bounded worker pool, per-task outer timeout, and per-task failure
// isolation: one URL failing never cancels or delays its siblings.
type Orchestrator struct {
	Aggregator  *Aggregator
	Workers     int
	TaskTimeout time.Duration
}

// taskOutcome is the per-URL result moved from worker to collector.
// Each task owns its insights exclusively until it hands them over.
type taskOutcome struct {
	url      string
	insights *storeintel.SiteInsights
	err      error
}

// Run analyzes every URL and partitions the outcomes into successes
// and failures, collected in completion order. The run always
// accounts for every submitted URL; an empty list yields a zero
// success rate rather than a fault.
func (o *Orchestrator) Run(ctx context.Context, urls []string, progress ProgressFunc) *storeintel.BulkRun {
	run := &storeintel.BulkRun{
		ID:         uuid.NewString(),
		TotalURLs:  len(urls),
		Successful: []*storeintel.SiteInsights{},
		Failed:     []storeintel.BulkFailure{},
	}

	start := time.Now()

	workers := o.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	outcomes := make(chan taskOutcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	go func() {
		for _, url := range urls {
			g.Go(func() error {
				outcomes <- o.runTask(gctx, url)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	completed := 0
	for outcome := range outcomes {
		completed++
		if outcome.err != nil {
			run.Failed = append(run.Failed, storeintel.BulkFailure{
				URL:   outcome.url,
				Error: storeintel.ErrorMessage(outcome.err),
			})
		} else {
			run.Successful = append(run.Successful, outcome.insights)
		}
		if progress != nil {
			progress(Progress{
				URL:       outcome.url,
				Completed: completed,
				Total:     len(urls),
				Err:       outcome.err,
			})
		}
	}

	run.ProcessingTime = time.Since(start)
	if len(urls) > 0 {
		run.SuccessRate = float64(len(run.Successful)) / float64(len(urls)) * 100
	}

	return run
}

// runTask runs one aggregation under the outer task timeout. On
// timeout the task is abandoned, not interrupted: the result is
// recorded as failed and whatever work remains in flight is discarded
// when its context dies.
func (o *Orchestrator) runTask(ctx context.Context, url string) taskOutcome {
	timeout := o.TaskTimeout
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan *storeintel.SiteInsights, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- &storeintel.SiteInsights{
					WebsiteURL: url,
					Err: &storeintel.InsightsError{
						Code:    storeintel.EEXTRACTION,
						Message: "error occurred during data extraction",
					},
				}
			}
		}()
		done <- o.Aggregator.ExtractSiteInsights(tctx, url)
	}()

	select {
	case insights := <-done:
		if insights.Failed() {
			return taskOutcome{
				url: url,
				err: storeintel.Errorf(insights.Err.Code, "%s", insights.Err.Message),
			}
		}
		return taskOutcome{url: url, insights: insights}
	case <-tctx.Done():
		return taskOutcome{
			url: url,
			err: storeintel.Errorf(storeintel.ETIMEOUT, "analysis exceeded %s deadline", timeout),
		}
	}
}
