package extract

import (
	"context"
	"time"

	"github.com/storeintel/storeintel"
	"golang.org/x/time/rate"
)

// DefaultStagePause is the politeness pause between sequential
// extraction stages against one host.
const DefaultStagePause = time.Second

var _ storeintel.StageLimiter = (*StageLimiter)(nil)

// StageLimiter paces extraction stages with a token bucket: the first
// stage proceeds immediately, each subsequent one waits out the
// configured pause. Safe for concurrent use, though each aggregation
// run normally owns its own limiter.
type StageLimiter struct {
	limiter *rate.Limiter
}

// NewStageLimiter creates a limiter with the given inter-stage pause.
func NewStageLimiter(pause time.Duration) *StageLimiter {
	return &StageLimiter{
		limiter: rate.NewLimiter(rate.Every(pause), 1),
	}
}

// Wait blocks until the next stage may run. Returns an error only if
// the context is canceled first.
func (l *StageLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
