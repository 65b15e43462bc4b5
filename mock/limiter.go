package mock

import (
	"context"

	"github.com/storeintel/storeintel"
)

var _ storeintel.StageLimiter = (*StageLimiter)(nil)

// StageLimiter is a mock implementation of storeintel.StageLimiter.
type StageLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *StageLimiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
