package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Runner triggers a check cycle on a fixed interval. Cycles are stateless:
// cycle N+1 knows nothing about cycle N.
type Runner struct {
	Logger   *zap.Logger
	Cycle    *Cycle
	Interval time.Duration
}

func NewRunner(logger *zap.Logger, cycle *Cycle, interval time.Duration) *Runner {
	return &Runner{Logger: logger, Cycle: cycle, Interval: interval}
}

// Run does an immediate pass, then one per tick. Stops when ctx is
// cancelled. Interval 0 disables the loop.
func (r *Runner) Run(ctx context.Context) {
	if r.Interval == 0 {
		r.Logger.Info("runner_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	r.Cycle.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("runner_stopped")
			return
		case <-t.C:
			r.Cycle.RunOnce(ctx)
		}
	}
}
