package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/domain"
	"github.com/hamed0406/linkwatch/internal/notify"
	"github.com/hamed0406/linkwatch/internal/probe"
)

// Summary aggregates one cycle's outcomes.
type Summary struct {
	Total  int `json:"total"`
	OK     int `json:"ok"`
	Failed int `json:"failed"`
}

// Cycle runs one full pass over the configured resources: fan out the
// checks, join, then notify per problem outcome.
type Cycle struct {
	Logger      *zap.Logger
	Resources   []domain.Resource
	Checker     *probe.Checker
	Notifier    *notify.Router
	Concurrency int
	Timeout     time.Duration
}

func NewCycle(
	logger *zap.Logger,
	resources []domain.Resource,
	checker *probe.Checker,
	notifier *notify.Router,
	concurrency int,
	timeout time.Duration,
) *Cycle {
	if concurrency < 1 {
		concurrency = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Cycle{
		Logger:      logger,
		Resources:   resources,
		Checker:     checker,
		Notifier:    notifier,
		Concurrency: concurrency,
		Timeout:     timeout,
	}
}

// RunOnce checks every resource concurrently, waits for all of them, then
// sends one notification attempt per problem outcome. Notifications run
// sequentially; a delivery failure is logged and never blocks the rest.
func (c *Cycle) RunOnce(ctx context.Context) Summary {
	c.Logger.Info("cycle_start", zap.Int("resources", len(c.Resources)))

	// Each goroutine owns results[i] exclusively until the join.
	results := make([]domain.CheckResult, len(c.Resources))
	sem := make(chan struct{}, c.Concurrency)
	var wg sync.WaitGroup

	for i, res := range c.Resources {
		i, res := i, res
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() { <-sem }()
			defer wg.Done()

			cctx, cancel := context.WithTimeout(ctx, c.Timeout)
			defer cancel()

			results[i] = c.Checker.Check(cctx, res.URL, res.Digest)
		}()
	}
	wg.Wait()

	var sum Summary
	var notifyErrs error
	for _, r := range results {
		sum.Total++
		if !r.HasProblem() {
			sum.OK++
			continue
		}
		sum.Failed++
		c.Logger.Warn("problem_detected",
			zap.String("url", r.URL),
			zap.String("outcome", r.Description()),
		)
		if err := c.Notifier.Notify(ctx, r); err != nil {
			c.Logger.Error("notification_failed",
				zap.String("url", r.URL),
				zap.Error(err),
			)
			notifyErrs = multierr.Append(notifyErrs, err)
		}
	}

	c.Logger.Info("cycle_complete",
		zap.Int("total", sum.Total),
		zap.Int("ok", sum.OK),
		zap.Int("failed", sum.Failed),
		zap.Int("notify_errors", len(multierr.Errors(notifyErrs))),
	)
	return sum
}
