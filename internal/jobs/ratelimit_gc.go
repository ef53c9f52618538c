package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/pkg/logger"
)

// DefaultCounterRetention is how long expired rate-limit windows are kept
// for inspection before garbage collection.
const DefaultCounterRetention = 24 * time.Hour

// RateLimitGCArgs is the hourly counter garbage-collection job.
type RateLimitGCArgs struct{}

// Kind returns the job kind identifier for rate-limit counter GC.
func (RateLimitGCArgs) Kind() string { return "rate_limit_gc" }

// InsertOpts ensures at most one GC job per hour.
func (RateLimitGCArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// RateLimitGCWorker purges counter rows past the retention horizon.
// Violation rows are kept; they feed the anomaly detector and are part of
// the governance record.
type RateLimitGCWorker struct {
	river.WorkerDefaults[RateLimitGCArgs]
	limiter   *ratelimit.Limiter
	retention time.Duration
}

// NewRateLimitGCWorker creates the GC worker. Non-positive retention falls
// back to the 24-hour default.
func NewRateLimitGCWorker(limiter *ratelimit.Limiter, retention time.Duration) *RateLimitGCWorker {
	if retention <= 0 {
		retention = DefaultCounterRetention
	}
	return &RateLimitGCWorker{limiter: limiter, retention: retention}
}

// Work deletes counters for windows older than the retention horizon.
func (w *RateLimitGCWorker) Work(ctx context.Context, _ *river.Job[RateLimitGCArgs]) error {
	if w == nil || w.limiter == nil {
		return fmt.Errorf("rate limit gc worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.limiter.PurgeCountersBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("rate limit gc: %w", err)
	}
	if deleted > 0 {
		logger.Info("Rate limit counter GC completed",
			zap.Int("deleted_rows", deleted),
			zap.String("cutoff", cutoff.Format(time.RFC3339)),
		)
	}
	return nil
}
