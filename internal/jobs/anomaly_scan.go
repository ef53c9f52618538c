package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"versus-arena.io/arena/internal/governance/audit"
)

// AnomalyScanArgs is the periodic audit anomaly scan job.
type AnomalyScanArgs struct {
	// LookbackMinutes overrides the configured lookback when positive. Set
	// by the admin-triggered scan endpoint.
	LookbackMinutes int `json:"lookback_minutes,omitempty"`
}

// Kind returns the job kind identifier for the anomaly scan.
func (AnomalyScanArgs) Kind() string { return "anomaly_scan" }

// InsertOpts deduplicates scans within the scheduling period.
func (AnomalyScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 5 * time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// AnomalyScanWorker runs the periodic detector.
type AnomalyScanWorker struct {
	river.WorkerDefaults[AnomalyScanArgs]
	detector *audit.Detector
	lookback time.Duration
}

// NewAnomalyScanWorker creates the scan worker with the configured default
// lookback.
func NewAnomalyScanWorker(detector *audit.Detector, lookback time.Duration) *AnomalyScanWorker {
	if lookback <= 0 {
		lookback = time.Hour
	}
	return &AnomalyScanWorker{detector: detector, lookback: lookback}
}

// Work runs one scan.
func (w *AnomalyScanWorker) Work(ctx context.Context, job *river.Job[AnomalyScanArgs]) error {
	if w == nil || w.detector == nil {
		return fmt.Errorf("anomaly scan worker is not initialized")
	}

	lookback := w.lookback
	if job.Args.LookbackMinutes > 0 {
		lookback = time.Duration(job.Args.LookbackMinutes) * time.Minute
	}

	if _, err := w.detector.Scan(ctx, lookback); err != nil {
		return fmt.Errorf("anomaly scan: %w", err)
	}
	return nil
}
