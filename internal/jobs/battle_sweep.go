// Package jobs defines River Queue job types for the engine's periodic
// maintenance: the finalization sweep, the anomaly scan, and retention
// cleanup for rate-limit counters and notifications.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/service"
)

// BattleSweepArgs is the periodic job that finalizes battles whose voting
// window has elapsed.
type BattleSweepArgs struct{}

// Kind returns the job kind identifier for the finalization sweep.
func (BattleSweepArgs) Kind() string { return "battle_sweep" }

// InsertOpts deduplicates sweeps within one scheduling period; a sweep that
// is still running absorbs the next tick.
func (BattleSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// BattleSweepWorker runs the sweep through the battle service, so sweep
// finalizations follow the exact same row-lock discipline as admin calls.
type BattleSweepWorker struct {
	river.WorkerDefaults[BattleSweepArgs]
	battles *service.BattleService
}

// NewBattleSweepWorker creates the sweep worker.
func NewBattleSweepWorker(battles *service.BattleService) *BattleSweepWorker {
	return &BattleSweepWorker{battles: battles}
}

// Work finalizes all expired active battles.
func (w *BattleSweepWorker) Work(ctx context.Context, _ *river.Job[BattleSweepArgs]) error {
	if w == nil || w.battles == nil {
		return fmt.Errorf("battle sweep worker is not initialized")
	}

	finalized, err := w.battles.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("battle sweep: %w", err)
	}
	if finalized > 0 {
		logger.Info("Battle sweep completed", zap.Int("finalized", finalized))
	}
	return nil
}
