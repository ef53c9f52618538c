package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestJobKinds(t *testing.T) {
	t.Parallel()

	if got := (BattleSweepArgs{}).Kind(); got != "battle_sweep" {
		t.Fatalf("Kind() = %q, want %q", got, "battle_sweep")
	}
	if got := (AnomalyScanArgs{}).Kind(); got != "anomaly_scan" {
		t.Fatalf("Kind() = %q, want %q", got, "anomaly_scan")
	}
	if got := (RateLimitGCArgs{}).Kind(); got != "rate_limit_gc" {
		t.Fatalf("Kind() = %q, want %q", got, "rate_limit_gc")
	}
	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestBattleSweepInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (BattleSweepArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Minute {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Minute)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts must dedupe by queue and args")
	}
}

func TestAnomalyScanInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (AnomalyScanArgs{}).InsertOpts()
	if opts.UniqueOpts.ByPeriod != 5*time.Minute {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 5*time.Minute)
	}
}

func TestWorkerRetentionDefaults(t *testing.T) {
	t.Parallel()

	t.Run("rate limit gc defaults to a day", func(t *testing.T) {
		w := NewRateLimitGCWorker(nil, 0)
		if w.retention != DefaultCounterRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultCounterRetention)
		}
	})

	t.Run("notification cleanup defaults to ninety days", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("explicit retention wins", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestWorkersRejectUninitializedState(t *testing.T) {
	t.Parallel()

	checks := []struct {
		name string
		run  func() error
	}{
		{"battle sweep", func() error { return (&BattleSweepWorker{}).Work(context.Background(), nil) }},
		{"anomaly scan", func() error { return (&AnomalyScanWorker{}).Work(context.Background(), nil) }},
		{"rate limit gc", func() error { return (&RateLimitGCWorker{}).Work(context.Background(), nil) }},
		{"notification cleanup", func() error { return (&NotificationCleanupWorker{}).Work(context.Background(), nil) }},
	}
	for _, tc := range checks {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.run()
			if err == nil || !strings.Contains(err.Error(), "not initialized") {
				t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
			}
		})
	}
}
