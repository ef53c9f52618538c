package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/ratelimitcounter"
	"versus-arena.io/arena/internal/governance/monitor"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/settings"
)

// incrementCounterSQL is the single atomic insert-or-increment for a window
// counter. Raw SQL because the check-then-set must not race under concurrent
// requests for the same window.
const incrementCounterSQL = `
INSERT INTO rate_limit_counters (procedure, scope_key, window_start, count)
VALUES ($1, $2, $3, 1)
ON CONFLICT (procedure, scope_key, window_start)
DO UPDATE SET count = rate_limit_counters.count + 1
RETURNING count`

// Limiter enforces per-minute budgets on privileged procedures.
//
// Fail-open: if the rule table cannot be loaded or the counter cannot be
// incremented, the call is allowed and the failure is logged. The limiter
// protects the engine from abuse, it must not become its availability
// bottleneck.
type Limiter struct {
	pool     *pgxpool.Pool
	client   *ent.Client
	settings *settings.Store
	alerts   *monitor.Service

	// now is swappable for window-boundary tests.
	now func() time.Time
}

// NewLimiter creates the limiter.
func NewLimiter(pool *pgxpool.Pool, client *ent.Client, store *settings.Store, alerts *monitor.Service) *Limiter {
	return &Limiter{
		pool:     pool,
		client:   client,
		settings: store,
		alerts:   alerts,
		now:      time.Now,
	}
}

// CheckAndConsume consumes one unit of the actor's budget for procedure.
// Returns a rate_limit_exceeded AppError when the post-increment count is
// over the rule's allowance. Procedures without an enabled rule always pass.
func (l *Limiter) CheckAndConsume(ctx context.Context, actorID, procedure string) error {
	rule, enforced, err := l.ruleFor(ctx, procedure)
	if err != nil {
		logger.Error("Rate limit rule lookup failed, allowing request",
			zap.String("procedure", procedure),
			zap.Error(err),
		)
		return nil
	}
	if !enforced {
		return nil
	}

	scopeKey := ScopeGlobal
	if rule.Scope == ScopeUser {
		scopeKey = actorID
	}
	windowStart := l.now().UTC().Truncate(time.Minute)

	var count int
	err = l.pool.QueryRow(ctx, incrementCounterSQL, procedure, scopeKey, windowStart).Scan(&count)
	if err != nil {
		logger.Error("Rate limit counter increment failed, allowing request",
			zap.String("procedure", procedure),
			zap.String("scope_key", scopeKey),
			zap.Error(err),
		)
		return nil
	}

	if count <= rule.AllowedPerMinute {
		return nil
	}

	monitor.RateLimitRejections.WithLabelValues(procedure).Inc()
	l.recordViolation(ctx, actorID, procedure, scopeKey, windowStart, count, rule.AllowedPerMinute)

	return apperrors.ErrRateLimited(procedure).WithParams(map[string]interface{}{
		"procedure":          procedure,
		"allowed_per_minute": rule.AllowedPerMinute,
		"retry_after_secs":   int(windowStart.Add(time.Minute).Sub(l.now().UTC()).Seconds()) + 1,
	})
}

// recordViolation writes the violation row and raises a warning alert.
// Best effort on both.
func (l *Limiter) recordViolation(ctx context.Context, actorID, procedure, scopeKey string, windowStart time.Time, count, allowed int) {
	_, err := l.client.RateLimitViolation.Create().
		SetID(generateViolationID()).
		SetProcedure(procedure).
		SetScopeKey(scopeKey).
		SetActor(actorID).
		SetWindowStart(windowStart).
		SetCount(count).
		SetAllowedPerMinute(allowed).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to record rate limit violation",
			zap.String("procedure", procedure),
			zap.Error(err),
		)
	}

	l.alerts.RaiseBestEffort(ctx, monitor.Alert{
		Severity:    monitoringalert.SeverityWARNING,
		Source:      "rate_limiter",
		EventType:   monitor.EventRateLimitBreach,
		SubjectType: "actor",
		SubjectID:   actorID,
		Detail: map[string]interface{}{
			"procedure":          procedure,
			"scope_key":          scopeKey,
			"count":              count,
			"allowed_per_minute": allowed,
			"window_start":       windowStart.Format(time.RFC3339),
		},
	})
}

// PurgeCountersBefore deletes counter rows for windows older than cutoff.
// Called by the hourly retention job.
func (l *Limiter) PurgeCountersBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := l.client.RateLimitCounter.Delete().
		Where(ratelimitcounter.WindowStartLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge rate limit counters before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}

func generateViolationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "rlv-" + uuid.New().String()
	}
	return "rlv-" + id.String()
}
