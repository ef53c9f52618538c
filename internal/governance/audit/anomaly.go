package audit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/ratelimitviolation"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/pkg/logger"
)

// Periodic scan thresholds.
const (
	// actionBurstThreshold is the per-action audit entry count over the scan
	// lookback that marks an anomaly.
	actionBurstThreshold = 50

	// violationVolumeThreshold is the total rate-limit violation count over
	// the lookback that marks systemic abuse.
	violationVolumeThreshold = 20
)

// Detector runs the periodic audit anomaly scan.
type Detector struct {
	client *ent.Client
	alerts *monitor.Service
}

// NewDetector creates the anomaly detector.
func NewDetector(client *ent.Client, alerts *monitor.Service) *Detector {
	return &Detector{client: client, alerts: alerts}
}

// Report summarizes one scan.
type Report struct {
	Lookback         time.Duration `json:"lookback"`
	ActionsScanned   int           `json:"actions_scanned"`
	AnomalousActions []string      `json:"anomalous_actions"`
	ViolationCount   int           `json:"violation_count"`
	AlertsRaised     int           `json:"alerts_raised"`
}

// Scan groups audit entries by action type over the lookback window and
// raises a critical alert for every action whose volume crosses the burst
// threshold, plus one alert when total rate-limit violation volume is itself
// anomalous. Alert deduplication keeps repeated scans from re-raising live
// findings.
func (d *Detector) Scan(ctx context.Context, lookback time.Duration) (*Report, error) {
	if lookback <= 0 {
		lookback = time.Hour
	}
	since := time.Now().Add(-lookback)

	var perAction []struct {
		Action string `json:"action"`
		Count  int    `json:"count"`
	}
	err := d.client.AuditEntry.Query().
		Where(auditentry.CreatedAtGTE(since)).
		GroupBy(auditentry.FieldAction).
		Aggregate(ent.Count()).
		Scan(ctx, &perAction)
	if err != nil {
		return nil, fmt.Errorf("aggregate audit entries since %s: %w", since.Format(time.RFC3339), err)
	}

	report := &Report{
		Lookback:       lookback,
		ActionsScanned: len(perAction),
	}

	for _, row := range perAction {
		if row.Count < actionBurstThreshold {
			continue
		}
		report.AnomalousActions = append(report.AnomalousActions, row.Action)
		raised, err := d.alerts.Raise(ctx, monitor.Alert{
			Severity:    monitoringalert.SeverityCRITICAL,
			Source:      "anomaly_scan",
			EventType:   monitor.EventAuditAnomaly,
			SubjectType: "action",
			SubjectID:   row.Action,
			Detail: map[string]interface{}{
				"entries":          row.Count,
				"lookback_minutes": int(lookback.Minutes()),
				"check":            "periodic",
			},
		})
		if err != nil {
			logger.Error("Failed to raise anomaly alert", zap.String("action", row.Action), zap.Error(err))
			continue
		}
		if raised {
			report.AlertsRaised++
		}
	}

	violations, err := d.client.RateLimitViolation.Query().
		Where(ratelimitviolation.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rate limit violations since %s: %w", since.Format(time.RFC3339), err)
	}
	report.ViolationCount = violations

	if violations >= violationVolumeThreshold {
		raised, err := d.alerts.Raise(ctx, monitor.Alert{
			Severity:    monitoringalert.SeverityCRITICAL,
			Source:      "anomaly_scan",
			EventType:   monitor.EventRateLimitVolume,
			SubjectType: "engine",
			SubjectID:   "rate_limiter",
			Detail: map[string]interface{}{
				"violations":       violations,
				"lookback_minutes": int(lookback.Minutes()),
			},
		})
		if err != nil {
			logger.Error("Failed to raise violation volume alert", zap.Error(err))
		} else if raised {
			report.AlertsRaised++
		}
	}

	logger.Info("Audit anomaly scan completed",
		zap.Int("actions_scanned", report.ActionsScanned),
		zap.Int("anomalous_actions", len(report.AnomalousActions)),
		zap.Int("violations", report.ViolationCount),
		zap.Int("alerts_raised", report.AlertsRaised),
	)
	return report, nil
}
