// Package monitor implements operational alerting for the battle engine.
//
// Alerts are durable rows surfaced to administrators. Raising an alert is a
// governance side effect and must never fail the calling operation; callers
// treat errors from this package as log-and-continue.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/pkg/logger"
)

// Alert event types raised by the engine.
const (
	EventAuditWriteFailed      = "audit_write_failed"
	EventAuditAnomaly          = "audit_anomaly"
	EventOperationFailed       = "privileged_operation_failed"
	EventRateLimitBreach       = "rate_limit_breach"
	EventRateLimitVolume       = "rate_limit_violation_volume"
	EventModerationExecuteFail = "moderation_execute_failed"
	EventSweepFailure          = "sweep_failure"
)

// Alert describes a condition worth an administrator's attention.
type Alert struct {
	Severity    monitoringalert.Severity
	Source      string
	EventType   string
	SubjectType string
	SubjectID   string
	Detail      map[string]interface{}
}

// Service persists alerts with per-subject deduplication.
type Service struct {
	client *ent.Client

	// dedupWindow suppresses repeat alerts for the same (event_type, subject)
	// while a recent unresolved one exists.
	dedupWindow time.Duration
}

// NewService creates the alert service.
func NewService(client *ent.Client, dedupWindow time.Duration) *Service {
	if dedupWindow <= 0 {
		dedupWindow = time.Hour
	}
	return &Service{client: client, dedupWindow: dedupWindow}
}

// Raise persists the alert unless an unresolved alert for the same
// (event_type, subject) was raised within the dedup window. Returns whether
// a new row was created.
func (s *Service) Raise(ctx context.Context, a Alert) (bool, error) {
	since := time.Now().Add(-s.dedupWindow)
	exists, err := s.client.MonitoringAlert.Query().
		Where(
			monitoringalert.EventTypeEQ(a.EventType),
			monitoringalert.SubjectTypeEQ(a.SubjectType),
			monitoringalert.SubjectIDEQ(a.SubjectID),
			monitoringalert.ResolvedEQ(false),
			monitoringalert.CreatedAtGTE(since),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check alert dedup for %s/%s: %w", a.EventType, a.SubjectID, err)
	}
	if exists {
		return false, nil
	}

	_, err = s.client.MonitoringAlert.Create().
		SetID(generateAlertID()).
		SetSeverity(a.Severity).
		SetSource(a.Source).
		SetEventType(a.EventType).
		SetSubjectType(a.SubjectType).
		SetSubjectID(a.SubjectID).
		SetDetail(a.Detail).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("write alert %s: %w", a.EventType, err)
	}

	alertsRaised.WithLabelValues(string(a.Severity), a.EventType).Inc()
	logger.Warn("Monitoring alert raised",
		zap.String("severity", string(a.Severity)),
		zap.String("event_type", a.EventType),
		zap.String("subject_type", a.SubjectType),
		zap.String("subject_id", a.SubjectID),
	)
	return true, nil
}

// RaiseBestEffort raises an alert and only logs on failure. Used from code
// paths that must not propagate governance errors.
func (s *Service) RaiseBestEffort(ctx context.Context, a Alert) {
	if _, err := s.Raise(ctx, a); err != nil {
		logger.Error("Failed to raise monitoring alert",
			zap.String("event_type", a.EventType),
			zap.Error(err),
		)
	}
}

// Resolve marks an alert resolved by the given administrator.
func (s *Service) Resolve(ctx context.Context, alertID, resolvedBy string) (*ent.MonitoringAlert, error) {
	row, err := s.client.MonitoringAlert.UpdateOneID(alertID).
		SetResolved(true).
		SetResolvedBy(resolvedBy).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("alert %s not found: %w", alertID, err)
		}
		return nil, fmt.Errorf("resolve alert %s: %w", alertID, err)
	}
	return row, nil
}

// ListOpen returns unresolved alerts, newest first.
func (s *Service) ListOpen(ctx context.Context, limit int) ([]*ent.MonitoringAlert, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.client.MonitoringAlert.Query().
		Where(monitoringalert.ResolvedEQ(false)).
		Order(ent.Desc(monitoringalert.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open alerts: %w", err)
	}
	return rows, nil
}

func generateAlertID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "alert-" + uuid.New().String()
	}
	return "alert-" + id.String()
}
