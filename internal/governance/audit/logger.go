// Package audit implements the append-only audit log for privileged
// operations. Every admin action, vote, moderation decision and rate-limit
// event leaves a row here, successful or not. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/pkg/worker"
)

// Actions recorded by the engine. Dotted verb namespaces, subject in the row.
const (
	ActionBattlePropose    = "battle.propose"
	ActionBattleAccept     = "battle.accept"
	ActionBattleReject     = "battle.reject"
	ActionBattleValidate   = "battle.admin_validate"
	ActionBattleCancel     = "battle.admin_cancel"
	ActionBattleExtend     = "battle.admin_extend"
	ActionBattleFinalize   = "battle.finalize"
	ActionVoteCast         = "vote.cast"
	ActionCommentCreate    = "comment.create"
	ActionCommentHide      = "comment.hide"
	ActionModerationApply  = "moderation.apply"
	ActionOverride         = "moderation.override"
	ActionSettingsUpdate   = "settings.update"
	ActionAlertResolve     = "alert.resolve"
	ActionAnomalyScanStart = "anomaly_scan.trigger"
)

// companionWindow and companionThreshold drive the synchronous anomaly
// companion check: a single actor producing this many audit rows inside the
// window trips a critical alert without waiting for the periodic scan.
const (
	companionWindow    = 5 * time.Minute
	companionThreshold = 25
)

// Entry is one auditable occurrence.
type Entry struct {
	Actor       string
	Action      string
	SubjectType string
	SubjectID   string

	// RequestContext carries request-scoped metadata (request id, client ip).
	RequestContext map[string]interface{}

	// Detail carries action-specific payload.
	Detail map[string]interface{}

	Success   bool
	ErrorCode string
}

// Logger writes audit rows and runs the companion anomaly check.
type Logger struct {
	client *ent.Client
	alerts *monitor.Service
	pools  *worker.Pools
}

// NewLogger creates the audit logger.
func NewLogger(client *ent.Client, alerts *monitor.Service, pools *worker.Pools) *Logger {
	return &Logger{client: client, alerts: alerts, pools: pools}
}

// Log writes one audit row. A write failure is itself an operational event:
// it is logged, raises a warning alert, and is returned so callers can decide
// whether the operation should proceed (most call sites use `_ =`, the
// underlying operation already committed).
func (l *Logger) Log(ctx context.Context, e Entry) error {
	create := l.client.AuditEntry.Create().
		SetID(generateAuditID()).
		SetActor(e.Actor).
		SetAction(e.Action).
		SetSubjectType(e.SubjectType).
		SetSubjectID(e.SubjectID).
		SetSuccess(e.Success)
	if e.RequestContext != nil {
		create.SetRequestContext(e.RequestContext)
	}
	if e.Detail != nil {
		create.SetDetail(e.Detail)
	}
	if e.ErrorCode != "" {
		create.SetErrorCode(e.ErrorCode)
	}

	if _, err := create.Save(ctx); err != nil {
		monitor.AuditEntriesWritten.WithLabelValues("error").Inc()
		logger.Error("Failed to write audit entry",
			zap.String("action", e.Action),
			zap.String("actor", e.Actor),
			zap.String("subject_id", e.SubjectID),
			zap.Error(err),
		)
		l.alerts.RaiseBestEffort(ctx, monitor.Alert{
			Severity:    monitoringalert.SeverityWARNING,
			Source:      "audit",
			EventType:   monitor.EventAuditWriteFailed,
			SubjectType: e.SubjectType,
			SubjectID:   e.SubjectID,
			Detail: map[string]interface{}{
				"action": e.Action,
				"actor":  e.Actor,
				"error":  err.Error(),
			},
		})
		return fmt.Errorf("write audit entry %s: %w", e.Action, err)
	}

	monitor.AuditEntriesWritten.WithLabelValues(fmt.Sprintf("%t", e.Success)).Inc()

	// A recorded failure is an operational signal on its own.
	if !e.Success {
		l.alerts.RaiseBestEffort(ctx, monitor.Alert{
			Severity:    monitoringalert.SeverityWARNING,
			Source:      "audit",
			EventType:   monitor.EventOperationFailed,
			SubjectType: e.SubjectType,
			SubjectID:   e.SubjectID,
			Detail: map[string]interface{}{
				"action":     e.Action,
				"actor":      e.Actor,
				"error_code": e.ErrorCode,
			},
		})
	}

	l.scheduleCompanionCheck(e.Action)
	return nil
}

// scheduleCompanionCheck runs the short-window per-action burst check off the
// request path. Submission failure only logs; the periodic scan is the
// backstop.
func (l *Logger) scheduleCompanionCheck(action string) {
	if l.pools == nil || action == "" {
		return
	}
	err := l.pools.SubmitDetached("governance", func(ctx context.Context) {
		since := time.Now().Add(-companionWindow)
		n, err := l.client.AuditEntry.Query().
			Where(
				auditentry.ActionEQ(action),
				auditentry.CreatedAtGTE(since),
			).
			Count(ctx)
		if err != nil {
			logger.Warn("Audit companion check failed", zap.String("action", action), zap.Error(err))
			return
		}
		if n < companionThreshold {
			return
		}
		l.alerts.RaiseBestEffort(ctx, monitor.Alert{
			Severity:    monitoringalert.SeverityCRITICAL,
			Source:      "audit",
			EventType:   monitor.EventAuditAnomaly,
			SubjectType: "action",
			SubjectID:   action,
			Detail: map[string]interface{}{
				"entries":        n,
				"window_minutes": int(companionWindow.Minutes()),
				"check":          "companion",
			},
		})
	})
	if err != nil {
		logger.Warn("Failed to schedule audit companion check", zap.String("action", action), zap.Error(err))
	}
}

// MirrorModerationAction writes the audit row mirroring an executed
// moderation decision. Idempotent on the decision id: replaying the same
// decision does not duplicate the row.
func (l *Logger) MirrorModerationAction(ctx context.Context, action *ent.ModerationAction, appliedEffect string) error {
	exists, err := l.client.AuditEntry.Query().
		Where(auditentry.SourceDecisionIDEQ(action.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check moderation mirror for %s: %w", action.ID, err)
	}
	if exists {
		return nil
	}

	_, err = l.client.AuditEntry.Create().
		SetID(generateAuditID()).
		SetActor("moderation-engine").
		SetAction(ActionModerationApply).
		SetSubjectType(action.SubjectType).
		SetSubjectID(action.SubjectID).
		SetSuccess(true).
		SetSourceDecisionID(action.ID).
		SetDetail(map[string]interface{}{
			"decision":       action.Decision,
			"applied_effect": appliedEffect,
		}).
		Save(ctx)
	if err != nil {
		// A concurrent mirror of the same decision hit the unique index first.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("mirror moderation action %s: %w", action.ID, err)
	}
	return nil
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "audit-" + uuid.New().String()
	}
	return "audit-" + id.String()
}
