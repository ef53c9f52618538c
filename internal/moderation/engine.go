package moderation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/comment"
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
)

// EngineActor is the actor recorded for automated moderation effects.
const EngineActor = "moderation-engine"

// Human decisions accepted by Override.
const (
	OverrideRestore = "restore"
	OverrideHide    = "hide"
)

// Engine records classification decisions and applies auto-hide effects.
//
// The engine runs after the comment row is committed; a failure here never
// rolls back the comment. An unmoderated comment stays visible and is
// eligible for a later re-scan.
type Engine struct {
	client *ent.Client
	audit  *audit.Logger
	alerts *monitor.Service

	// onHidden fires after a comment is hidden automatically. Wired to the
	// notification trigger at bootstrap; nil in tests.
	onHidden func(ctx context.Context, c *ent.Comment, reason string)
}

// NewEngine creates the moderation engine.
func NewEngine(client *ent.Client, auditLogger *audit.Logger, alerts *monitor.Service) *Engine {
	return &Engine{client: client, audit: auditLogger, alerts: alerts}
}

// SetHiddenHook registers the post-hide callback.
func (e *Engine) SetHiddenHook(fn func(ctx context.Context, c *ent.Comment, reason string)) {
	e.onHidden = fn
}

// OnCommentCreated classifies a freshly created comment, always records a
// PROPOSED decision, and applies the auto-hide effect for high-confidence
// toxic or spam classifications.
func (e *Engine) OnCommentCreated(ctx context.Context, c *ent.Comment) (*ent.ModerationAction, error) {
	decision := Classify(c.Body)

	action, err := e.client.ModerationAction.Create().
		SetID(generateActionID()).
		SetSubjectType("comment").
		SetSubjectID(c.ID).
		SetDecision(decision.asDocument()).
		SetStatus(moderationaction.StatusPROPOSED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record moderation decision for comment %s: %w", c.ID, err)
	}

	if !decision.AutoApplicable() {
		return action, nil
	}
	return e.execute(ctx, action, c, decision)
}

// execute applies the auto-hide effect and advances the action to EXECUTED,
// or FAILED when the effect cannot be applied.
func (e *Engine) execute(ctx context.Context, action *ent.ModerationAction, c *ent.Comment, decision Decision) (*ent.ModerationAction, error) {
	effect := "comment_hidden"
	if c.Visible {
		err := e.client.Comment.UpdateOneID(c.ID).
			SetVisible(false).
			SetHiddenReason(decision.Classification).
			SetHiddenBy(EngineActor).
			Exec(ctx)
		if err != nil {
			logger.Error("Auto-hide failed",
				zap.String("comment_id", c.ID),
				zap.String("action_id", action.ID),
				zap.Error(err),
			)
			e.alerts.RaiseBestEffort(ctx, monitor.Alert{
				Severity:    monitoringalert.SeverityWARNING,
				Source:      "moderation",
				EventType:   monitor.EventModerationExecuteFail,
				SubjectType: "comment",
				SubjectID:   c.ID,
				Detail: map[string]interface{}{
					"action_id": action.ID,
					"error":     err.Error(),
				},
			})
			failed, ferr := action.Update().
				SetStatus(moderationaction.StatusFAILED).
				Save(ctx)
			if ferr != nil {
				return action, fmt.Errorf("mark moderation action %s failed: %w", action.ID, ferr)
			}
			return failed, nil
		}
	} else {
		effect = "already_hidden"
	}

	executed, err := action.Update().
		SetStatus(moderationaction.StatusEXECUTED).
		SetAppliedEffect(effect).
		SetExecutedAt(time.Now()).
		SetExecutedBy(EngineActor).
		Save(ctx)
	if err != nil {
		return action, fmt.Errorf("mark moderation action %s executed: %w", action.ID, err)
	}

	if err := e.audit.MirrorModerationAction(ctx, executed, effect); err != nil {
		logger.Error("Failed to mirror moderation action into audit log",
			zap.String("action_id", executed.ID),
			zap.Error(err),
		)
	}

	if effect == "comment_hidden" && e.onHidden != nil {
		e.onHidden(ctx, c, decision.Classification)
	}
	return executed, nil
}

// Override records an administrator's reversal or confirmation of an
// automated outcome and applies the human decision to the comment. The
// model-vs-human pair is kept as labeled feedback.
func (e *Engine) Override(ctx context.Context, actionID, adminID, humanDecision, note string) (*ent.ModerationAction, error) {
	if humanDecision != OverrideRestore && humanDecision != OverrideHide {
		return nil, apperrors.New(apperrors.CodeValidationFailed,
			fmt.Sprintf("unknown override decision %q", humanDecision), http.StatusBadRequest)
	}

	action, err := e.client.ModerationAction.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.New(apperrors.CodeModerationActionNotFound,
				"moderation action not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("load moderation action %s: %w", actionID, err)
	}

	if action.SubjectType == "comment" {
		if err := e.applyToComment(ctx, action.SubjectID, adminID, humanDecision); err != nil {
			return nil, err
		}
	}

	predicted, _ := action.Decision["classification"].(string)
	overridden, err := e.client.ModerationAction.UpdateOneID(actionID).
		SetStatus(moderationaction.StatusOVERRIDDEN).
		SetOverrideFeedback(map[string]interface{}{
			"predicted":      predicted,
			"human_decision": humanDecision,
			"overridden_by":  adminID,
			"note":           note,
			"overridden_at":  time.Now().Format(time.RFC3339),
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("override moderation action %s: %w", actionID, err)
	}
	return overridden, nil
}

func (e *Engine) applyToComment(ctx context.Context, commentID, adminID, humanDecision string) error {
	update := e.client.Comment.Update().Where(comment.IDEQ(commentID))
	if humanDecision == OverrideRestore {
		update.SetVisible(true).ClearHiddenReason().ClearHiddenBy()
	} else {
		update.SetVisible(false).SetHiddenReason("admin_override").SetHiddenBy(adminID)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("apply override to comment %s: %w", commentID, err)
	}
	if n == 0 {
		return apperrors.New(apperrors.CodeCommentNotFound, "comment not found", http.StatusNotFound)
	}
	return nil
}

func generateActionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "mod-" + uuid.New().String()
	}
	return "mod-" + id.String()
}
