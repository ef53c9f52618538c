package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/identity"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/settings"
)

// SchedulerActor is the actor recorded for sweep-triggered finalizations.
const SchedulerActor = "scheduler"

// BattleService implements the battle state machine. Every transition locks
// the target battle row for its duration, so concurrent attempts on the same
// battle serialize while different battles proceed in parallel.
type BattleService struct {
	client     *ent.Client
	limiter    *ratelimit.Limiter
	oracle     identity.Oracle
	catalog    identity.CatalogStore
	audit      *audit.Logger
	alerts     *monitor.Service
	settings   *settings.Store
	dispatcher *domain.EventDispatcher

	// now is swappable for deadline tests.
	now func() time.Time
}

// NewBattleService creates the battle service.
func NewBattleService(
	client *ent.Client,
	limiter *ratelimit.Limiter,
	oracle identity.Oracle,
	catalog identity.CatalogStore,
	auditLogger *audit.Logger,
	alerts *monitor.Service,
	store *settings.Store,
	dispatcher *domain.EventDispatcher,
) *BattleService {
	return &BattleService{
		client:     client,
		limiter:    limiter,
		oracle:     oracle,
		catalog:    catalog,
		audit:      auditLogger,
		alerts:     alerts,
		settings:   store,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Propose creates a battle in PENDING_ACCEPTANCE with zero tallies and no
// winner. The proposer enters as participant A, the opponent as participant
// B with a response deadline. A non-nil durationDays records a per-battle
// override of the global voting duration, resolved at validation time.
func (s *BattleService) Propose(ctx context.Context, proposerID, opponentID, submissionA, submissionB string, durationDays *int) (*ent.Battle, error) {
	if err := s.gate(ctx, proposerID, ratelimit.ProcedureBattlePropose, audit.ActionBattlePropose, ""); err != nil {
		return nil, err
	}

	b, err := s.propose(ctx, proposerID, opponentID, submissionA, submissionB, durationDays)
	s.logAudit(ctx, proposerID, audit.ActionBattlePropose, battleSubject(b), map[string]interface{}{
		"opponent_id":  opponentID,
		"submission_a": submissionA,
		"submission_b": submissionB,
	}, err)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.EventBattleProposed, b, proposerID, "")
	return b, nil
}

func (s *BattleService) propose(ctx context.Context, proposerID, opponentID, submissionA, submissionB string, durationDays *int) (*ent.Battle, error) {
	switch {
	case proposerID == opponentID:
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "a battle needs two distinct participants")
	case durationDays != nil && (*durationDays < 1 || *durationDays > MaxTotalDurationDays):
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "duration override out of range")
	case !s.oracle.CanCompete(ctx, proposerID):
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "proposer is not eligible to compete")
	case !s.oracle.CanCompete(ctx, opponentID):
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "opponent is not eligible to compete")
	case !s.catalog.SubmissionOwned(ctx, submissionA, proposerID):
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "submission does not belong to the proposer")
	case submissionB != "" && !s.catalog.SubmissionOwned(ctx, submissionB, opponentID):
		return nil, apperrors.BadRequest(apperrors.CodeInvalidProposal, "submission does not belong to the opponent")
	}

	id := generateBattleID()
	deadline := s.now().Add(ResponseWindow)

	create := s.client.Battle.Create().
		SetID(id).
		SetSlug(battleSlug(id)).
		SetParticipantA(proposerID).
		SetParticipantB(opponentID).
		SetSubmissionA(submissionA).
		SetStatus(battle.StatusPENDING_ACCEPTANCE).
		SetResponseDeadline(deadline).
		SetCreatedBy(proposerID).
		SetNillableCustomDurationDays(durationDays)
	if submissionB != "" {
		create.SetSubmissionB(submissionB)
	}

	b, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}

	logger.Info("Battle proposed",
		zap.String("battle_id", b.ID),
		zap.String("proposer", proposerID),
		zap.String("opponent", opponentID),
	)
	return b, nil
}

// Respond records the invited participant's accept or reject decision,
// exactly once. A rejection requires a reason, increments the responder's
// refusal counter, and recalculates their engagement score.
func (s *BattleService) Respond(ctx context.Context, battleID, responderID string, accept bool, reason string) (*ent.Battle, error) {
	action := audit.ActionBattleAccept
	if !accept {
		action = audit.ActionBattleReject
	}
	if err := s.gate(ctx, responderID, ratelimit.ProcedureBattleRespond, action, battleID); err != nil {
		return nil, err
	}

	b, err := s.respond(ctx, battleID, responderID, accept, reason)
	s.logAudit(ctx, responderID, action, battleID, map[string]interface{}{
		"accept": accept,
		"reason": reason,
	}, err)
	if err != nil {
		return nil, err
	}

	if accept {
		s.emit(ctx, domain.EventBattleAccepted, b, responderID, "")
	} else {
		s.emit(ctx, domain.EventBattleRejected, b, responderID, reason)
	}
	return b, nil
}

func (s *BattleService) respond(ctx context.Context, battleID, responderID string, accept bool, reason string) (*ent.Battle, error) {
	var result *ent.Battle
	err := s.withBattleLock(ctx, battleID, func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error {
		if verr := EvaluateRespond(b, responderID, accept, reason); verr != nil {
			return verr
		}

		now := s.now()
		update := tx.Battle.UpdateOne(b)
		if accept {
			update.SetStatus(battle.StatusAWAITING_ADMIN).SetAcceptedAt(now)
		} else {
			update.SetStatus(battle.StatusREJECTED).
				SetRejectedAt(now).
				SetRejectionReason(reason)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("record response on battle %s: %w", battleID, err)
		}

		if !accept {
			if err := s.adjustCounters(ctx, tx, responderID, counterDelta{refused: 1}); err != nil {
				return err
			}
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	monitor.BattleTransitions.WithLabelValues(string(result.Status)).Inc()
	return result, nil
}

// AdminValidate moves an accepted battle into ACTIVE, resolving the
// effective voting duration (battle override, global default, fallback) and
// stamping the voting window. Never overwrites an already-set window end.
func (s *BattleService) AdminValidate(ctx context.Context, battleID, adminID string) (*ent.Battle, error) {
	if err := s.adminGate(ctx, adminID, ratelimit.ProcedureAdminValidate, audit.ActionBattleValidate, battleID); err != nil {
		return nil, err
	}

	var durationDetail map[string]interface{}
	var result *ent.Battle
	err := s.withBattleLock(ctx, battleID, func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error {
		if b.Status != battle.StatusAWAITING_ADMIN {
			return apperrors.Precondition(apperrors.CodeBattleNotAwaitingAdmin, "battle is not awaiting admin validation")
		}

		now := s.now()
		update := tx.Battle.UpdateOne(b).
			SetStatus(battle.StatusACTIVE).
			SetAdminValidatedAt(now)

		if b.StartsAt == nil {
			update.SetStartsAt(now)
		}

		if b.VotingEndsAt == nil {
			days, source := ResolveVotingDurationDays(b.CustomDurationDays, s.configuredDefaultDays(ctx))
			update.SetVotingEndsAt(now.AddDate(0, 0, days))
			durationDetail = map[string]interface{}{
				"duration_days":   days,
				"duration_source": source,
			}
			logger.Info("Voting duration determined",
				zap.String("battle_id", b.ID),
				zap.Int("days", days),
				zap.String("source", source),
			)
		}

		updated, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("validate battle %s: %w", battleID, err)
		}

		for _, pid := range []string{b.ParticipantA, b.ParticipantB} {
			if err := s.adjustCounters(ctx, tx, pid, counterDelta{participated: 1}); err != nil {
				return err
			}
		}

		result = updated
		return nil
	})

	detail := map[string]interface{}{}
	for k, v := range durationDetail {
		detail[k] = v
	}
	s.logAudit(ctx, adminID, audit.ActionBattleValidate, battleID, detail, err)
	if err != nil {
		return nil, err
	}

	monitor.BattleTransitions.WithLabelValues(string(result.Status)).Inc()
	s.emit(ctx, domain.EventBattleStarted, result, adminID, "")
	return result, nil
}

// AdminCancel cancels a battle from any non-completed status and clears any
// winner. Irreversible.
func (s *BattleService) AdminCancel(ctx context.Context, battleID, adminID, reason string) (*ent.Battle, error) {
	if err := s.adminGate(ctx, adminID, ratelimit.ProcedureAdminCancel, audit.ActionBattleCancel, battleID); err != nil {
		return nil, err
	}

	var result *ent.Battle
	err := s.withBattleLock(ctx, battleID, func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error {
		if b.Status == battle.StatusCOMPLETED {
			return apperrors.Precondition(apperrors.CodeBattleAlreadyCompleted, "completed battles cannot be cancelled")
		}

		updated, err := tx.Battle.UpdateOne(b).
			SetStatus(battle.StatusCANCELLED).
			ClearWinner().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("cancel battle %s: %w", battleID, err)
		}
		result = updated
		return nil
	})

	s.logAudit(ctx, adminID, audit.ActionBattleCancel, battleID, map[string]interface{}{
		"reason": reason,
	}, err)
	if err != nil {
		return nil, err
	}

	monitor.BattleTransitions.WithLabelValues(string(result.Status)).Inc()
	s.emit(ctx, domain.EventBattleCancelled, result, adminID, reason)
	return result, nil
}

// AdminExtendDuration extends the voting window of an active battle. The
// audit record carries the full before/after window.
func (s *BattleService) AdminExtendDuration(ctx context.Context, battleID, adminID string, days int, reason string) (*ent.Battle, error) {
	if err := s.adminGate(ctx, adminID, ratelimit.ProcedureAdminExtend, audit.ActionBattleExtend, battleID); err != nil {
		return nil, err
	}

	var before time.Time
	var result *ent.Battle
	err := s.withBattleLock(ctx, battleID, func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error {
		if verr := EvaluateExtension(b, days, s.now()); verr != nil {
			return verr
		}

		before = *b.VotingEndsAt
		updated, err := tx.Battle.UpdateOne(b).
			SetVotingEndsAt(before.AddDate(0, 0, days)).
			AddExtensionCount(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("extend battle %s: %w", battleID, err)
		}
		result = updated
		return nil
	})

	detail := map[string]interface{}{
		"days":   days,
		"reason": reason,
	}
	if err == nil {
		detail["voting_ends_at_before"] = before.Format(time.RFC3339)
		detail["voting_ends_at_after"] = result.VotingEndsAt.Format(time.RFC3339)
		detail["extension_count"] = result.ExtensionCount
	}
	s.logAudit(ctx, adminID, audit.ActionBattleExtend, battleID, detail, err)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.EventBattleExtended, result, adminID, reason)
	return result, nil
}

// Finalize resolves the winner of an active battle and moves it to
// COMPLETED. Calling it on an already-completed battle is a no-op returning
// the recorded winner; human-triggered no-ops still leave an audit record
// for traceability.
func (s *BattleService) Finalize(ctx context.Context, battleID, actorID string) (*ent.Battle, error) {
	viaScheduler := actorID == SchedulerActor
	if !viaScheduler {
		if err := s.adminGate(ctx, actorID, ratelimit.ProcedureFinalize, audit.ActionBattleFinalize, battleID); err != nil {
			return nil, err
		}
	}

	var noop bool
	var result *ent.Battle
	err := s.withBattleLock(ctx, battleID, func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error {
		var verr *apperrors.AppError
		noop, verr = EvaluateFinalize(b)
		if verr != nil {
			return verr
		}
		if noop {
			result = b
			return nil
		}

		winner := ComputeWinner(b)
		update := tx.Battle.UpdateOne(b).SetStatus(battle.StatusCOMPLETED)
		if winner != nil {
			update.SetWinner(*winner)
		} else {
			update.ClearWinner()
		}
		if b.VotingEndsAt == nil {
			update.SetVotingEndsAt(s.now())
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("finalize battle %s: %w", battleID, err)
		}

		for _, pid := range []string{b.ParticipantA, b.ParticipantB} {
			if err := s.adjustCounters(ctx, tx, pid, counterDelta{completed: 1}); err != nil {
				return err
			}
		}

		result = updated
		return nil
	})

	// Scheduler no-ops are routine (a concurrent finalize won the race) and
	// stay out of the audit log; human no-ops are recorded.
	if !(noop && viaScheduler && err == nil) {
		detail := map[string]interface{}{"noop": noop}
		if err == nil && result.Winner != nil {
			detail["winner"] = *result.Winner
		}
		s.logAudit(ctx, actorID, audit.ActionBattleFinalize, battleID, detail, err)
	}
	if err != nil {
		return nil, err
	}

	if !noop {
		monitor.BattleTransitions.WithLabelValues(string(result.Status)).Inc()
		s.emit(ctx, domain.EventBattleCompleted, result, actorID, "")
	}
	return result, nil
}

// SweepExpired finalizes every active battle whose voting window has
// elapsed. Idempotent and safe to run concurrently with itself or with
// individual Finalize calls; whoever commits first wins and the loser
// observes a no-op.
func (s *BattleService) SweepExpired(ctx context.Context) (int, error) {
	now := s.now()
	expired, err := s.client.Battle.Query().
		Where(
			battle.StatusEQ(battle.StatusACTIVE),
			battle.VotingEndsAtLTE(now),
		).
		Order(ent.Asc(battle.FieldVotingEndsAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan expired battles: %w", err)
	}

	finalized := 0
	for _, b := range expired {
		if _, err := s.Finalize(ctx, b.ID, SchedulerActor); err != nil {
			logger.Error("Sweep finalize failed",
				zap.String("battle_id", b.ID),
				zap.Error(err),
			)
			// A battle the sweep cannot close stays expired-but-active until
			// a human looks at it.
			s.alerts.RaiseBestEffort(ctx, monitor.Alert{
				Severity:    monitoringalert.SeverityWARNING,
				Source:      "battle-sweep",
				EventType:   monitor.EventSweepFailure,
				SubjectType: "battle",
				SubjectID:   b.ID,
				Detail: map[string]interface{}{
					"error_code": apperrors.CodeOf(err),
					"error":      err.Error(),
				},
			})
			continue
		}
		finalized++
	}
	return finalized, nil
}

// Get returns a battle by id.
func (s *BattleService) Get(ctx context.Context, battleID string) (*ent.Battle, error) {
	b, err := s.client.Battle.Get(ctx, battleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrBattleNotFound()
		}
		return nil, fmt.Errorf("get battle %s: %w", battleID, err)
	}
	return b, nil
}

// List returns battles filtered by status, newest first.
func (s *BattleService) List(ctx context.Context, status string, limit, offset int) ([]*ent.Battle, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := s.client.Battle.Query()
	if status != "" {
		q = q.Where(battle.StatusEQ(battle.Status(status)))
	}
	rows, err := q.
		Order(ent.Desc(battle.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list battles: %w", err)
	}
	return rows, nil
}

// --- internals ---

// withBattleLock runs fn inside a transaction holding an exclusive lock on
// the battle row. Precondition failures abort the transaction; no partial
// state is ever persisted.
func (s *BattleService) withBattleLock(ctx context.Context, battleID string, fn func(ctx context.Context, tx *ent.Tx, b *ent.Battle) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin battle tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := tx.Battle.Query().
		Where(battle.IDEQ(battleID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrBattleNotFound()
		}
		return fmt.Errorf("lock battle %s: %w", battleID, err)
	}

	if err := fn(ctx, tx, b); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit battle tx: %w", err)
	}
	return nil
}

type counterDelta struct {
	participated int
	completed    int
	refused      int
}

// adjustCounters applies counter deltas to a user and recalculates their
// engagement score inside the caller's transaction.
func (s *BattleService) adjustCounters(ctx context.Context, tx *ent.Tx, userID string, d counterDelta) error {
	if userID == "" {
		return nil
	}
	u, err := tx.User.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user %s for counter update: %w", userID, err)
	}

	completed := u.BattlesCompleted + d.completed
	refused := u.BattlesRefused + d.refused
	score := identity.EngagementScore(identity.EngagementInputs{
		Completions: completed,
		Refusals:    refused,
	})

	err = tx.User.UpdateOne(u).
		AddBattlesParticipated(d.participated).
		SetBattlesCompleted(completed).
		SetBattlesRefused(refused).
		SetEngagementScore(score).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update counters for user %s: %w", userID, err)
	}
	return nil
}

// configuredDefaultDays reads the global default voting duration from the
// settings store. Zero means "not configured".
func (s *BattleService) configuredDefaultDays(ctx context.Context) int {
	doc, ok, err := s.settings.Get(ctx, settings.KeyVotingDefaultDuration)
	if err != nil {
		logger.Warn("Failed to load default voting duration", zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}
	if days, ok := doc.Body["days"].(float64); ok && days > 0 {
		return int(days)
	}
	if days, ok := doc.Body["days"].(int); ok && days > 0 {
		return days
	}
	return 0
}

// gate consumes rate-limit budget and audits a denial.
func (s *BattleService) gate(ctx context.Context, actorID, procedure, action, battleID string) error {
	if err := s.limiter.CheckAndConsume(ctx, actorID, procedure); err != nil {
		s.logAudit(ctx, actorID, action, battleID, nil, err)
		return err
	}
	return nil
}

// adminGate is gate plus the administrator check.
func (s *BattleService) adminGate(ctx context.Context, actorID, procedure, action, battleID string) error {
	if err := s.gate(ctx, actorID, procedure, action, battleID); err != nil {
		return err
	}
	if !s.oracle.IsAdministrator(ctx, actorID) {
		err := apperrors.ErrAdminRequired()
		s.logAudit(ctx, actorID, action, battleID, nil, err)
		return err
	}
	return nil
}

func (s *BattleService) logAudit(ctx context.Context, actor, action, battleID string, detail map[string]interface{}, opErr error) {
	entry := audit.Entry{
		Actor:          actor,
		Action:         action,
		SubjectType:    "battle",
		SubjectID:      battleID,
		RequestContext: audit.RequestMeta(ctx),
		Detail:         detail,
		Success:        opErr == nil,
	}
	if opErr != nil {
		entry.ErrorCode = apperrors.CodeOf(opErr)
	}
	_ = s.audit.Log(ctx, entry)
}

func (s *BattleService) emit(ctx context.Context, eventType domain.EventType, b *ent.Battle, actor, reason string) {
	payload := domain.BattlePayload{
		BattleID:     b.ID,
		Slug:         b.Slug,
		Status:       string(b.Status),
		ParticipantA: b.ParticipantA,
		ParticipantB: b.ParticipantB,
		Winner:       b.Winner,
		VotingEndsAt: b.VotingEndsAt,
		Reason:       reason,
	}
	data, err := payload.ToJSON()
	if err != nil {
		logger.Error("Failed to encode battle event payload",
			zap.String("battle_id", b.ID),
			zap.Error(err),
		)
		return
	}

	event := &domain.Event{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: "battle",
		AggregateID:   b.ID,
		Payload:       data,
		Actor:         actor,
		OccurredAt:    s.now(),
	}
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		logger.Warn("Battle event delivery incomplete",
			zap.String("event_type", string(eventType)),
			zap.String("battle_id", b.ID),
			zap.Error(err),
		)
	}
}

func battleSubject(b *ent.Battle) string {
	if b == nil {
		return ""
	}
	return b.ID
}

func generateBattleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "battle-" + uuid.New().String()
	}
	return "battle-" + id.String()
}

// battleSlug derives the human-readable slug from the battle id suffix.
func battleSlug(id string) string {
	if len(id) > 12 {
		return "arena-" + id[len(id)-12:]
	}
	return "arena-" + id
}
