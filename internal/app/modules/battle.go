package modules

import (
	"context"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/internal/api/handlers"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/jobs"
	"versus-arena.io/arena/internal/moderation"
	"versus-arena.io/arena/internal/notification"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/service"
)

// BattleModule wires the battle lifecycle: services, domain events,
// notification triggers, and the moderation engine.
type BattleModule struct {
	infra      *Infrastructure
	dispatcher *domain.EventDispatcher
	engine     *moderation.Engine
	battles    *service.BattleService
	votes      *service.VoteService
	comments   *service.CommentService
}

// NewBattleModule creates the battle module. The governance module supplies
// the shared rate limiter.
func NewBattleModule(infra *Infrastructure, governance *GovernanceModule) *BattleModule {
	dispatcher := domain.NewEventDispatcher()

	// In-app inbox subscribes to every lifecycle event.
	notifier := notification.NewTriggers(notification.NewInboxSender(infra.EntClient))
	notifier.RegisterHandlers(dispatcher)

	engine := moderation.NewEngine(infra.EntClient, infra.AuditLogger, infra.Alerts)
	engine.SetHiddenHook(func(ctx context.Context, c *ent.Comment, reason string) {
		payload := domain.CommentHiddenPayload{
			CommentID: c.ID,
			BattleID:  c.BattleID,
			AuthorID:  c.AuthorID,
			Reason:    reason,
			HiddenBy:  moderation.EngineActor,
		}
		data, err := payload.ToJSON()
		if err != nil {
			logger.Error("Failed to encode comment hidden payload", zap.Error(err))
			return
		}
		_ = dispatcher.Dispatch(ctx, &domain.Event{
			EventID:       uuid.NewString(),
			EventType:     domain.EventCommentHidden,
			AggregateType: "comment",
			AggregateID:   c.ID,
			Payload:       data,
			Actor:         moderation.EngineActor,
		})
	})

	limiter := governance.Limiter()
	battles := service.NewBattleService(
		infra.EntClient,
		limiter,
		infra.Oracle,
		infra.Oracle,
		infra.AuditLogger,
		infra.Alerts,
		infra.Settings,
		dispatcher,
	)
	votes := service.NewVoteService(infra.EntClient, limiter, infra.Oracle, infra.AuditLogger)
	comments := service.NewCommentService(infra.EntClient, limiter, infra.Oracle, infra.AuditLogger, engine, dispatcher)

	return &BattleModule{
		infra:      infra,
		dispatcher: dispatcher,
		engine:     engine,
		battles:    battles,
		votes:      votes,
		comments:   comments,
	}
}

func (m *BattleModule) Name() string { return "battle" }

// Battles exposes the battle service for the sweep worker.
func (m *BattleModule) Battles() *service.BattleService { return m.battles }

func (m *BattleModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Battles = m.battles
	deps.Votes = m.votes
	deps.Comments = m.comments
	deps.Moderation = m.engine
}

func (m *BattleModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewBattleSweepWorker(m.battles))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.infra.EntClient, 0))
}

func (m *BattleModule) Shutdown(context.Context) error { return nil }
