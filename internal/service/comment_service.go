package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/comment"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/identity"
	"versus-arena.io/arena/internal/moderation"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
)

// CommentService manages battle comments and feeds every new comment through
// the moderation engine.
type CommentService struct {
	client     *ent.Client
	limiter    *ratelimit.Limiter
	oracle     identity.Oracle
	audit      *audit.Logger
	engine     *moderation.Engine
	dispatcher *domain.EventDispatcher
}

// NewCommentService creates the comment service.
func NewCommentService(
	client *ent.Client,
	limiter *ratelimit.Limiter,
	oracle identity.Oracle,
	auditLogger *audit.Logger,
	engine *moderation.Engine,
	dispatcher *domain.EventDispatcher,
) *CommentService {
	return &CommentService{
		client:     client,
		limiter:    limiter,
		oracle:     oracle,
		audit:      auditLogger,
		engine:     engine,
		dispatcher: dispatcher,
	}
}

// Create posts a comment on a battle and runs the moderation hook. A
// moderation storage failure does not roll back the comment; the comment
// stays visible and is eligible for a later re-scan.
func (s *CommentService) Create(ctx context.Context, authorID, battleID, body string) (*ent.Comment, error) {
	if err := s.limiter.CheckAndConsume(ctx, authorID, ratelimit.ProcedureCommentCreate); err != nil {
		s.logAudit(ctx, authorID, audit.ActionCommentCreate, "", battleID, err)
		return nil, err
	}

	c, err := s.create(ctx, authorID, battleID, body)
	s.logAudit(ctx, authorID, audit.ActionCommentCreate, commentSubject(c), battleID, err)
	if err != nil {
		return nil, err
	}

	if _, merr := s.engine.OnCommentCreated(ctx, c); merr != nil {
		logger.Error("Comment moderation failed, comment left unmoderated",
			zap.String("comment_id", c.ID),
			zap.Error(merr),
		)
		return c, nil
	}

	// The moderation engine may have hidden the comment; return the durable
	// state.
	fresh, err := s.client.Comment.Get(ctx, c.ID)
	if err != nil {
		return c, nil
	}
	return fresh, nil
}

func (s *CommentService) create(ctx context.Context, authorID, battleID, body string) (*ent.Comment, error) {
	if body == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "comment body is required")
	}
	exists, err := s.client.Battle.Query().
		Where(battle.IDEQ(battleID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check battle %s: %w", battleID, err)
	}
	if !exists {
		return nil, apperrors.ErrBattleNotFound()
	}

	c, err := s.client.Comment.Create().
		SetID(generateCommentID()).
		SetBattleID(battleID).
		SetAuthorID(authorID).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// Hide hides a comment. Allowed for the author and administrators.
func (s *CommentService) Hide(ctx context.Context, actorID, commentID, reason string) (*ent.Comment, error) {
	c, err := s.hide(ctx, actorID, commentID, reason)
	s.logAudit(ctx, actorID, audit.ActionCommentHide, commentID, "", err)
	if err != nil {
		return nil, err
	}

	s.emitHidden(ctx, c, actorID, reason)
	return c, nil
}

func (s *CommentService) hide(ctx context.Context, actorID, commentID, reason string) (*ent.Comment, error) {
	c, err := s.client.Comment.Get(ctx, commentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCommentNotFound, "comment not found")
		}
		return nil, fmt.Errorf("load comment %s: %w", commentID, err)
	}

	if c.AuthorID != actorID && !s.oracle.IsAdministrator(ctx, actorID) {
		return nil, apperrors.Forbidden(apperrors.CodeCommentEditForbidden, "only the author or an administrator may hide a comment")
	}
	if !c.Visible {
		return c, nil
	}

	updated, err := s.client.Comment.UpdateOne(c).
		SetVisible(false).
		SetHiddenReason(reason).
		SetHiddenBy(actorID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("hide comment %s: %w", commentID, err)
	}
	return updated, nil
}

// Edit replaces a comment's body. Allowed for the author and administrators.
func (s *CommentService) Edit(ctx context.Context, actorID, commentID, body string) (*ent.Comment, error) {
	if body == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "comment body is required")
	}

	c, err := s.client.Comment.Get(ctx, commentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCommentNotFound, "comment not found")
		}
		return nil, fmt.Errorf("load comment %s: %w", commentID, err)
	}
	if c.AuthorID != actorID && !s.oracle.IsAdministrator(ctx, actorID) {
		return nil, apperrors.Forbidden(apperrors.CodeCommentEditForbidden, "only the author or an administrator may edit a comment")
	}

	updated, err := s.client.Comment.UpdateOne(c).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("edit comment %s: %w", commentID, err)
	}
	return updated, nil
}

// List returns a battle's comments oldest first. Hidden comments are only
// included when requested (admin views).
func (s *CommentService) List(ctx context.Context, battleID string, includeHidden bool) ([]*ent.Comment, error) {
	q := s.client.Comment.Query().
		Where(comment.BattleIDEQ(battleID))
	if !includeHidden {
		q = q.Where(comment.VisibleEQ(true))
	}
	rows, err := q.
		Order(ent.Asc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments for battle %s: %w", battleID, err)
	}
	return rows, nil
}

func (s *CommentService) emitHidden(ctx context.Context, c *ent.Comment, actorID, reason string) {
	if c.Visible {
		return
	}
	payload := domain.CommentHiddenPayload{
		CommentID: c.ID,
		BattleID:  c.BattleID,
		AuthorID:  c.AuthorID,
		Reason:    reason,
		HiddenBy:  actorID,
	}
	data, err := payload.ToJSON()
	if err != nil {
		logger.Error("Failed to encode comment hidden payload", zap.Error(err))
		return
	}
	_ = s.dispatcher.Dispatch(ctx, &domain.Event{
		EventID:       uuid.NewString(),
		EventType:     domain.EventCommentHidden,
		AggregateType: "comment",
		AggregateID:   c.ID,
		Payload:       data,
		Actor:         actorID,
	})
}

func (s *CommentService) logAudit(ctx context.Context, actor, action, commentID, battleID string, opErr error) {
	entry := audit.Entry{
		Actor:          actor,
		Action:         action,
		SubjectType:    "comment",
		SubjectID:      commentID,
		RequestContext: audit.RequestMeta(ctx),
		Success:        opErr == nil,
	}
	if battleID != "" {
		entry.Detail = map[string]interface{}{"battle_id": battleID}
	}
	if opErr != nil {
		entry.ErrorCode = apperrors.CodeOf(opErr)
	}
	_ = s.audit.Log(ctx, entry)
}

func commentSubject(c *ent.Comment) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func generateCommentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "comment-" + uuid.New().String()
	}
	return "comment-" + id.String()
}
