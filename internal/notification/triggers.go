package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/pkg/logger"
)

// Triggers subscribes inbox writes to battle lifecycle events. One trigger
// point per "battle reached state X" transition plus the moderation
// visibility event.
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// RegisterHandlers wires the triggers into the event dispatcher.
func (t *Triggers) RegisterHandlers(d *domain.EventDispatcher) {
	d.Register(domain.EventBattleProposed, t.onBattleProposed)
	d.Register(domain.EventBattleAccepted, t.onBattleAccepted)
	d.Register(domain.EventBattleRejected, t.onBattleRejected)
	d.Register(domain.EventBattleStarted, t.onBattleStarted)
	d.Register(domain.EventBattleCompleted, t.onBattleCompleted)
	d.Register(domain.EventBattleCancelled, t.onBattleCancelled)
	d.Register(domain.EventCommentHidden, t.onCommentHidden)
}

func (t *Triggers) onBattleProposed(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	return t.sender.Send(ctx, Params{
		RecipientID:  p.ParticipantB,
		Type:         TypeBattleInvited,
		Title:        "You have been challenged to a battle",
		Message:      fmt.Sprintf("%s proposed battle %s. Respond before the deadline.", p.ParticipantA, p.Slug),
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onBattleAccepted(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	return t.sender.Send(ctx, Params{
		RecipientID:  p.ParticipantA,
		Type:         TypeBattleAccepted,
		Title:        "Your battle challenge was accepted",
		Message:      fmt.Sprintf("%s accepted battle %s. It is now awaiting validation.", p.ParticipantB, p.Slug),
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onBattleRejected(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("%s declined battle %s", p.ParticipantB, p.Slug)
	if p.Reason != "" {
		msg += ": " + p.Reason
	}
	return t.sender.Send(ctx, Params{
		RecipientID:  p.ParticipantA,
		Type:         TypeBattleRejected,
		Title:        "Your battle challenge was declined",
		Message:      msg,
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onBattleStarted(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Battle %s is live, voting is open.", p.Slug)
	if p.VotingEndsAt != nil {
		msg = fmt.Sprintf("Battle %s is live, voting closes %s.", p.Slug, p.VotingEndsAt.Format("2006-01-02 15:04 MST"))
	}
	return t.sender.SendToMany(ctx, participants(p), Params{
		Type:         TypeBattleStarted,
		Title:        "Your battle is live",
		Message:      msg,
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onBattleCompleted(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Battle %s ended in a tie.", p.Slug)
	if p.Winner != nil {
		msg = fmt.Sprintf("Battle %s is over, winner: %s.", p.Slug, *p.Winner)
	}
	return t.sender.SendToMany(ctx, participants(p), Params{
		Type:         TypeBattleCompleted,
		Title:        "Your battle has ended",
		Message:      msg,
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onBattleCancelled(ctx context.Context, e *domain.Event) error {
	p, err := decodeBattlePayload(e)
	if err != nil {
		return err
	}
	return t.sender.SendToMany(ctx, participants(p), Params{
		Type:         TypeBattleCancelled,
		Title:        "Your battle was cancelled",
		Message:      fmt.Sprintf("Battle %s was cancelled by an administrator.", p.Slug),
		ResourceType: "battle",
		ResourceID:   p.BattleID,
	})
}

func (t *Triggers) onCommentHidden(ctx context.Context, e *domain.Event) error {
	var p domain.CommentHiddenPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return fmt.Errorf("decode comment hidden payload for event %s: %w", e.EventID, err)
	}
	return t.sender.Send(ctx, Params{
		RecipientID:  p.AuthorID,
		Type:         TypeCommentHidden,
		Title:        "Your comment was hidden",
		Message:      fmt.Sprintf("A comment you posted was hidden (%s).", p.Reason),
		ResourceType: "comment",
		ResourceID:   p.CommentID,
	})
}

func decodeBattlePayload(e *domain.Event) (domain.BattlePayload, error) {
	var p domain.BattlePayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return p, fmt.Errorf("decode battle payload for event %s: %w", e.EventID, err)
	}
	if p.ParticipantA == "" && p.ParticipantB == "" {
		logger.Warn("battle event without participants",
			zap.String("event_id", e.EventID),
			zap.String("battle_id", p.BattleID),
		)
	}
	return p, nil
}

func participants(p domain.BattlePayload) []string {
	var ids []string
	if p.ParticipantA != "" {
		ids = append(ids, p.ParticipantA)
	}
	if p.ParticipantB != "" {
		ids = append(ids, p.ParticipantB)
	}
	return ids
}
