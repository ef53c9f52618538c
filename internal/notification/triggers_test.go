package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotification "versus-arena.io/arena/ent/notification"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// captureSender records every Params it is asked to deliver.
type captureSender struct {
	sent []Params
}

func (c *captureSender) Send(_ context.Context, p Params) error {
	c.sent = append(c.sent, p)
	return nil
}

func (c *captureSender) SendToMany(ctx context.Context, recipients []string, p Params) error {
	for _, r := range recipients {
		cp := p
		cp.RecipientID = r
		c.sent = append(c.sent, cp)
	}
	return nil
}

func battleEvent(t *testing.T, eventType domain.EventType, p domain.BattlePayload) *domain.Event {
	t.Helper()
	raw, err := p.ToJSON()
	require.NoError(t, err)
	return &domain.Event{
		EventID:       "event-1",
		EventType:     eventType,
		AggregateType: "battle",
		AggregateID:   p.BattleID,
		Payload:       raw,
		Actor:         "test",
		OccurredAt:    time.Now(),
	}
}

func dispatchTo(t *testing.T, eventType domain.EventType, p domain.BattlePayload) []Params {
	t.Helper()
	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender).RegisterHandlers(dispatcher)

	require.NoError(t, dispatcher.Dispatch(context.Background(), battleEvent(t, eventType, p)))
	return sender.sent
}

func TestTriggers_ProposedNotifiesOpponent(t *testing.T) {
	t.Parallel()

	sent := dispatchTo(t, domain.EventBattleProposed, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
	})

	require.Len(t, sent, 1)
	assert.Equal(t, "user-b", sent[0].RecipientID)
	assert.Equal(t, TypeBattleInvited, sent[0].Type)
	assert.Equal(t, "battle-1", sent[0].ResourceID)
	assert.Contains(t, sent[0].Message, "user-a")
}

func TestTriggers_ResponseNotifiesProposer(t *testing.T) {
	t.Parallel()

	sent := dispatchTo(t, domain.EventBattleAccepted, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
	})
	require.Len(t, sent, 1)
	assert.Equal(t, "user-a", sent[0].RecipientID)
	assert.Equal(t, TypeBattleAccepted, sent[0].Type)

	sent = dispatchTo(t, domain.EventBattleRejected, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
		Reason:       "not this month",
	})
	require.Len(t, sent, 1)
	assert.Equal(t, "user-a", sent[0].RecipientID)
	assert.Equal(t, TypeBattleRejected, sent[0].Type)
	assert.Contains(t, sent[0].Message, "not this month")
}

func TestTriggers_StartAndCompletionNotifyBothParticipants(t *testing.T) {
	t.Parallel()

	end := time.Now().Add(72 * time.Hour)
	sent := dispatchTo(t, domain.EventBattleStarted, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
		VotingEndsAt: &end,
	})
	require.Len(t, sent, 2)
	assert.Equal(t, "user-a", sent[0].RecipientID)
	assert.Equal(t, "user-b", sent[1].RecipientID)
	assert.Equal(t, TypeBattleStarted, sent[0].Type)

	winner := "user-b"
	sent = dispatchTo(t, domain.EventBattleCompleted, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
		Winner:       &winner,
	})
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Message, "user-b")

	// A tie is announced as such.
	sent = dispatchTo(t, domain.EventBattleCompleted, domain.BattlePayload{
		BattleID:     "battle-1",
		Slug:         "arena-one",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
	})
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Message, "tie")
}

func TestTriggers_CommentHiddenNotifiesAuthor(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender).RegisterHandlers(dispatcher)

	payload := domain.CommentHiddenPayload{
		CommentID: "comment-1",
		BattleID:  "battle-1",
		AuthorID:  "user-author",
		Reason:    "toxic",
		HiddenBy:  "moderation-engine",
	}
	raw, err := payload.ToJSON()
	require.NoError(t, err)

	err = dispatcher.Dispatch(context.Background(), &domain.Event{
		EventID:       "event-1",
		EventType:     domain.EventCommentHidden,
		AggregateType: "comment",
		AggregateID:   "comment-1",
		Payload:       raw,
		Actor:         "moderation-engine",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "user-author", sender.sent[0].RecipientID)
	assert.Equal(t, TypeCommentHidden, sender.sent[0].Type)
	assert.Equal(t, "comment-1", sender.sent[0].ResourceID)
}

func TestTriggers_MalformedPayloadFailsHandler(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender).RegisterHandlers(dispatcher)

	err := dispatcher.Dispatch(context.Background(), &domain.Event{
		EventID:   "event-1",
		EventType: domain.EventBattleProposed,
		Payload:   []byte("{not json"),
	})
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestInboxSender_WritesNotificationRow(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_sender")
	sender := NewInboxSender(client)
	ctx := context.Background()

	err := sender.Send(ctx, Params{
		RecipientID:  "user-b",
		Type:         TypeBattleInvited,
		Title:        "You have been challenged to a battle",
		Message:      "user-a proposed battle arena-one.",
		ResourceType: "battle",
		ResourceID:   "battle-1",
	})
	require.NoError(t, err)

	row, err := client.Notification.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-b", row.RecipientID)
	assert.Equal(t, entnotification.TypeBATTLE_INVITED, row.Type)
	assert.Equal(t, "battle-1", row.ResourceID)
	assert.False(t, row.Read)
}

func TestInboxSender_Validation(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_validation")
	sender := NewInboxSender(client)
	ctx := context.Background()

	require.Error(t, sender.Send(ctx, Params{Type: TypeBattleInvited, Title: "t", Message: "m"}))
	require.Error(t, sender.Send(ctx, Params{RecipientID: "user-b", Type: "SMOKE_SIGNAL", Title: "t", Message: "m"}))

	n, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
