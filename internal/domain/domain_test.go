package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestBattlePayload_ToJSON(t *testing.T) {
	winner := "user-a"
	ends := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload := BattlePayload{
		BattleID:     "battle-1",
		Slug:         "alpha-vs-beta",
		Status:       "COMPLETED",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
		Winner:       &winner,
		VotingEndsAt: &ends,
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded BattlePayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload.BattleID, decoded.BattleID)
	require.Equal(t, payload.Status, decoded.Status)
	require.NotNil(t, decoded.Winner)
	require.Equal(t, winner, *decoded.Winner)
	require.Equal(t, ends, decoded.VotingEndsAt.UTC())
}

func TestBattlePayload_TieHasNoWinner(t *testing.T) {
	data, err := BattlePayload{BattleID: "battle-2", Status: "COMPLETED"}.ToJSON()
	require.NoError(t, err)

	var decoded BattlePayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Nil(t, decoded.Winner)
}

func TestDispatcherBestEffortDelivery(t *testing.T) {
	d := NewEventDispatcher()

	var calls []string
	d.Register(EventBattleStarted, func(ctx context.Context, e *Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Register(EventBattleStarted, func(ctx context.Context, e *Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{
		EventID:   "evt-1",
		EventType: EventBattleStarted,
	})
	require.Error(t, err)
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcherNoHandlersIsNoop(t *testing.T) {
	d := NewEventDispatcher()
	require.NoError(t, d.Dispatch(context.Background(), &Event{
		EventID:   "evt-2",
		EventType: EventCommentHidden,
	}))
}
