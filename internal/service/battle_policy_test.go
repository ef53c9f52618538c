package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/battle"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
)

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int              { return &v }

func pendingBattle() *ent.Battle {
	return &ent.Battle{
		ID:           "battle-1",
		ParticipantA: "user-a",
		ParticipantB: "user-b",
		Status:       battle.StatusPENDING_ACCEPTANCE,
	}
}

func TestResolveVotingDurationDays(t *testing.T) {
	t.Parallel()

	days, source := ResolveVotingDurationDays(intPtr(10), 7)
	assert.Equal(t, 10, days)
	assert.Equal(t, DurationSourceBattleOverride, source)

	days, source = ResolveVotingDurationDays(nil, 7)
	assert.Equal(t, 7, days)
	assert.Equal(t, DurationSourceGlobalDefault, source)

	days, source = ResolveVotingDurationDays(nil, 0)
	assert.Equal(t, FallbackVotingDurationDays, days)
	assert.Equal(t, DurationSourceFallback, source)

	// A zero override falls through to the default.
	days, _ = ResolveVotingDurationDays(intPtr(0), 7)
	assert.Equal(t, 7, days)
}

func TestEvaluateRespond(t *testing.T) {
	t.Parallel()

	t.Run("accept from invited participant", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, EvaluateRespond(pendingBattle(), "user-b", true, ""))
	})

	t.Run("wrong responder", func(t *testing.T) {
		t.Parallel()
		err := EvaluateRespond(pendingBattle(), "user-c", true, "")
		require.NotNil(t, err)
		assert.Equal(t, apperrors.CodeNotInvitedParticipant, err.Code)
	})

	t.Run("proposer cannot respond", func(t *testing.T) {
		t.Parallel()
		err := EvaluateRespond(pendingBattle(), "user-a", true, "")
		require.NotNil(t, err)
		assert.Equal(t, apperrors.CodeNotInvitedParticipant, err.Code)
	})

	t.Run("wrong status", func(t *testing.T) {
		t.Parallel()
		b := pendingBattle()
		b.Status = battle.StatusACTIVE
		err := EvaluateRespond(b, "user-b", true, "")
		require.NotNil(t, err)
		assert.Equal(t, apperrors.CodeBattleNotWaitingForResponse, err.Code)
	})

	t.Run("response already recorded", func(t *testing.T) {
		t.Parallel()
		b := pendingBattle()
		b.AcceptedAt = timePtr(time.Now())
		err := EvaluateRespond(b, "user-b", true, "")
		require.NotNil(t, err)
		assert.Equal(t, apperrors.CodeResponseAlreadyRecorded, err.Code)
	})

	t.Run("rejection requires reason", func(t *testing.T) {
		t.Parallel()
		err := EvaluateRespond(pendingBattle(), "user-b", false, "")
		require.NotNil(t, err)
		assert.Equal(t, apperrors.CodeRejectionReasonRequired, err.Code)

		assert.Nil(t, EvaluateRespond(pendingBattle(), "user-b", false, "scheduling conflict"))
	})
}

func TestEvaluateExtension(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	active := func() *ent.Battle {
		return &ent.Battle{
			ID:           "battle-1",
			Status:       battle.StatusACTIVE,
			StartsAt:     timePtr(now.AddDate(0, 0, -3)),
			VotingEndsAt: timePtr(now.AddDate(0, 0, 2)),
		}
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, EvaluateExtension(active(), 2, now))
	})

	cases := []struct {
		name     string
		mutate   func(*ent.Battle)
		days     int
		wantCode string
	}{
		{"days too low", func(b *ent.Battle) {}, 0, apperrors.CodeInvalidExtensionDays},
		{"days too high", func(b *ent.Battle) {}, 31, apperrors.CodeInvalidExtensionDays},
		{"not active", func(b *ent.Battle) { b.Status = battle.StatusAWAITING_ADMIN }, 2, apperrors.CodeBattleNotOpenForExtension},
		{"no voting end", func(b *ent.Battle) { b.VotingEndsAt = nil }, 2, apperrors.CodeBattleHasNoVotingEnd},
		{"already expired", func(b *ent.Battle) { b.VotingEndsAt = timePtr(now.Add(-time.Hour)) }, 2, apperrors.CodeBattleAlreadyExpired},
		{"extension cap", func(b *ent.Battle) { b.ExtensionCount = MaxExtensions }, 2, apperrors.CodeMaximumExtensionsReached},
		{"total duration cap", func(b *ent.Battle) {
			b.StartsAt = timePtr(now.AddDate(0, 0, -40))
		}, 30, apperrors.CodeBattleExtensionLimitExceed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := active()
			tc.mutate(b)
			err := EvaluateExtension(b, tc.days, now)
			require.NotNil(t, err)
			assert.Equal(t, tc.wantCode, err.Code)
		})
	}
}

func TestEvaluateFinalize(t *testing.T) {
	t.Parallel()

	noop, err := EvaluateFinalize(&ent.Battle{Status: battle.StatusCOMPLETED})
	assert.True(t, noop)
	assert.Nil(t, err)

	noop, err = EvaluateFinalize(&ent.Battle{Status: battle.StatusACTIVE})
	assert.False(t, noop)
	assert.Nil(t, err)

	_, err = EvaluateFinalize(&ent.Battle{Status: battle.StatusCANCELLED})
	require.NotNil(t, err)
	assert.Equal(t, apperrors.CodeBattleCancelled, err.Code)

	_, err = EvaluateFinalize(&ent.Battle{Status: battle.StatusPENDING_ACCEPTANCE})
	require.NotNil(t, err)
	assert.Equal(t, apperrors.CodeBattleNotOpenForFinalize, err.Code)
}

func TestComputeWinner(t *testing.T) {
	t.Parallel()

	b := &ent.Battle{ParticipantA: "user-a", ParticipantB: "user-b", VotesA: 3, VotesB: 1}
	w := ComputeWinner(b)
	require.NotNil(t, w)
	assert.Equal(t, "user-a", *w)

	b.VotesA, b.VotesB = 1, 4
	w = ComputeWinner(b)
	require.NotNil(t, w)
	assert.Equal(t, "user-b", *w)

	// A tie, including a zero-zero tie, has no winner.
	b.VotesA, b.VotesB = 2, 2
	assert.Nil(t, ComputeWinner(b))
	b.VotesA, b.VotesB = 0, 0
	assert.Nil(t, ComputeWinner(b))
}

func TestEvaluateVote(t *testing.T) {
	t.Parallel()

	activeBattle := func() *ent.Battle {
		return &ent.Battle{
			ID:           "battle-1",
			ParticipantA: "user-a",
			ParticipantB: "user-b",
			Status:       battle.StatusACTIVE,
		}
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, EvaluateVote(activeBattle(), "voter-1", "voter-1", "user-a", true))
	})

	cases := []struct {
		name     string
		battle   func() *ent.Battle
		caller   string
		voter    string
		target   string
		verified bool
		wantCode string
	}{
		{"proxy vote", activeBattle, "voter-1", "voter-2", "user-a", true, apperrors.CodeVoteUserMismatch},
		{"unverified email", activeBattle, "voter-1", "voter-1", "user-a", false, apperrors.CodeVoteUnverifiedEmail},
		{"missing battle", func() *ent.Battle { return nil }, "voter-1", "voter-1", "user-a", true, apperrors.CodeBattleNotOpenForVoting},
		{"not active", func() *ent.Battle {
			b := activeBattle()
			b.Status = battle.StatusAWAITING_ADMIN
			return b
		}, "voter-1", "voter-1", "user-a", true, apperrors.CodeBattleNotOpenForVoting},
		{"missing participant", func() *ent.Battle {
			b := activeBattle()
			b.ParticipantB = ""
			return b
		}, "voter-1", "voter-1", "user-a", true, apperrors.CodeBattleNotReadyForVote},
		{"target not a participant", activeBattle, "voter-1", "voter-1", "user-c", true, apperrors.CodeInvalidVoteTarget},
		{"participant voting", activeBattle, "user-a", "user-a", "user-b", true, apperrors.CodeParticipantsCannotVote},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := EvaluateVote(tc.battle(), tc.caller, tc.voter, tc.target, tc.verified)
			require.NotNil(t, err)
			assert.Equal(t, tc.wantCode, err.Code)
		})
	}
}
