package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent/user"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
)

func TestCastVote_TallyAndUniqueness(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "vote_tally")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-vote-1", time.Now().Add(24*time.Hour))

	v, err := h.votes.CastVote(ctx, "voter-1", b.ID, "voter-1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, b.ID, v.BattleID)
	assert.Equal(t, "voter-1", v.VoterID)
	assert.Equal(t, "user-a", v.TargetParticipantID)

	got, err := h.battles.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VotesA)
	assert.Zero(t, got.VotesB)

	// The same voter cannot vote twice, even for the other participant.
	_, err = h.votes.CastVote(ctx, "voter-1", b.ID, "voter-1", "user-b")
	assert.Equal(t, apperrors.CodeAlreadyVoted, appCode(t, err))

	n, err := h.votes.CountFor(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = h.battles.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VotesA)
	assert.Zero(t, got.VotesB)
}

func TestCastVote_ConcurrentSameVoter(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "vote_concurrent")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-vote-race", time.Now().Add(24*time.Hour))

	// N simultaneous casts from one voter. The battle row lock serializes
	// them and the unique (battle_id, voter_id) index backstops whatever
	// slips past the in-transaction pre-check: exactly one may land.
	const attempts = 8
	errs := make([]error, attempts)
	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < attempts; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			_, errs[i] = h.votes.CastVote(ctx, "voter-1", b.ID, "voter-1", "user-a")
		}(i)
	}
	start.Done()
	done.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperrors.CodeAlreadyVoted, apperrors.CodeOf(err))
	}
	assert.Equal(t, 1, succeeded)

	n, err := h.votes.CountFor(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := h.battles.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VotesA)
	assert.Zero(t, got.VotesB)
}

func TestCastVote_Preconditions(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "vote_preconditions")
	h.seedCast(t)
	h.seedUser(t, "voter-unverified", user.RoleUSER, false)
	ctx := context.Background()

	active := h.seedActiveBattle(t, "battle-vote-pre", time.Now().Add(24*time.Hour))

	pending, err := h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "", nil)
	require.NoError(t, err)

	cases := []struct {
		name     string
		caller   string
		battleID string
		voter    string
		target   string
		code     string
	}{
		{"caller mismatch", "voter-1", active.ID, "voter-2", "user-a", apperrors.CodeVoteUserMismatch},
		{"unverified email", "voter-unverified", active.ID, "voter-unverified", "user-a", apperrors.CodeVoteUnverifiedEmail},
		{"battle not active", "voter-1", pending.ID, "voter-1", "user-a", apperrors.CodeBattleNotOpenForVoting},
		{"battle missing", "voter-1", "battle-missing", "voter-1", "user-a", apperrors.CodeBattleNotOpenForVoting},
		{"target not a participant", "voter-1", active.ID, "voter-1", "voter-2", apperrors.CodeInvalidVoteTarget},
		{"participant votes own battle", "user-a", active.ID, "user-a", "user-b", apperrors.CodeParticipantsCannotVote},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.votes.CastVote(ctx, tc.caller, tc.battleID, tc.voter, tc.target)
			assert.Equal(t, tc.code, appCode(t, err))
		})
	}

	// Identity checks shadow existence: an unverified voter probing a missing
	// battle learns nothing about it.
	_, err = h.votes.CastVote(ctx, "voter-unverified", "battle-missing", "voter-unverified", "user-a")
	assert.Equal(t, apperrors.CodeVoteUnverifiedEmail, appCode(t, err))

	n, err := h.votes.CountFor(ctx, active.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
