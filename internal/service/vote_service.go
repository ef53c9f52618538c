package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/vote"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/identity"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
)

// VoteService implements the vote-recording protocol: one vote per eligible
// voter per battle, with the tally increment and the vote insert committed
// atomically under the battle row lock.
type VoteService struct {
	client  *ent.Client
	limiter *ratelimit.Limiter
	oracle  identity.Oracle
	audit   *audit.Logger
}

// NewVoteService creates the vote service.
func NewVoteService(client *ent.Client, limiter *ratelimit.Limiter, oracle identity.Oracle, auditLogger *audit.Logger) *VoteService {
	return &VoteService{client: client, limiter: limiter, oracle: oracle, audit: auditLogger}
}

// CastVote records callerID's vote for targetParticipantID on the battle.
// The (battle, voter) uniqueness constraint is the storage-level defense:
// a race between two concurrent calls from the same voter is rejected
// deterministically as already_voted, never double-counted.
func (s *VoteService) CastVote(ctx context.Context, callerID, battleID, voterID, targetParticipantID string) (*ent.Vote, error) {
	if err := s.limiter.CheckAndConsume(ctx, callerID, ratelimit.ProcedureVoteCast); err != nil {
		s.logAudit(ctx, callerID, battleID, targetParticipantID, err)
		return nil, err
	}

	v, err := s.castVote(ctx, callerID, battleID, voterID, targetParticipantID)
	s.logAudit(ctx, callerID, battleID, targetParticipantID, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VoteService) castVote(ctx context.Context, callerID, battleID, voterID, targetParticipantID string) (*ent.Vote, error) {
	verified := s.oracle.IsContactVerified(ctx, voterID)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin vote tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := tx.Battle.Query().
		Where(battle.IDEQ(battleID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Order of precondition codes: identity checks precede existence.
			if verr := EvaluateVote(nil, callerID, voterID, targetParticipantID, verified); verr != nil {
				return nil, verr
			}
			return nil, apperrors.Precondition(apperrors.CodeBattleNotOpenForVoting, "battle is not open for voting")
		}
		return nil, fmt.Errorf("lock battle %s: %w", battleID, err)
	}

	if verr := EvaluateVote(b, callerID, voterID, targetParticipantID, verified); verr != nil {
		return nil, verr
	}

	// In-transaction pre-check; the unique index backstops the race.
	exists, err := tx.Vote.Query().
		Where(
			vote.BattleIDEQ(battleID),
			vote.VoterIDEQ(voterID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing vote: %w", err)
	}
	if exists {
		return nil, apperrors.Precondition(apperrors.CodeAlreadyVoted, "a vote has already been recorded for this battle")
	}

	v, err := tx.Vote.Create().
		SetID(generateVoteID()).
		SetBattleID(battleID).
		SetVoterID(voterID).
		SetTargetParticipantID(targetParticipantID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Precondition(apperrors.CodeAlreadyVoted, "a vote has already been recorded for this battle")
		}
		return nil, fmt.Errorf("insert vote: %w", err)
	}

	tallyUpdate := tx.Battle.UpdateOne(b)
	if targetParticipantID == b.ParticipantA {
		tallyUpdate.AddVotesA(1)
	} else {
		tallyUpdate.AddVotesB(1)
	}
	if err := tallyUpdate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("increment tally on battle %s: %w", battleID, err)
	}

	if err := tx.Commit(); err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Precondition(apperrors.CodeAlreadyVoted, "a vote has already been recorded for this battle")
		}
		return nil, fmt.Errorf("commit vote tx: %w", err)
	}

	logger.Info("Vote recorded",
		zap.String("battle_id", battleID),
		zap.String("voter", voterID),
		zap.String("target", targetParticipantID),
	)
	return v, nil
}

// CountFor returns the number of recorded votes for a battle.
func (s *VoteService) CountFor(ctx context.Context, battleID string) (int, error) {
	n, err := s.client.Vote.Query().
		Where(vote.BattleIDEQ(battleID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count votes for battle %s: %w", battleID, err)
	}
	return n, nil
}

func (s *VoteService) logAudit(ctx context.Context, actor, battleID, target string, opErr error) {
	entry := audit.Entry{
		Actor:          actor,
		Action:         audit.ActionVoteCast,
		SubjectType:    "battle",
		SubjectID:      battleID,
		RequestContext: audit.RequestMeta(ctx),
		Detail: map[string]interface{}{
			"target_participant_id": target,
		},
		Success: opErr == nil,
	}
	if opErr != nil {
		entry.ErrorCode = apperrors.CodeOf(opErr)
	}
	_ = s.audit.Log(ctx, entry)
}

func generateVoteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "vote-" + uuid.New().String()
	}
	return "vote-" + id.String()
}
