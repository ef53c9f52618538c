// Package service provides the business logic of the battle lifecycle
// engine.
//
// Transition preconditions live here as pure functions over a battle
// snapshot so they are unit-testable without a database; BattleService wraps
// them in row-locked transactions. Services never manage HTTP concerns.
package service

import (
	"time"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/battle"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
)

const (
	// FallbackVotingDurationDays applies when neither the battle nor the
	// settings store defines a duration.
	FallbackVotingDurationDays = 5

	// Extension bounds.
	MinExtensionDays = 1
	MaxExtensionDays = 30
	MaxExtensions    = 5

	// MaxTotalDurationDays caps voting_ends_at relative to starts_at across
	// all extensions.
	MaxTotalDurationDays = 60

	// ResponseWindow is how long the invited participant has to respond.
	ResponseWindow = 7 * 24 * time.Hour
)

// Duration sources recorded when a voting window is computed.
const (
	DurationSourceBattleOverride = "battle_override"
	DurationSourceGlobalDefault  = "global_default"
	DurationSourceFallback       = "fallback"
)

// ResolveVotingDurationDays resolves the effective voting duration with
// priority: battle-specific override, configured global default, hard-coded
// fallback.
func ResolveVotingDurationDays(custom *int, configuredDefault int) (int, string) {
	if custom != nil && *custom > 0 {
		return *custom, DurationSourceBattleOverride
	}
	if configuredDefault > 0 {
		return configuredDefault, DurationSourceGlobalDefault
	}
	return FallbackVotingDurationDays, DurationSourceFallback
}

// EvaluateRespond checks whether responderID may record a response on the
// battle right now. Returns nil when the response may proceed.
func EvaluateRespond(b *ent.Battle, responderID string, accept bool, reason string) *apperrors.AppError {
	if b.ParticipantB != responderID {
		return apperrors.Forbidden(apperrors.CodeNotInvitedParticipant, "only the invited participant may respond")
	}
	if b.Status != battle.StatusPENDING_ACCEPTANCE {
		return apperrors.Precondition(apperrors.CodeBattleNotWaitingForResponse, "battle is not waiting for a response")
	}
	if b.AcceptedAt != nil || b.RejectedAt != nil {
		return apperrors.Precondition(apperrors.CodeResponseAlreadyRecorded, "a response has already been recorded")
	}
	if !accept && reason == "" {
		return apperrors.BadRequest(apperrors.CodeRejectionReasonRequired, "a rejection requires a reason")
	}
	return nil
}

// EvaluateExtension checks every AdminExtendDuration precondition, each with
// its own failure code.
func EvaluateExtension(b *ent.Battle, days int, now time.Time) *apperrors.AppError {
	if days < MinExtensionDays || days > MaxExtensionDays {
		return apperrors.BadRequest(apperrors.CodeInvalidExtensionDays, "extension must be between 1 and 30 days")
	}
	if b.Status != battle.StatusACTIVE {
		return apperrors.Precondition(apperrors.CodeBattleNotOpenForExtension, "battle is not open for extension")
	}
	if b.VotingEndsAt == nil {
		return apperrors.Precondition(apperrors.CodeBattleHasNoVotingEnd, "battle has no voting end to extend")
	}
	if b.VotingEndsAt.Before(now) {
		return apperrors.Precondition(apperrors.CodeBattleAlreadyExpired, "voting has already ended")
	}
	if b.ExtensionCount >= MaxExtensions {
		return apperrors.Precondition(apperrors.CodeMaximumExtensionsReached, "maximum number of extensions reached")
	}
	if b.StartsAt != nil {
		newEnd := b.VotingEndsAt.AddDate(0, 0, days)
		if newEnd.After(b.StartsAt.AddDate(0, 0, MaxTotalDurationDays)) {
			return apperrors.Precondition(apperrors.CodeBattleExtensionLimitExceed, "extension would exceed the maximum total duration")
		}
	}
	return nil
}

// EvaluateFinalize checks whether the battle can be finalized. noop reports
// the already-completed short-circuit.
func EvaluateFinalize(b *ent.Battle) (noop bool, err *apperrors.AppError) {
	switch b.Status {
	case battle.StatusCOMPLETED:
		return true, nil
	case battle.StatusCANCELLED:
		return false, apperrors.Precondition(apperrors.CodeBattleCancelled, "battle was cancelled")
	case battle.StatusACTIVE:
		return false, nil
	default:
		return false, apperrors.Precondition(apperrors.CodeBattleNotOpenForFinalize, "battle is not open for finalization")
	}
}

// ComputeWinner returns the participant with strictly more votes, or nil on
// a tie.
func ComputeWinner(b *ent.Battle) *string {
	switch {
	case b.VotesA > b.VotesB:
		a := b.ParticipantA
		return &a
	case b.VotesB > b.VotesA:
		w := b.ParticipantB
		return &w
	default:
		return nil
	}
}

// EvaluateVote checks every CastVote precondition except the duplicate-vote
// check, which needs storage state. The precondition order is part of the
// contract: earlier checks shadow later ones.
func EvaluateVote(b *ent.Battle, callerID, voterID, targetID string, contactVerified bool) *apperrors.AppError {
	if callerID != voterID {
		return apperrors.Forbidden(apperrors.CodeVoteUserMismatch, "votes can only be cast for yourself")
	}
	if !contactVerified {
		return apperrors.Forbidden(apperrors.CodeVoteUnverifiedEmail, "voting requires a verified email")
	}
	if b == nil || b.Status != battle.StatusACTIVE {
		return apperrors.Precondition(apperrors.CodeBattleNotOpenForVoting, "battle is not open for voting")
	}
	if b.ParticipantA == "" || b.ParticipantB == "" {
		return apperrors.Precondition(apperrors.CodeBattleNotReadyForVote, "battle does not have two participants yet")
	}
	if targetID != b.ParticipantA && targetID != b.ParticipantB {
		return apperrors.BadRequest(apperrors.CodeInvalidVoteTarget, "vote target is not a participant of this battle")
	}
	if voterID == b.ParticipantA || voterID == b.ParticipantB {
		return apperrors.Forbidden(apperrors.CodeParticipantsCannotVote, "participants cannot vote in their own battle")
	}
	// Redundant with the participant check today; defends against future
	// participant-set changes.
	if targetID == voterID {
		return apperrors.Forbidden(apperrors.CodeSelfVoteNotAllowed, "voting for yourself is not allowed")
	}
	return nil
}
