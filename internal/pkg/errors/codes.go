package errors

import "net/http"

// Error code constants. Codes are the stable client-facing contract: every
// privileged operation returns one of these identifiers instead of raw
// internal error text, and the audit log records the code alongside the
// attempt.

// Battle lifecycle error codes.
const (
	CodeBattleNotFound              = "battle_not_found"
	CodeInvalidProposal             = "invalid_proposal"
	CodeBattleNotWaitingForResponse = "battle_not_waiting_for_response"
	CodeResponseAlreadyRecorded     = "response_already_recorded"
	CodeRejectionReasonRequired     = "rejection_reason_required"
	CodeBattleNotAwaitingAdmin      = "battle_not_awaiting_admin"
	CodeBattleCancelled             = "battle_cancelled"
	CodeBattleNotOpenForFinalize    = "battle_not_open_for_finalization"
	CodeBattleAlreadyCompleted      = "battle_already_completed"
	CodeNotInvitedParticipant       = "not_invited_participant"
)

// Duration extension error codes, one per precondition.
const (
	CodeBattleNotOpenForExtension  = "battle_not_open_for_extension"
	CodeBattleHasNoVotingEnd       = "battle_has_no_voting_end"
	CodeBattleAlreadyExpired       = "battle_already_expired"
	CodeMaximumExtensionsReached   = "maximum_extensions_reached"
	CodeBattleExtensionLimitExceed = "battle_extension_limit_exceeded"
	CodeInvalidExtensionDays       = "invalid_extension_days"
)

// Voting error codes.
const (
	CodeVoteUserMismatch       = "vote_user_mismatch"
	CodeVoteUnverifiedEmail    = "vote_not_allowed_unverified_email"
	CodeBattleNotOpenForVoting = "battle_not_open_for_voting"
	CodeBattleNotReadyForVote  = "battle_not_ready_for_voting"
	CodeInvalidVoteTarget      = "invalid_vote_target"
	CodeParticipantsCannotVote = "participants_cannot_vote"
	CodeSelfVoteNotAllowed     = "self_vote_not_allowed"
	CodeAlreadyVoted           = "already_voted"
)

// Comment / moderation error codes.
const (
	CodeCommentNotFound          = "comment_not_found"
	CodeCommentEditForbidden     = "comment_edit_forbidden"
	CodeModerationActionNotFound = "moderation_action_not_found"
)

// Authorization error codes — never retryable with the same actor.
const (
	CodeAuthRequired  = "auth_required"
	CodeAdminRequired = "admin_required"
	CodeAuthFailed    = "auth_failed"
)

// Resource governance error codes — retryable after backoff.
const (
	CodeRateLimitExceeded = "rate_limit_exceeded"
)

// Generic codes.
const (
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeInternalError    = "internal_error"
)

// Convenience constructors for the most common domain failures.

// ErrBattleNotFound creates a battle not found error.
func ErrBattleNotFound() *AppError {
	return New(CodeBattleNotFound, "battle not found", http.StatusNotFound)
}

// ErrAdminRequired creates an administrator-only error.
func ErrAdminRequired() *AppError {
	return New(CodeAdminRequired, "administrator privileges required", http.StatusForbidden)
}

// ErrAuthRequired creates a missing-authentication error.
func ErrAuthRequired() *AppError {
	return New(CodeAuthRequired, "authentication required", http.StatusUnauthorized)
}

// ErrRateLimited creates a rate limit exceeded error (429).
func ErrRateLimited(procedure string) *AppError {
	return New(CodeRateLimitExceeded, "rate limit exceeded for "+procedure, http.StatusTooManyRequests)
}

// Precondition creates a 409 error for a state-machine precondition failure.
// Precondition failures are safe to retry after correcting state.
func Precondition(code, message string) *AppError {
	return New(code, message, http.StatusConflict)
}
