// Package identity implements the identity/eligibility oracle consumed by
// the battle engine. The engine treats these as synchronous, side-effect-free
// lookups; a lookup failure means "not eligible", never a fatal error for
// the calling operation.
package identity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/submission"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/internal/pkg/logger"
)

// EngagementInputs are the counters feeding the engagement score
// (completions*2 − refusals*1).
type EngagementInputs struct {
	Completions int
	Refusals    int
}

// Oracle answers eligibility questions about actors.
type Oracle interface {
	// IsAdministrator reports whether the actor holds the admin role.
	IsAdministrator(ctx context.Context, actorID string) bool

	// IsContactVerified reports whether the actor's contact is verified —
	// the current eligibility bar for voting.
	IsContactVerified(ctx context.Context, actorID string) bool

	// CanCompete reports whether the actor is currently eligible to enter a
	// battle (account enabled and resolvable).
	CanCompete(ctx context.Context, actorID string) bool

	// CurrentEngagementInputs returns the actor's completion/refusal counters.
	CurrentEngagementInputs(ctx context.Context, actorID string) (EngagementInputs, bool)
}

// CatalogStore answers read-only ownership questions about creative works.
type CatalogStore interface {
	// SubmissionOwned reports whether the submission exists and belongs to
	// the claimed owner.
	SubmissionOwned(ctx context.Context, submissionID, ownerID string) bool
}

// EngagementScore computes the derived reliability metric.
func EngagementScore(in EngagementInputs) int {
	return in.Completions*2 - in.Refusals
}

// EntOracle is the default Oracle and CatalogStore backed by the user and
// submission tables.
type EntOracle struct {
	client *ent.Client
}

// NewEntOracle creates the ent-backed oracle.
func NewEntOracle(client *ent.Client) *EntOracle {
	return &EntOracle{client: client}
}

var (
	_ Oracle       = (*EntOracle)(nil)
	_ CatalogStore = (*EntOracle)(nil)
)

// IsAdministrator reports whether the actor holds the ADMIN role.
func (o *EntOracle) IsAdministrator(ctx context.Context, actorID string) bool {
	u, err := o.lookup(ctx, actorID)
	if err != nil {
		return false
	}
	return u.Enabled && u.Role == user.RoleADMIN
}

// IsContactVerified reports whether the actor's email is verified.
func (o *EntOracle) IsContactVerified(ctx context.Context, actorID string) bool {
	u, err := o.lookup(ctx, actorID)
	if err != nil {
		return false
	}
	return u.Enabled && u.EmailVerified
}

// CanCompete reports whether the actor may enter a battle.
func (o *EntOracle) CanCompete(ctx context.Context, actorID string) bool {
	u, err := o.lookup(ctx, actorID)
	if err != nil {
		return false
	}
	return u.Enabled
}

// CurrentEngagementInputs returns the actor's completion/refusal counters.
func (o *EntOracle) CurrentEngagementInputs(ctx context.Context, actorID string) (EngagementInputs, bool) {
	u, err := o.lookup(ctx, actorID)
	if err != nil {
		return EngagementInputs{}, false
	}
	return EngagementInputs{
		Completions: u.BattlesCompleted,
		Refusals:    u.BattlesRefused,
	}, true
}

// SubmissionOwned reports whether the submission belongs to the claimed owner.
func (o *EntOracle) SubmissionOwned(ctx context.Context, submissionID, ownerID string) bool {
	if submissionID == "" || ownerID == "" {
		return false
	}
	ok, err := o.client.Submission.Query().
		Where(
			submission.IDEQ(submissionID),
			submission.OwnerIDEQ(ownerID),
		).
		Exist(ctx)
	if err != nil {
		logger.Warn("submission ownership lookup failed",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (o *EntOracle) lookup(ctx context.Context, actorID string) (*ent.User, error) {
	if actorID == "" {
		return nil, fmt.Errorf("actor id is empty")
	}
	u, err := o.client.User.Get(ctx, actorID)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("identity lookup failed", zap.String("actor", actorID), zap.Error(err))
		}
		return nil, err
	}
	return u, nil
}
