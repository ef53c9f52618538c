// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/comment"
	"versus-arena.io/arena/ent/enginesetting"
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/notification"
	"versus-arena.io/arena/ent/ratelimitcounter"
	"versus-arena.io/arena/ent/ratelimitviolation"
	"versus-arena.io/arena/ent/schema"
	"versus-arena.io/arena/ent/submission"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/ent/vote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryMixin := schema.AuditEntry{}.Mixin()
	auditentryMixinFields0 := auditentryMixin[0].Fields()
	_ = auditentryMixinFields0
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryMixinFields0[0].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescActor is the schema descriptor for actor field.
	auditentryDescActor := auditentryFields[1].Descriptor()
	// auditentry.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditentry.ActorValidator = auditentryDescActor.Validators[0].(func(string) error)
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[2].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = auditentryDescAction.Validators[0].(func(string) error)
	// auditentryDescSubjectType is the schema descriptor for subject_type field.
	auditentryDescSubjectType := auditentryFields[3].Descriptor()
	// auditentry.SubjectTypeValidator is a validator for the "subject_type" field. It is called by the builders before save.
	auditentry.SubjectTypeValidator = auditentryDescSubjectType.Validators[0].(func(string) error)
	// auditentryDescSuccess is the schema descriptor for success field.
	auditentryDescSuccess := auditentryFields[7].Descriptor()
	// auditentry.DefaultSuccess holds the default value on creation for the success field.
	auditentry.DefaultSuccess = auditentryDescSuccess.Default.(bool)
	battleMixin := schema.Battle{}.Mixin()
	battleHooks := schema.Battle{}.Hooks()
	battle.Hooks[0] = battleHooks[0]
	battleMixinFields0 := battleMixin[0].Fields()
	_ = battleMixinFields0
	battleFields := schema.Battle{}.Fields()
	_ = battleFields
	// battleDescCreatedAt is the schema descriptor for created_at field.
	battleDescCreatedAt := battleMixinFields0[0].Descriptor()
	// battle.DefaultCreatedAt holds the default value on creation for the created_at field.
	battle.DefaultCreatedAt = battleDescCreatedAt.Default.(func() time.Time)
	// battleDescUpdatedAt is the schema descriptor for updated_at field.
	battleDescUpdatedAt := battleMixinFields0[1].Descriptor()
	// battle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	battle.DefaultUpdatedAt = battleDescUpdatedAt.Default.(func() time.Time)
	// battle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	battle.UpdateDefaultUpdatedAt = battleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// battleDescSlug is the schema descriptor for slug field.
	battleDescSlug := battleFields[1].Descriptor()
	// battle.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	battle.SlugValidator = battleDescSlug.Validators[0].(func(string) error)
	// battleDescExtensionCount is the schema descriptor for extension_count field.
	battleDescExtensionCount := battleFields[11].Descriptor()
	// battle.DefaultExtensionCount holds the default value on creation for the extension_count field.
	battle.DefaultExtensionCount = battleDescExtensionCount.Default.(int)
	// battle.ExtensionCountValidator is a validator for the "extension_count" field. It is called by the builders before save.
	battle.ExtensionCountValidator = battleDescExtensionCount.Validators[0].(func(int) error)
	// battleDescVotesA is the schema descriptor for votes_a field.
	battleDescVotesA := battleFields[12].Descriptor()
	// battle.DefaultVotesA holds the default value on creation for the votes_a field.
	battle.DefaultVotesA = battleDescVotesA.Default.(int)
	// battle.VotesAValidator is a validator for the "votes_a" field. It is called by the builders before save.
	battle.VotesAValidator = battleDescVotesA.Validators[0].(func(int) error)
	// battleDescVotesB is the schema descriptor for votes_b field.
	battleDescVotesB := battleFields[13].Descriptor()
	// battle.DefaultVotesB holds the default value on creation for the votes_b field.
	battle.DefaultVotesB = battleDescVotesB.Default.(int)
	// battle.VotesBValidator is a validator for the "votes_b" field. It is called by the builders before save.
	battle.VotesBValidator = battleDescVotesB.Validators[0].(func(int) error)
	// battleDescCreatedBy is the schema descriptor for created_by field.
	battleDescCreatedBy := battleFields[19].Descriptor()
	// battle.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	battle.CreatedByValidator = battleDescCreatedBy.Validators[0].(func(string) error)
	commentMixin := schema.Comment{}.Mixin()
	commentMixinFields0 := commentMixin[0].Fields()
	_ = commentMixinFields0
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentMixinFields0[0].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	// commentDescUpdatedAt is the schema descriptor for updated_at field.
	commentDescUpdatedAt := commentMixinFields0[1].Descriptor()
	// comment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comment.DefaultUpdatedAt = commentDescUpdatedAt.Default.(func() time.Time)
	// comment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comment.UpdateDefaultUpdatedAt = commentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commentDescBattleID is the schema descriptor for battle_id field.
	commentDescBattleID := commentFields[1].Descriptor()
	// comment.BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	comment.BattleIDValidator = commentDescBattleID.Validators[0].(func(string) error)
	// commentDescAuthorID is the schema descriptor for author_id field.
	commentDescAuthorID := commentFields[2].Descriptor()
	// comment.AuthorIDValidator is a validator for the "author_id" field. It is called by the builders before save.
	comment.AuthorIDValidator = commentDescAuthorID.Validators[0].(func(string) error)
	// commentDescBody is the schema descriptor for body field.
	commentDescBody := commentFields[3].Descriptor()
	// comment.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	comment.BodyValidator = commentDescBody.Validators[0].(func(string) error)
	// commentDescVisible is the schema descriptor for visible field.
	commentDescVisible := commentFields[4].Descriptor()
	// comment.DefaultVisible holds the default value on creation for the visible field.
	comment.DefaultVisible = commentDescVisible.Default.(bool)
	enginesettingMixin := schema.EngineSetting{}.Mixin()
	enginesettingMixinFields0 := enginesettingMixin[0].Fields()
	_ = enginesettingMixinFields0
	enginesettingFields := schema.EngineSetting{}.Fields()
	_ = enginesettingFields
	// enginesettingDescCreatedAt is the schema descriptor for created_at field.
	enginesettingDescCreatedAt := enginesettingMixinFields0[0].Descriptor()
	// enginesetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	enginesetting.DefaultCreatedAt = enginesettingDescCreatedAt.Default.(func() time.Time)
	// enginesettingDescKey is the schema descriptor for key field.
	enginesettingDescKey := enginesettingFields[0].Descriptor()
	// enginesetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	enginesetting.KeyValidator = enginesettingDescKey.Validators[0].(func(string) error)
	// enginesettingDescVersion is the schema descriptor for version field.
	enginesettingDescVersion := enginesettingFields[1].Descriptor()
	// enginesetting.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	enginesetting.VersionValidator = enginesettingDescVersion.Validators[0].(func(int) error)
	// enginesettingDescUpdatedBy is the schema descriptor for updated_by field.
	enginesettingDescUpdatedBy := enginesettingFields[3].Descriptor()
	// enginesetting.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	enginesetting.UpdatedByValidator = enginesettingDescUpdatedBy.Validators[0].(func(string) error)
	moderationactionMixin := schema.ModerationAction{}.Mixin()
	moderationactionMixinFields0 := moderationactionMixin[0].Fields()
	_ = moderationactionMixinFields0
	moderationactionFields := schema.ModerationAction{}.Fields()
	_ = moderationactionFields
	// moderationactionDescCreatedAt is the schema descriptor for created_at field.
	moderationactionDescCreatedAt := moderationactionMixinFields0[0].Descriptor()
	// moderationaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	moderationaction.DefaultCreatedAt = moderationactionDescCreatedAt.Default.(func() time.Time)
	// moderationactionDescUpdatedAt is the schema descriptor for updated_at field.
	moderationactionDescUpdatedAt := moderationactionMixinFields0[1].Descriptor()
	// moderationaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	moderationaction.DefaultUpdatedAt = moderationactionDescUpdatedAt.Default.(func() time.Time)
	// moderationaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	moderationaction.UpdateDefaultUpdatedAt = moderationactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// moderationactionDescSubjectType is the schema descriptor for subject_type field.
	moderationactionDescSubjectType := moderationactionFields[1].Descriptor()
	// moderationaction.SubjectTypeValidator is a validator for the "subject_type" field. It is called by the builders before save.
	moderationaction.SubjectTypeValidator = moderationactionDescSubjectType.Validators[0].(func(string) error)
	// moderationactionDescSubjectID is the schema descriptor for subject_id field.
	moderationactionDescSubjectID := moderationactionFields[2].Descriptor()
	// moderationaction.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	moderationaction.SubjectIDValidator = moderationactionDescSubjectID.Validators[0].(func(string) error)
	monitoringalertMixin := schema.MonitoringAlert{}.Mixin()
	monitoringalertMixinFields0 := monitoringalertMixin[0].Fields()
	_ = monitoringalertMixinFields0
	monitoringalertFields := schema.MonitoringAlert{}.Fields()
	_ = monitoringalertFields
	// monitoringalertDescCreatedAt is the schema descriptor for created_at field.
	monitoringalertDescCreatedAt := monitoringalertMixinFields0[0].Descriptor()
	// monitoringalert.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoringalert.DefaultCreatedAt = monitoringalertDescCreatedAt.Default.(func() time.Time)
	// monitoringalertDescUpdatedAt is the schema descriptor for updated_at field.
	monitoringalertDescUpdatedAt := monitoringalertMixinFields0[1].Descriptor()
	// monitoringalert.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	monitoringalert.DefaultUpdatedAt = monitoringalertDescUpdatedAt.Default.(func() time.Time)
	// monitoringalert.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	monitoringalert.UpdateDefaultUpdatedAt = monitoringalertDescUpdatedAt.UpdateDefault.(func() time.Time)
	// monitoringalertDescSource is the schema descriptor for source field.
	monitoringalertDescSource := monitoringalertFields[2].Descriptor()
	// monitoringalert.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	monitoringalert.SourceValidator = monitoringalertDescSource.Validators[0].(func(string) error)
	// monitoringalertDescEventType is the schema descriptor for event_type field.
	monitoringalertDescEventType := monitoringalertFields[3].Descriptor()
	// monitoringalert.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	monitoringalert.EventTypeValidator = monitoringalertDescEventType.Validators[0].(func(string) error)
	// monitoringalertDescResolved is the schema descriptor for resolved field.
	monitoringalertDescResolved := monitoringalertFields[7].Descriptor()
	// monitoringalert.DefaultResolved holds the default value on creation for the resolved field.
	monitoringalert.DefaultResolved = monitoringalertDescResolved.Default.(bool)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	ratelimitcounterFields := schema.RateLimitCounter{}.Fields()
	_ = ratelimitcounterFields
	// ratelimitcounterDescProcedure is the schema descriptor for procedure field.
	ratelimitcounterDescProcedure := ratelimitcounterFields[0].Descriptor()
	// ratelimitcounter.ProcedureValidator is a validator for the "procedure" field. It is called by the builders before save.
	ratelimitcounter.ProcedureValidator = ratelimitcounterDescProcedure.Validators[0].(func(string) error)
	// ratelimitcounterDescScopeKey is the schema descriptor for scope_key field.
	ratelimitcounterDescScopeKey := ratelimitcounterFields[1].Descriptor()
	// ratelimitcounter.ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	ratelimitcounter.ScopeKeyValidator = ratelimitcounterDescScopeKey.Validators[0].(func(string) error)
	// ratelimitcounterDescCount is the schema descriptor for count field.
	ratelimitcounterDescCount := ratelimitcounterFields[3].Descriptor()
	// ratelimitcounter.DefaultCount holds the default value on creation for the count field.
	ratelimitcounter.DefaultCount = ratelimitcounterDescCount.Default.(int)
	// ratelimitcounter.CountValidator is a validator for the "count" field. It is called by the builders before save.
	ratelimitcounter.CountValidator = ratelimitcounterDescCount.Validators[0].(func(int) error)
	ratelimitviolationMixin := schema.RateLimitViolation{}.Mixin()
	ratelimitviolationMixinFields0 := ratelimitviolationMixin[0].Fields()
	_ = ratelimitviolationMixinFields0
	ratelimitviolationFields := schema.RateLimitViolation{}.Fields()
	_ = ratelimitviolationFields
	// ratelimitviolationDescCreatedAt is the schema descriptor for created_at field.
	ratelimitviolationDescCreatedAt := ratelimitviolationMixinFields0[0].Descriptor()
	// ratelimitviolation.DefaultCreatedAt holds the default value on creation for the created_at field.
	ratelimitviolation.DefaultCreatedAt = ratelimitviolationDescCreatedAt.Default.(func() time.Time)
	// ratelimitviolationDescProcedure is the schema descriptor for procedure field.
	ratelimitviolationDescProcedure := ratelimitviolationFields[1].Descriptor()
	// ratelimitviolation.ProcedureValidator is a validator for the "procedure" field. It is called by the builders before save.
	ratelimitviolation.ProcedureValidator = ratelimitviolationDescProcedure.Validators[0].(func(string) error)
	// ratelimitviolationDescScopeKey is the schema descriptor for scope_key field.
	ratelimitviolationDescScopeKey := ratelimitviolationFields[2].Descriptor()
	// ratelimitviolation.ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	ratelimitviolation.ScopeKeyValidator = ratelimitviolationDescScopeKey.Validators[0].(func(string) error)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields0[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescOwnerID is the schema descriptor for owner_id field.
	submissionDescOwnerID := submissionFields[1].Descriptor()
	// submission.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	submission.OwnerIDValidator = submissionDescOwnerID.Validators[0].(func(string) error)
	// submissionDescTitle is the schema descriptor for title field.
	submissionDescTitle := submissionFields[2].Descriptor()
	// submission.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	submission.TitleValidator = submissionDescTitle.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[3].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescBattlesParticipated is the schema descriptor for battles_participated field.
	userDescBattlesParticipated := userFields[6].Descriptor()
	// user.DefaultBattlesParticipated holds the default value on creation for the battles_participated field.
	user.DefaultBattlesParticipated = userDescBattlesParticipated.Default.(int)
	// user.BattlesParticipatedValidator is a validator for the "battles_participated" field. It is called by the builders before save.
	user.BattlesParticipatedValidator = userDescBattlesParticipated.Validators[0].(func(int) error)
	// userDescBattlesCompleted is the schema descriptor for battles_completed field.
	userDescBattlesCompleted := userFields[7].Descriptor()
	// user.DefaultBattlesCompleted holds the default value on creation for the battles_completed field.
	user.DefaultBattlesCompleted = userDescBattlesCompleted.Default.(int)
	// user.BattlesCompletedValidator is a validator for the "battles_completed" field. It is called by the builders before save.
	user.BattlesCompletedValidator = userDescBattlesCompleted.Validators[0].(func(int) error)
	// userDescBattlesRefused is the schema descriptor for battles_refused field.
	userDescBattlesRefused := userFields[8].Descriptor()
	// user.DefaultBattlesRefused holds the default value on creation for the battles_refused field.
	user.DefaultBattlesRefused = userDescBattlesRefused.Default.(int)
	// user.BattlesRefusedValidator is a validator for the "battles_refused" field. It is called by the builders before save.
	user.BattlesRefusedValidator = userDescBattlesRefused.Validators[0].(func(int) error)
	// userDescEngagementScore is the schema descriptor for engagement_score field.
	userDescEngagementScore := userFields[9].Descriptor()
	// user.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	user.DefaultEngagementScore = userDescEngagementScore.Default.(int)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[10].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
	voteMixin := schema.Vote{}.Mixin()
	voteMixinFields0 := voteMixin[0].Fields()
	_ = voteMixinFields0
	voteFields := schema.Vote{}.Fields()
	_ = voteFields
	// voteDescCreatedAt is the schema descriptor for created_at field.
	voteDescCreatedAt := voteMixinFields0[0].Descriptor()
	// vote.DefaultCreatedAt holds the default value on creation for the created_at field.
	vote.DefaultCreatedAt = voteDescCreatedAt.Default.(func() time.Time)
	// voteDescBattleID is the schema descriptor for battle_id field.
	voteDescBattleID := voteFields[1].Descriptor()
	// vote.BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	vote.BattleIDValidator = voteDescBattleID.Validators[0].(func(string) error)
	// voteDescVoterID is the schema descriptor for voter_id field.
	voteDescVoterID := voteFields[2].Descriptor()
	// vote.VoterIDValidator is a validator for the "voter_id" field. It is called by the builders before save.
	vote.VoterIDValidator = voteDescVoterID.Validators[0].(func(string) error)
	// voteDescTargetParticipantID is the schema descriptor for target_participant_id field.
	voteDescTargetParticipantID := voteFields[3].Descriptor()
	// vote.TargetParticipantIDValidator is a validator for the "target_participant_id" field. It is called by the builders before save.
	vote.TargetParticipantIDValidator = voteDescTargetParticipantID.Validators[0].(func(string) error)
}

const (
	Version = "v0.14.5"                                         // Version of ent codegen.
	Sum     = "h1:Rj2WOYJtCkWyFo6a+5wB3EfBRP0rnx1fMk6gGA0UUe4=" // Sum of ent codegen.
)
