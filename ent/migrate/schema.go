// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "subject_type", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString, Nullable: true},
		{Name: "request_context", Type: field.TypeJSON, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "source_decision_id", Type: field.TypeString, Nullable: true},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[3], AuditEntriesColumns[1]},
			},
			{
				Name:    "auditentry_subject_type_subject_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[4], AuditEntriesColumns[5]},
			},
			{
				Name:    "auditentry_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_source_decision_id",
				Unique:  true,
				Columns: []*schema.Column{AuditEntriesColumns[10]},
			},
		},
	}
	// BattlesColumns holds the columns for the "battles" table.
	BattlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString},
		{Name: "participant_a", Type: field.TypeString, Nullable: true},
		{Name: "participant_b", Type: field.TypeString, Nullable: true},
		{Name: "submission_a", Type: field.TypeString, Nullable: true},
		{Name: "submission_b", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING_ACCEPTANCE", "AWAITING_ADMIN", "ACTIVE", "COMPLETED", "REJECTED", "CANCELLED", "LEGACY_OPEN", "LEGACY_VOTING", "LEGACY_CLOSED"}, Default: "PENDING_ACCEPTANCE"},
		{Name: "response_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "starts_at", Type: field.TypeTime, Nullable: true},
		{Name: "voting_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "custom_duration_days", Type: field.TypeInt, Nullable: true},
		{Name: "extension_count", Type: field.TypeInt, Default: 0},
		{Name: "votes_a", Type: field.TypeInt, Default: 0},
		{Name: "votes_b", Type: field.TypeInt, Default: 0},
		{Name: "winner", Type: field.TypeString, Nullable: true},
		{Name: "accepted_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
		{Name: "admin_validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// BattlesTable holds the schema information for the "battles" table.
	BattlesTable = &schema.Table{
		Name:       "battles",
		Columns:    BattlesColumns,
		PrimaryKey: []*schema.Column{BattlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "battle_slug",
				Unique:  true,
				Columns: []*schema.Column{BattlesColumns[3]},
			},
			{
				Name:    "battle_status",
				Unique:  false,
				Columns: []*schema.Column{BattlesColumns[8]},
			},
			{
				Name:    "battle_status_voting_ends_at",
				Unique:  false,
				Columns: []*schema.Column{BattlesColumns[8], BattlesColumns[11]},
			},
			{
				Name:    "battle_participant_a",
				Unique:  false,
				Columns: []*schema.Column{BattlesColumns[4]},
			},
			{
				Name:    "battle_participant_b",
				Unique:  false,
				Columns: []*schema.Column{BattlesColumns[5]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "battle_id", Type: field.TypeString},
		{Name: "author_id", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "visible", Type: field.TypeBool, Default: true},
		{Name: "hidden_reason", Type: field.TypeString, Nullable: true},
		{Name: "hidden_by", Type: field.TypeString, Nullable: true},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comment_battle_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[3], CommentsColumns[1]},
			},
			{
				Name:    "comment_author_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[4]},
			},
		},
	}
	// EngineSettingsColumns holds the columns for the "engine_settings" table.
	EngineSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "document", Type: field.TypeJSON},
		{Name: "updated_by", Type: field.TypeString},
	}
	// EngineSettingsTable holds the schema information for the "engine_settings" table.
	EngineSettingsTable = &schema.Table{
		Name:       "engine_settings",
		Columns:    EngineSettingsColumns,
		PrimaryKey: []*schema.Column{EngineSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enginesetting_key_version",
				Unique:  true,
				Columns: []*schema.Column{EngineSettingsColumns[2], EngineSettingsColumns[3]},
			},
		},
	}
	// ModerationActionsColumns holds the columns for the "moderation_actions" table.
	ModerationActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject_type", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "decision", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PROPOSED", "EXECUTED", "FAILED", "OVERRIDDEN"}, Default: "PROPOSED"},
		{Name: "applied_effect", Type: field.TypeString, Nullable: true},
		{Name: "executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "executed_by", Type: field.TypeString, Nullable: true},
		{Name: "override_feedback", Type: field.TypeJSON, Nullable: true},
	}
	// ModerationActionsTable holds the schema information for the "moderation_actions" table.
	ModerationActionsTable = &schema.Table{
		Name:       "moderation_actions",
		Columns:    ModerationActionsColumns,
		PrimaryKey: []*schema.Column{ModerationActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moderationaction_subject_type_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ModerationActionsColumns[3], ModerationActionsColumns[4]},
			},
			{
				Name:    "moderationaction_status",
				Unique:  false,
				Columns: []*schema.Column{ModerationActionsColumns[6]},
			},
		},
	}
	// MonitoringAlertsColumns holds the columns for the "monitoring_alerts" table.
	MonitoringAlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"INFO", "WARNING", "CRITICAL"}},
		{Name: "source", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "subject_type", Type: field.TypeString, Nullable: true},
		{Name: "subject_id", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// MonitoringAlertsTable holds the schema information for the "monitoring_alerts" table.
	MonitoringAlertsTable = &schema.Table{
		Name:       "monitoring_alerts",
		Columns:    MonitoringAlertsColumns,
		PrimaryKey: []*schema.Column{MonitoringAlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monitoringalert_event_type_subject_type_subject_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MonitoringAlertsColumns[5], MonitoringAlertsColumns[6], MonitoringAlertsColumns[7], MonitoringAlertsColumns[1]},
			},
			{
				Name:    "monitoringalert_severity_resolved",
				Unique:  false,
				Columns: []*schema.Column{MonitoringAlertsColumns[3], MonitoringAlertsColumns[9]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"BATTLE_INVITED", "BATTLE_ACCEPTED", "BATTLE_REJECTED", "BATTLE_STARTED", "BATTLE_COMPLETED", "BATTLE_CANCELLED", "COMMENT_HIDDEN"}},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// RateLimitCountersColumns holds the columns for the "rate_limit_counters" table.
	RateLimitCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "procedure", Type: field.TypeString},
		{Name: "scope_key", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt, Default: 0},
	}
	// RateLimitCountersTable holds the schema information for the "rate_limit_counters" table.
	RateLimitCountersTable = &schema.Table{
		Name:       "rate_limit_counters",
		Columns:    RateLimitCountersColumns,
		PrimaryKey: []*schema.Column{RateLimitCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitcounter_procedure_scope_key_window_start",
				Unique:  true,
				Columns: []*schema.Column{RateLimitCountersColumns[1], RateLimitCountersColumns[2], RateLimitCountersColumns[3]},
			},
			{
				Name:    "ratelimitcounter_window_start",
				Unique:  false,
				Columns: []*schema.Column{RateLimitCountersColumns[3]},
			},
		},
	}
	// RateLimitViolationsColumns holds the columns for the "rate_limit_violations" table.
	RateLimitViolationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "procedure", Type: field.TypeString},
		{Name: "scope_key", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt},
		{Name: "allowed_per_minute", Type: field.TypeInt},
	}
	// RateLimitViolationsTable holds the schema information for the "rate_limit_violations" table.
	RateLimitViolationsTable = &schema.Table{
		Name:       "rate_limit_violations",
		Columns:    RateLimitViolationsColumns,
		PrimaryKey: []*schema.Column{RateLimitViolationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitviolation_procedure_created_at",
				Unique:  false,
				Columns: []*schema.Column{RateLimitViolationsColumns[2], RateLimitViolationsColumns[1]},
			},
			{
				Name:    "ratelimitviolation_actor",
				Unique:  false,
				Columns: []*schema.Column{RateLimitViolationsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "media_path", Type: field.TypeString, Nullable: true},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"USER", "ADMIN"}, Default: "USER"},
		{Name: "battles_participated", Type: field.TypeInt, Default: 0},
		{Name: "battles_completed", Type: field.TypeInt, Default: 0},
		{Name: "battles_refused", Type: field.TypeInt, Default: 0},
		{Name: "engagement_score", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "battle_id", Type: field.TypeString},
		{Name: "voter_id", Type: field.TypeString},
		{Name: "target_participant_id", Type: field.TypeString},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vote_battle_id_voter_id",
				Unique:  true,
				Columns: []*schema.Column{VotesColumns[2], VotesColumns[3]},
			},
			{
				Name:    "vote_voter_id",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		BattlesTable,
		CommentsTable,
		EngineSettingsTable,
		ModerationActionsTable,
		MonitoringAlertsTable,
		NotificationsTable,
		RateLimitCountersTable,
		RateLimitViolationsTable,
		SubmissionsTable,
		UsersTable,
		VotesTable,
	}
)

func init() {
}
