package handlers

import (
	"time"

	"versus-arena.io/arena/ent"
)

// Wire DTOs. The JSON shapes below are the stable client contract; ent
// entities never leave the handler layer directly.

// BattleDTO is the wire representation of a battle.
type BattleDTO struct {
	ID                 string     `json:"id"`
	Slug               string     `json:"slug"`
	Status             string     `json:"status"`
	ParticipantA       string     `json:"participant_a,omitempty"`
	ParticipantB       string     `json:"participant_b,omitempty"`
	SubmissionA        string     `json:"submission_a,omitempty"`
	SubmissionB        string     `json:"submission_b,omitempty"`
	ResponseDeadline   *time.Time `json:"response_deadline,omitempty"`
	StartsAt           *time.Time `json:"starts_at,omitempty"`
	VotingEndsAt       *time.Time `json:"voting_ends_at,omitempty"`
	CustomDurationDays *int       `json:"custom_duration_days,omitempty"`
	ExtensionCount     int        `json:"extension_count"`
	VotesA             int        `json:"votes_a"`
	VotesB             int        `json:"votes_b"`
	Winner             *string    `json:"winner,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func battleToAPI(b *ent.Battle) BattleDTO {
	return BattleDTO{
		ID:                 b.ID,
		Slug:               b.Slug,
		Status:             b.Status.String(),
		ParticipantA:       b.ParticipantA,
		ParticipantB:       b.ParticipantB,
		SubmissionA:        b.SubmissionA,
		SubmissionB:        b.SubmissionB,
		ResponseDeadline:   b.ResponseDeadline,
		StartsAt:           b.StartsAt,
		VotingEndsAt:       b.VotingEndsAt,
		CustomDurationDays: b.CustomDurationDays,
		ExtensionCount:     b.ExtensionCount,
		VotesA:             b.VotesA,
		VotesB:             b.VotesB,
		Winner:             b.Winner,
		RejectionReason:    b.RejectionReason,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// CommentDTO is the wire representation of a comment. Hidden comments keep
// their row but drop the body for non-privileged readers.
type CommentDTO struct {
	ID           string    `json:"id"`
	BattleID     string    `json:"battle_id"`
	AuthorID     string    `json:"author_id"`
	Body         string    `json:"body,omitempty"`
	Visible      bool      `json:"visible"`
	HiddenReason string    `json:"hidden_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func commentToAPI(cm *ent.Comment, revealHidden bool) CommentDTO {
	dto := CommentDTO{
		ID:        cm.ID,
		BattleID:  cm.BattleID,
		AuthorID:  cm.AuthorID,
		Body:      cm.Body,
		Visible:   cm.Visible,
		CreatedAt: cm.CreatedAt,
	}
	if !cm.Visible {
		dto.HiddenReason = cm.HiddenReason
		if !revealHidden {
			dto.Body = ""
		}
	}
	return dto
}

// NotificationDTO is the wire representation of an inbox notification.
type NotificationDTO struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

func notificationToAPI(n *ent.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		CreatedAt:    n.CreatedAt,
	}
}

// AlertDTO is the wire representation of a monitoring alert.
type AlertDTO struct {
	ID          string                 `json:"id"`
	Severity    string                 `json:"severity"`
	Source      string                 `json:"source"`
	EventType   string                 `json:"event_type"`
	SubjectType string                 `json:"subject_type,omitempty"`
	SubjectID   string                 `json:"subject_id,omitempty"`
	Detail      map[string]interface{} `json:"detail,omitempty"`
	Resolved    bool                   `json:"resolved"`
	ResolvedBy  string                 `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func alertToAPI(a *ent.MonitoringAlert) AlertDTO {
	return AlertDTO{
		ID:          a.ID,
		Severity:    a.Severity.String(),
		Source:      a.Source,
		EventType:   a.EventType,
		SubjectType: a.SubjectType,
		SubjectID:   a.SubjectID,
		Detail:      a.Detail,
		Resolved:    a.Resolved,
		ResolvedBy:  a.ResolvedBy,
		ResolvedAt:  a.ResolvedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// AuditEntryDTO is the wire representation of an audit entry.
type AuditEntryDTO struct {
	ID             string                 `json:"id"`
	Actor          string                 `json:"actor"`
	Action         string                 `json:"action"`
	SubjectType    string                 `json:"subject_type"`
	SubjectID      string                 `json:"subject_id,omitempty"`
	RequestContext map[string]interface{} `json:"request_context,omitempty"`
	Detail         map[string]interface{} `json:"detail,omitempty"`
	Success        bool                   `json:"success"`
	ErrorCode      string                 `json:"error_code,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func auditEntryToAPI(e *ent.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:             e.ID,
		Actor:          e.Actor,
		Action:         e.Action,
		SubjectType:    e.SubjectType,
		SubjectID:      e.SubjectID,
		RequestContext: e.RequestContext,
		Detail:         e.Detail,
		Success:        e.Success,
		ErrorCode:      e.ErrorCode,
		CreatedAt:      e.CreatedAt,
	}
}

// ModerationActionDTO is the wire representation of a moderation decision.
type ModerationActionDTO struct {
	ID               string                 `json:"id"`
	SubjectType      string                 `json:"subject_type"`
	SubjectID        string                 `json:"subject_id"`
	Decision         map[string]interface{} `json:"decision"`
	Status           string                 `json:"status"`
	AppliedEffect    string                 `json:"applied_effect,omitempty"`
	ExecutedAt       *time.Time             `json:"executed_at,omitempty"`
	ExecutedBy       string                 `json:"executed_by,omitempty"`
	OverrideFeedback map[string]interface{} `json:"override_feedback,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

func moderationActionToAPI(m *ent.ModerationAction) ModerationActionDTO {
	return ModerationActionDTO{
		ID:               m.ID,
		SubjectType:      m.SubjectType,
		SubjectID:        m.SubjectID,
		Decision:         m.Decision,
		Status:           m.Status.String(),
		AppliedEffect:    m.AppliedEffect,
		ExecutedAt:       m.ExecutedAt,
		ExecutedBy:       m.ExecutedBy,
		OverrideFeedback: m.OverrideFeedback,
		CreatedAt:        m.CreatedAt,
	}
}

// defaultPagination clamps page/per-page query values to sane bounds.
func defaultPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
