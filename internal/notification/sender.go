// Package notification implements the in-app inbox. Notifications are
// synchronous DB writes fired from lifecycle event handlers after the owning
// transition commits; external push channels would hang off the same
// triggers.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	entnotification "versus-arena.io/arena/ent/notification"
	"versus-arena.io/arena/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeBattleInvited   = "BATTLE_INVITED"
	TypeBattleAccepted  = "BATTLE_ACCEPTED"
	TypeBattleRejected  = "BATTLE_REJECTED"
	TypeBattleStarted   = "BATTLE_STARTED"
	TypeBattleCompleted = "BATTLE_COMPLETED"
	TypeBattleCancelled = "BATTLE_CANCELLED"
	TypeCommentHidden   = "COMMENT_HIDDEN"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID  string // User ID of the recipient
	Type         string // One of Type* constants above
	Title        string // Human-readable title
	Message      string // Body text
	ResourceType string // e.g. "battle", "comment"
	ResourceID   string // ID of the related resource for navigation
}

// Sender defines the interface for sending notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) error
}

// InboxSender writes notifications to the database synchronously within the
// caller's context.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification to the database.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	_, err = s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetRecipientID(params.RecipientID).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetResourceType(params.ResourceType).
		SetResourceID(params.ResourceID).
		SetRead(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			failCount++
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("type", params.Type),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

// --- Helpers ---

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeBattleInvited:
		return entnotification.TypeBATTLE_INVITED, nil
	case TypeBattleAccepted:
		return entnotification.TypeBATTLE_ACCEPTED, nil
	case TypeBattleRejected:
		return entnotification.TypeBATTLE_REJECTED, nil
	case TypeBattleStarted:
		return entnotification.TypeBATTLE_STARTED, nil
	case TypeBattleCompleted:
		return entnotification.TypeBATTLE_COMPLETED, nil
	case TypeBattleCancelled:
		return entnotification.TypeBATTLE_CANCELLED, nil
	case TypeCommentHidden:
		return entnotification.TypeCOMMENT_HIDDEN, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
