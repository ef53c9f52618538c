// Package domain defines battle lifecycle events and their in-process
// dispatch. Downstream collaborators (notifications, contract issuance,
// media hosting) subscribe to "battle reached state X" here instead of being
// called from inside lifecycle transactions.
package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of lifecycle event.
type EventType string

const (
	// Battle lifecycle events, one per state-machine transition.
	EventBattleProposed  EventType = "BATTLE_PROPOSED"
	EventBattleAccepted  EventType = "BATTLE_ACCEPTED"
	EventBattleRejected  EventType = "BATTLE_REJECTED"
	EventBattleStarted   EventType = "BATTLE_STARTED"
	EventBattleExtended  EventType = "BATTLE_EXTENDED"
	EventBattleCompleted EventType = "BATTLE_COMPLETED"
	EventBattleCancelled EventType = "BATTLE_CANCELLED"

	// Moderation events.
	EventCommentHidden EventType = "COMMENT_HIDDEN"
)

// Event is an immutable record of one completed transition. Events are
// emitted after the owning transaction commits; handlers observe durable
// state only.
type Event struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	Actor         string    `json:"actor"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BattlePayload is the payload carried by all battle lifecycle events.
type BattlePayload struct {
	BattleID     string     `json:"battle_id"`
	Slug         string     `json:"slug"`
	Status       string     `json:"status"`
	ParticipantA string     `json:"participant_a,omitempty"`
	ParticipantB string     `json:"participant_b,omitempty"`
	Winner       *string    `json:"winner,omitempty"`
	VotingEndsAt *time.Time `json:"voting_ends_at,omitempty"`
	Reason       string     `json:"reason,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p BattlePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// CommentHiddenPayload is the payload for moderation visibility events.
type CommentHiddenPayload struct {
	CommentID string `json:"comment_id"`
	BattleID  string `json:"battle_id"`
	AuthorID  string `json:"author_id"`
	Reason    string `json:"reason"`
	HiddenBy  string `json:"hidden_by"`
}

// ToJSON converts payload to JSON bytes.
func (p CommentHiddenPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
