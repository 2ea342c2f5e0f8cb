package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageThread is a direct-message thread between two users. Exactly one
// thread exists per user pair; UserAID/UserBID are stored in normalized order.
type MessageThread struct {
	ID         uuid.UUID  `json:"id"`
	UserAID    uuid.UUID  `json:"user_a_id"`
	UserBID    uuid.UUID  `json:"user_b_id"`
	PlaydateID *uuid.UUID `json:"playdate_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// HasParticipant reports whether the given user belongs to the thread.
func (t *MessageThread) HasParticipant(userID uuid.UUID) bool {
	return t.UserAID == userID || t.UserBID == userID
}

// Message is a single direct message. Either Text or PhotoURL must be set.
type Message struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}
