package models

import (
	"time"

	"github.com/google/uuid"
)

// Playdate status values.
const (
	PlaydatePending   = "PENDING"
	PlaydateConfirmed = "CONFIRMED"
	PlaydateCancelled = "CANCELLED"
)

// Playdate is a scheduled meeting for a pet, organized by a user.
type Playdate struct {
	ID            uuid.UUID `json:"id"`
	PetID         uuid.UUID `json:"pet_id"`
	OrganizerID   uuid.UUID `json:"organizer_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
