package models

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionListing offers a pet for adoption. At most one listing exists per pet.
type AdoptionListing struct {
	ID                   uuid.UUID `json:"id"`
	PetID                uuid.UUID `json:"pet_id"`
	AdditionalInfo       string    `json:"additional_info"`
	AdoptionRequirements string    `json:"adoption_requirements,omitempty"`
	IsActive             bool      `json:"is_active"`
	PostedAt             time.Time `json:"posted_at"`
}
