package models

import (
	"time"

	"github.com/google/uuid"
)

// Pet species values.
const (
	SpeciesDog   = "DOG"
	SpeciesCat   = "CAT"
	SpeciesOther = "OTHER"
)

// Pet size values.
const (
	SizeSmall  = "SMALL"
	SizeMedium = "MEDIUM"
	SizeLarge  = "LARGE"
)

// Pet energy level values.
const (
	EnergyLow    = "LOW"
	EnergyMedium = "MEDIUM"
	EnergyHigh   = "HIGH"
)

// PetProfile describes a pet belonging to a user.
type PetProfile struct {
	ID                  uuid.UUID  `json:"id"`
	OwnerID             uuid.UUID  `json:"owner_id"`
	Name                string     `json:"name"`
	Species             string     `json:"species"`
	Breed               string     `json:"breed,omitempty"`
	Age                 string     `json:"age"`
	GeneralSize         string     `json:"general_size"`
	EnergyLevel         string     `json:"energy_level"`
	Weight              *float64   `json:"weight,omitempty"`
	ColorMarkings       string     `json:"color_markings,omitempty"`
	Description         string     `json:"description,omitempty"`
	IsPlaydateAvailable bool       `json:"is_playdate_available"`
	IsAdoptable         bool       `json:"is_adoptable"`
	PrivacySettings     string     `json:"privacy_settings"`
	CreatedAt           time.Time  `json:"created_at"`
	Photos              []PetPhoto `json:"photos,omitempty"`
	Traits              []string   `json:"traits,omitempty"`
}

// PetPhoto is a photo attached to a pet profile.
type PetPhoto struct {
	ID         uuid.UUID `json:"id"`
	PetID      uuid.UUID `json:"pet_id"`
	PhotoURL   string    `json:"photo_url"`
	IsPrimary  bool      `json:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at"`
}
