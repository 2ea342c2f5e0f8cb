package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/geo"
)

// User is a registered pet owner. Coordinates are optional: a user whose
// location could not be resolved is stored without them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ProfileName  string    `json:"profile_name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	// Location is the human-readable address (e.g. "New York, NY").
	Location  string    `json:"location,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coordinates reports the user's stored position, if known.
func (u *User) Coordinates() (geo.Coordinate, bool) {
	if u.Latitude == nil || u.Longitude == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Latitude: *u.Latitude, Longitude: *u.Longitude}, true
}
