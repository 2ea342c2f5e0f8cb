package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/geo"
)

// Community alert types.
const (
	AlertLost      = "LOST"
	AlertFound     = "FOUND"
	AlertEmergency = "EMERGENCY"
)

// Post is a community feed entry.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Caption   string    `json:"caption"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Comments  []Comment `json:"comments,omitempty"`
}

// Comment is a reply to a community post.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunityAlert is a lost/found/emergency announcement. Coordinates are
// optional: an alert without them is never matched by a radius filter.
type CommunityAlert struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AlertType     string    `json:"alert_type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PetType       string    `json:"pet_type,omitempty"`
	Size          string    `json:"size,omitempty"`
	ColorMarkings string    `json:"color_markings,omitempty"`
	Location      string    `json:"location"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	ContactInfo   string    `json:"contact_info"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Coordinates reports the alert's position, if known. Implements geo.Locatable.
func (a *CommunityAlert) Coordinates() (geo.Coordinate, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Latitude: *a.Latitude, Longitude: *a.Longitude}, true
}
