package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO for creating an account
// @Description DTO for creating an account
type RegisterRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=150"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	ProfileName string   `json:"profile_name" validate:"required,max=100"`
	PhoneNumber string   `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Bio         string   `json:"bio,omitempty"`
	Location    string   `json:"location,omitempty" validate:"omitempty,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	PhotoURL    string   `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// LoginRequest DTO for opening a session
// @Description DTO for opening a session
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest DTO for editing the profile. With use_manual_address
// set, location is forward-geocoded to coordinates.
// @Description DTO for editing the profile
type UpdateProfileRequest struct {
	ProfileName      string   `json:"profile_name" validate:"required,max=100"`
	PhoneNumber      string   `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Bio              string   `json:"bio,omitempty"`
	Location         string   `json:"location,omitempty" validate:"omitempty,max=255"`
	Latitude         *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	PhotoURL         string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	UseManualAddress bool     `json:"use_manual_address,omitempty"`
}

// UserResponse DTO for the public user profile
// @Description DTO for the public user profile
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	ProfileName string    `json:"profile_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResponse DTO returned after register/login
// @Description DTO returned after register/login
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CreatePetRequest DTO for creating a pet profile
// @Description DTO for creating a pet profile
type CreatePetRequest struct {
	Name                string   `json:"name" validate:"required,min=1,max=100"`
	Species             string   `json:"species" validate:"required,oneof=DOG CAT OTHER"`
	Breed               string   `json:"breed,omitempty" validate:"omitempty,max=100"`
	Age                 string   `json:"age" validate:"required,max=50"`
	GeneralSize         string   `json:"general_size" validate:"required,oneof=SMALL MEDIUM LARGE"`
	EnergyLevel         string   `json:"energy_level" validate:"required,oneof=LOW MEDIUM HIGH"`
	Weight              *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	ColorMarkings       string   `json:"color_markings,omitempty"`
	Description         string   `json:"description,omitempty"`
	IsPlaydateAvailable bool     `json:"is_playdate_available,omitempty"`
	IsAdoptable         bool     `json:"is_adoptable,omitempty"`
	PrivacySettings     string   `json:"privacy_settings,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// UpdatePetRequest DTO for updating a pet profile
// @Description DTO for updating a pet profile
type UpdatePetRequest struct {
	Name                string   `json:"name" validate:"required,min=1,max=100"`
	Species             string   `json:"species" validate:"required,oneof=DOG CAT OTHER"`
	Breed               string   `json:"breed,omitempty" validate:"omitempty,max=100"`
	Age                 string   `json:"age" validate:"required,max=50"`
	GeneralSize         string   `json:"general_size" validate:"required,oneof=SMALL MEDIUM LARGE"`
	EnergyLevel         string   `json:"energy_level" validate:"required,oneof=LOW MEDIUM HIGH"`
	Weight              *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	ColorMarkings       string   `json:"color_markings,omitempty"`
	Description         string   `json:"description,omitempty"`
	IsPlaydateAvailable bool     `json:"is_playdate_available,omitempty"`
	IsAdoptable         bool     `json:"is_adoptable,omitempty"`
	PrivacySettings     string   `json:"privacy_settings,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// AddPetPhotoRequest DTO for attaching a photo to a pet
// @Description DTO for attaching a photo to a pet
type AddPetPhotoRequest struct {
	PhotoURL  string `json:"photo_url" validate:"required,url"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// SetPetTraitsRequest DTO for replacing a pet's trait list
// @Description DTO for replacing a pet's trait list
type SetPetTraitsRequest struct {
	Traits []string `json:"traits" validate:"required,max=20,dive,min=1,max=50"`
}

// PetPhotoResponse DTO for a pet photo
// @Description DTO for a pet photo
type PetPhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	PetID      uuid.UUID `json:"pet_id"`
	PhotoURL   string    `json:"photo_url"`
	IsPrimary  bool      `json:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PetResponse DTO for a pet profile
// @Description DTO for a pet profile
type PetResponse struct {
	ID                  uuid.UUID          `json:"id"`
	OwnerID             uuid.UUID          `json:"owner_id"`
	Name                string             `json:"name"`
	Species             string             `json:"species"`
	Breed               string             `json:"breed,omitempty"`
	Age                 string             `json:"age"`
	GeneralSize         string             `json:"general_size"`
	EnergyLevel         string             `json:"energy_level"`
	Weight              *float64           `json:"weight,omitempty"`
	ColorMarkings       string             `json:"color_markings,omitempty"`
	Description         string             `json:"description,omitempty"`
	IsPlaydateAvailable bool               `json:"is_playdate_available"`
	IsAdoptable         bool               `json:"is_adoptable"`
	PrivacySettings     string             `json:"privacy_settings"`
	CreatedAt           time.Time          `json:"created_at"`
	Photos              []PetPhotoResponse `json:"photos,omitempty"`
	Traits              []string           `json:"traits,omitempty"`
}

// CreateListingRequest DTO for posting a pet for adoption
// @Description DTO for posting a pet for adoption
type CreateListingRequest struct {
	PetID                uuid.UUID `json:"pet_id" validate:"required"`
	AdditionalInfo       string    `json:"additional_info" validate:"required"`
	AdoptionRequirements string    `json:"adoption_requirements,omitempty"`
}

// UpdateListingRequest DTO for editing an adoption listing
// @Description DTO for editing an adoption listing
type UpdateListingRequest struct {
	AdditionalInfo       string `json:"additional_info" validate:"required"`
	AdoptionRequirements string `json:"adoption_requirements,omitempty"`
}

// ListingResponse DTO for an adoption listing
// @Description DTO for an adoption listing
type ListingResponse struct {
	ID                   uuid.UUID `json:"id"`
	PetID                uuid.UUID `json:"pet_id"`
	AdditionalInfo       string    `json:"additional_info"`
	AdoptionRequirements string    `json:"adoption_requirements,omitempty"`
	IsActive             bool      `json:"is_active"`
	PostedAt             time.Time `json:"posted_at"`
}

// CreatePostRequest DTO for creating a community post
// @Description DTO for creating a community post
type CreatePostRequest struct {
	Caption  string `json:"caption" validate:"required"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// CreateCommentRequest DTO for commenting on a post
// @Description DTO for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentResponse DTO for a post comment
// @Description DTO for a post comment
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse DTO for a community post
// @Description DTO for a community post
type PostResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Caption   string            `json:"caption"`
	PhotoURL  string            `json:"photo_url,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Comments  []CommentResponse `json:"comments,omitempty"`
}

// CreateAlertRequest DTO for creating a community alert
// @Description DTO for creating a community alert
type CreateAlertRequest struct {
	AlertType     string   `json:"alert_type" validate:"required,oneof=LOST FOUND EMERGENCY"`
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description" validate:"required"`
	PetType       string   `json:"pet_type,omitempty" validate:"omitempty,max=50"`
	Size          string   `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	ColorMarkings string   `json:"color_markings,omitempty"`
	Location      string   `json:"location" validate:"required,max=255"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ContactInfo   string   `json:"contact_info" validate:"required,max=100"`
	PhotoURL      string   `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// UpdateAlertRequest DTO for editing a community alert
// @Description DTO for editing a community alert
type UpdateAlertRequest struct {
	AlertType     string   `json:"alert_type" validate:"required,oneof=LOST FOUND EMERGENCY"`
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description" validate:"required"`
	PetType       string   `json:"pet_type,omitempty" validate:"omitempty,max=50"`
	Size          string   `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	ColorMarkings string   `json:"color_markings,omitempty"`
	Location      string   `json:"location" validate:"required,max=255"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ContactInfo   string   `json:"contact_info" validate:"required,max=100"`
	PhotoURL      string   `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// AlertResponse DTO for a community alert
// @Description DTO for a community alert
type AlertResponse struct {
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

// StatsResponse DTO for alert statistics
// @Description DTO for alert statistics
type StatsResponse struct {
	ActiveByType map[string]int `json:"active_by_type"`
}

// CreateThreadRequest DTO for opening a message thread with another user
// @Description DTO for opening a message thread with another user
type CreateThreadRequest struct {
	UserID     uuid.UUID  `json:"user_id" validate:"required"`
	PlaydateID *uuid.UUID `json:"playdate_id,omitempty"`
}

// ThreadResponse DTO for a message thread
// @Description DTO for a message thread
type ThreadResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserAID    uuid.UUID  `json:"user_a_id"`
	UserBID    uuid.UUID  `json:"user_b_id"`
	PlaydateID *uuid.UUID `json:"playdate_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SendMessageRequest DTO for sending a direct message
// @Description DTO for sending a direct message
type SendMessageRequest struct {
	Text     string `json:"text,omitempty"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// MessageResponse DTO for a direct message
// @Description DTO for a direct message
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

// CreatePlaydateRequest DTO for scheduling a playdate
// @Description DTO for scheduling a playdate
type CreatePlaydateRequest struct {
	PetID         uuid.UUID `json:"pet_id" validate:"required"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
	Location      string    `json:"location" validate:"required,max=255"`
}

// UpdatePlaydateRequest DTO for rescheduling a playdate
// @Description DTO for rescheduling a playdate
type UpdatePlaydateRequest struct {
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
	Location      string    `json:"location" validate:"required,max=255"`
}

// UpdatePlaydateStatusRequest DTO for confirming or cancelling a playdate
// @Description DTO for confirming or cancelling a playdate
type UpdatePlaydateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED"`
}

// PlaydateResponse DTO for a playdate
// @Description DTO for a playdate
type PlaydateResponse struct {
	ID            uuid.UUID `json:"id"`
	PetID         uuid.UUID `json:"pet_id"`
	OrganizerID   uuid.UUID `json:"organizer_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
