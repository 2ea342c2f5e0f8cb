package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/geocoding"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// SessionStore defines the contract for opaque session tokens.
type SessionStore interface {
	Create(ctx context.Context, token string, userID uuid.UUID) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// RegisterInput carries the registration form fields. Latitude/Longitude are
// browser-geolocation coordinates when the client has them; ClientIP is used
// as a geolocation fallback.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	ProfileName string
	PhoneNumber string
	Bio         string
	Location    string
	Latitude    *float64
	Longitude   *float64
	PhotoURL    string
	ClientIP    string
}

// UpdateProfileInput carries the editable profile fields. With
// UseManualAddress set, Location is forward-geocoded to coordinates.
type UpdateProfileInput struct {
	ProfileName      string
	PhoneNumber      string
	Bio              string
	Location         string
	Latitude         *float64
	Longitude        *float64
	PhotoURL         string
	UseManualAddress bool
}

// UserService defines the business logic for accounts and profiles.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.User, error)
}

type userService struct {
	repo     UserRepository
	sessions SessionStore
	geocoder geocoding.Geocoder
	iplocate geocoding.IPLocator
	logger   *logrus.Logger
}

func NewUserService(repo UserRepository, sessions SessionStore, geocoder geocoding.Geocoder, iplocate geocoding.IPLocator, logger *logrus.Logger) UserService {
	return &userService{
		repo:     repo,
		sessions: sessions,
		geocoder: geocoder,
		iplocate: iplocate,
		logger:   logger,
	}
}

// Register creates an account, resolves its location and opens a session.
// Location resolution priority: browser coordinates, then IP-based fallback.
// Geocoding failures degrade to an account without coordinates, never an error.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "Register",
		"username": input.Username,
	})
	log.Info("Attempting to register a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		ProfileName:  input.ProfileName,
		PhoneNumber:  input.PhoneNumber,
		Bio:          input.Bio,
		Location:     input.Location,
		PhotoURL:     input.PhotoURL,
	}
	s.resolveRegistrationLocation(ctx, user, input, log)

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			log.WithError(err).Warn("Registration rejected: duplicate account")
			return nil, "", err
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to open session for new user")
		return nil, "", err
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// resolveRegistrationLocation fills in coordinates and the readable address.
func (s *userService) resolveRegistrationLocation(ctx context.Context, user *models.User, input RegisterInput, log *logrus.Entry) {
	if input.Latitude != nil && input.Longitude != nil {
		user.Latitude = input.Latitude
		user.Longitude = input.Longitude
		if strings.TrimSpace(user.Location) == "" {
			address, err := s.geocoder.ReverseGeocode(ctx, *input.Latitude, *input.Longitude)
			if err != nil {
				log.WithError(err).Warn("Reverse geocoding failed, storing coordinates without address")
				address = "Location not specified"
			}
			user.Location = address
		}
		return
	}

	if input.ClientIP == "" {
		return
	}
	ipLoc, err := s.iplocate.LocateIP(ctx, input.ClientIP)
	if err != nil {
		log.WithError(err).Warn("IP geolocation failed, user registered without coordinates")
		return
	}
	user.Latitude = &ipLoc.Latitude
	user.Longitude = &ipLoc.Longitude
	if strings.TrimSpace(user.Location) == "" {
		user.Location = ipLoc.Location
	}
	log.WithField("ip_location", ipLoc.Location).Info("Location detected from IP")
}

// Login verifies credentials and opens a session.
func (s *userService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "Login",
		"username": username,
	})

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown username")
			return nil, "", ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to fetch user for login")
		return nil, "", fmt.Errorf("service: could not fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to open session")
		return nil, "", err
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return user, token, nil
}

// Logout invalidates the session token.
func (s *userService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to its user.
func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("service: could not look up session: %w", err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Session outlived the account.
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("service: could not fetch session user: %w", err)
	}
	return user, nil
}

// GetProfile returns a user profile by ID.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch profile: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the caller's own profile, re-resolving location when
// a manual address or new coordinates were supplied.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch user for update: %w", err)
	}

	user.ProfileName = input.ProfileName
	user.PhoneNumber = input.PhoneNumber
	user.Bio = input.Bio
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}

	switch {
	case input.UseManualAddress && strings.TrimSpace(input.Location) != "":
		result, err := s.geocoder.Geocode(ctx, input.Location)
		if err != nil {
			if errors.Is(err, geocoding.ErrNotFound) {
				log.WithField("address", input.Location).Warn("Manual address not found")
				return nil, fmt.Errorf("address %q: %w", input.Location, ErrNotFound)
			}
			return nil, fmt.Errorf("service: could not geocode address: %w", err)
		}
		user.Latitude = &result.Latitude
		user.Longitude = &result.Longitude
		user.Location = result.DisplayName
	case input.Latitude != nil && input.Longitude != nil:
		user.Latitude = input.Latitude
		user.Longitude = input.Longitude
		if strings.TrimSpace(input.Location) != "" {
			user.Location = input.Location
		} else {
			address, err := s.geocoder.ReverseGeocode(ctx, *input.Latitude, *input.Longitude)
			if err != nil {
				log.WithError(err).Warn("Reverse geocoding failed during profile update")
			} else {
				user.Location = address
			}
		}
	case strings.TrimSpace(input.Location) != "":
		user.Location = input.Location
	}

	if err := s.repo.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated successfully")
	return user, nil
}

// openSession issues a fresh opaque token for the user.
func (s *userService) openSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, userID); err != nil {
		return "", fmt.Errorf("service: could not create session: %w", err)
	}
	return token, nil
}
