package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/sirupsen/logrus"
)

// PlaydateRepository defines the persistence contract for playdates.
type PlaydateRepository interface {
	Create(ctx context.Context, playdate *models.Playdate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Playdate, error)
	Update(ctx context.Context, playdate *models.Playdate) error
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*models.Playdate, error)
}

// PlaydateService defines the business logic for playdate scheduling.
type PlaydateService interface {
	CreatePlaydate(ctx context.Context, organizerID, petID uuid.UUID, scheduledTime time.Time, location string) (*models.Playdate, error)
	GetPlaydate(ctx context.Context, id uuid.UUID) (*models.Playdate, error)
	ListMyPlaydates(ctx context.Context, organizerID uuid.UUID) ([]*models.Playdate, error)
	UpdatePlaydate(ctx context.Context, requesterID, id uuid.UUID, scheduledTime time.Time, location string) (*models.Playdate, error)
	UpdateStatus(ctx context.Context, requesterID, id uuid.UUID, status string) (*models.Playdate, error)
}

type playdateService struct {
	repo   PlaydateRepository
	pets   PetRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewPlaydateService(repo PlaydateRepository, pets PetRepository, logger *logrus.Logger) PlaydateService {
	return &playdateService{
		repo:   repo,
		pets:   pets,
		logger: logger,
		now:    time.Now,
	}
}

// CreatePlaydate schedules a playdate for a pet. The pet must be marked as
// available for playdates and the time must be in the future.
func (s *playdateService) CreatePlaydate(ctx context.Context, organizerID, petID uuid.UUID, scheduledTime time.Time, location string) (*models.Playdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "playdate",
		"method":       "CreatePlaydate",
		"organizer_id": organizerID,
		"pet_id":       petID,
	})

	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("location is required: %w", ErrEmptyField)
	}
	if !scheduledTime.After(s.now()) {
		return nil, ErrPastPlaydate
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch pet for playdate: %w", err)
	}
	if !pet.IsPlaydateAvailable {
		return nil, fmt.Errorf("pet %s: %w", petID, ErrPetNotAvailable)
	}

	playdate := &models.Playdate{
		PetID:         petID,
		OrganizerID:   organizerID,
		ScheduledTime: scheduledTime,
		Location:      location,
		Status:        models.PlaydatePending,
	}
	if err := s.repo.Create(ctx, playdate); err != nil {
		log.WithError(err).Error("Failed to create playdate in repository")
		return nil, fmt.Errorf("service: could not create playdate: %w", err)
	}

	log.WithField("playdate_id", playdate.ID).Info("Playdate scheduled")
	return playdate, nil
}

// GetPlaydate returns a single playdate.
func (s *playdateService) GetPlaydate(ctx context.Context, id uuid.UUID) (*models.Playdate, error) {
	playdate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch playdate: %w", err)
	}
	return playdate, nil
}

// ListMyPlaydates returns the playdates the user organizes.
func (s *playdateService) ListMyPlaydates(ctx context.Context, organizerID uuid.UUID) ([]*models.Playdate, error) {
	playdates, err := s.repo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list playdates: %w", err)
	}
	return playdates, nil
}

// UpdatePlaydate reschedules a playdate. Only the organizer may update.
func (s *playdateService) UpdatePlaydate(ctx context.Context, requesterID, id uuid.UUID, scheduledTime time.Time, location string) (*models.Playdate, error) {
	playdate, err := s.organizedPlaydate(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("location is required: %w", ErrEmptyField)
	}
	if !scheduledTime.After(s.now()) {
		return nil, ErrPastPlaydate
	}

	playdate.ScheduledTime = scheduledTime
	playdate.Location = location
	if err := s.repo.Update(ctx, playdate); err != nil {
		return nil, fmt.Errorf("service: could not update playdate: %w", err)
	}
	return playdate, nil
}

// UpdateStatus moves a playdate through its lifecycle. Allowed transitions:
// PENDING -> CONFIRMED, PENDING/CONFIRMED -> CANCELLED.
func (s *playdateService) UpdateStatus(ctx context.Context, requesterID, id uuid.UUID, status string) (*models.Playdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "playdate",
		"method":      "UpdateStatus",
		"playdate_id": id,
		"status":      status,
	})

	playdate, err := s.organizedPlaydate(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if !validTransition(playdate.Status, status) {
		log.Warn("Rejected playdate status transition")
		return nil, fmt.Errorf("%s -> %s: %w", playdate.Status, status, ErrInvalidTransition)
	}

	playdate.Status = status
	if err := s.repo.Update(ctx, playdate); err != nil {
		log.WithError(err).Error("Failed to update playdate status in repository")
		return nil, fmt.Errorf("service: could not update playdate status: %w", err)
	}

	log.Info("Playdate status updated")
	return playdate, nil
}

// organizedPlaydate fetches a playdate and enforces that the requester organizes it.
func (s *playdateService) organizedPlaydate(ctx context.Context, requesterID, id uuid.UUID) (*models.Playdate, error) {
	playdate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch playdate: %w", err)
	}
	if playdate.OrganizerID != requesterID {
		return nil, fmt.Errorf("playdate %s: %w", id, ErrForbidden)
	}
	return playdate, nil
}

func validTransition(from, to string) bool {
	switch to {
	case models.PlaydateConfirmed:
		return from == models.PlaydatePending
	case models.PlaydateCancelled:
		return from == models.PlaydatePending || from == models.PlaydateConfirmed
	default:
		return false
	}
}
