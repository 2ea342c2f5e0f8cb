package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/geo"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/notification"
	"github.com/sirupsen/logrus"
)

// AlertFilter selects alerts at the repository level. The radius filter is
// not part of it: that is applied in memory on the fetched snapshot.
type AlertFilter struct {
	AlertType       string
	IncludeInactive bool
	Page            int
	PageSize        int
}

// AlertRepository defines the persistence contract for community alerts,
// including the Redis cache for single-alert reads.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.CommunityAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error)
	Update(ctx context.Context, alert *models.CommunityAlert) error
	List(ctx context.Context, filter AlertFilter) ([]*models.CommunityAlert, error)
	CountActiveByType(ctx context.Context) (map[string]int, error)
	GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error)
	SetAlertCache(ctx context.Context, alert *models.CommunityAlert) error
	InvalidateAlertCache(ctx context.Context, id uuid.UUID) error
}

// ListAlertsQuery is the user-facing alert listing request. RadiusKm, when
// set, restricts results to alerts within that distance of the requester's
// stored coordinates.
type ListAlertsQuery struct {
	AlertType       string
	IncludeInactive bool
	RadiusKm        *float64
	Page            int
	PageSize        int
}

// AlertService defines the business logic for community alerts.
type AlertService interface {
	CreateAlert(ctx context.Context, userID uuid.UUID, alert *models.CommunityAlert) error
	GetAlert(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error)
	UpdateAlert(ctx context.Context, requesterID uuid.UUID, alert *models.CommunityAlert) (*models.CommunityAlert, error)
	DeactivateAlert(ctx context.Context, requesterID, id uuid.UUID) error
	ListAlerts(ctx context.Context, requester *models.User, query ListAlertsQuery) ([]*models.CommunityAlert, error)
	GetStats(ctx context.Context) (map[string]int, error)
}

type alertService struct {
	repo      AlertRepository
	logger    *logrus.Logger
	publisher notification.Publisher
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger, publisher notification.Publisher) AlertService {
	return &alertService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateAlert posts a new community alert and publishes an alert.created event.
func (s *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, alert *models.CommunityAlert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAlert",
		"user_id":    userID,
		"alert_type": alert.AlertType,
	})
	log.Info("Attempting to create a community alert")

	// Contact info and a readable location are what make an alert actionable.
	if strings.TrimSpace(alert.ContactInfo) == "" {
		return fmt.Errorf("contact info is required: %w", ErrEmptyField)
	}
	if strings.TrimSpace(alert.Location) == "" {
		return fmt.Errorf("location is required: %w", ErrEmptyField)
	}

	alert.UserID = userID
	alert.IsActive = true
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	if err := s.publisher.Publish(ctx, notification.Event{
		Type:      notification.EventAlertCreated,
		ActorID:   userID,
		SubjectID: alert.ID,
		Data:      alert,
	}); err != nil {
		// Delivery is best effort; the alert itself is already stored.
		log.WithError(err).Warn("Failed to publish alert.created event")
	}

	log.WithField("alert_id", alert.ID).Info("Community alert created")
	return nil
}

// GetAlert returns an alert, serving from cache when possible.
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})

	cached, err := s.repo.GetAlertFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Alert cache lookup failed, falling back to database")
	} else if cached != nil {
		return cached, nil
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not fetch alert: %w", err)
	}

	if err := s.repo.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to cache alert")
	}
	return alert, nil
}

// UpdateAlert edits an alert's details and returns the stored record. Only
// the author may update. The active flag is untouched here: resolving an
// alert goes through DeactivateAlert.
func (s *alertService) UpdateAlert(ctx context.Context, requesterID uuid.UUID, alert *models.CommunityAlert) (*models.CommunityAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": alert.ID,
	})

	existing, err := s.ownedAlert(ctx, requesterID, alert.ID)
	if err != nil {
		return nil, err
	}

	existing.AlertType = alert.AlertType
	existing.Title = alert.Title
	existing.Description = alert.Description
	existing.PetType = alert.PetType
	existing.Size = alert.Size
	existing.ColorMarkings = alert.ColorMarkings
	existing.Location = alert.Location
	existing.Latitude = alert.Latitude
	existing.Longitude = alert.Longitude
	existing.ContactInfo = alert.ContactInfo
	existing.PhotoURL = alert.PhotoURL

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, alert.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	log.Info("Community alert updated")
	return existing, nil
}

// DeactivateAlert marks an alert resolved. Only its author may do so.
func (s *alertService) DeactivateAlert(ctx context.Context, requesterID, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeactivateAlert",
		"alert_id": id,
	})

	alert, err := s.ownedAlert(ctx, requesterID, id)
	if err != nil {
		return err
	}

	alert.IsActive = false
	if err := s.repo.Update(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to deactivate alert in repository")
		return fmt.Errorf("service: could not deactivate alert: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	log.Info("Community alert deactivated")
	return nil
}

// ListAlerts returns alerts matching the query, newest first. Type and status
// are filtered by the repository; the radius filter runs in memory over the
// fetched snapshot, in a single round-trip. With a radius set, a requester
// without stored coordinates gets an empty result: distance is undefined.
func (s *alertService) ListAlerts(ctx context.Context, requester *models.User, query ListAlertsQuery) ([]*models.CommunityAlert, error) {
	query.Page, query.PageSize = normalizePage(query.Page, query.PageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlerts",
		"alert_type": query.AlertType,
	})

	alerts, err := s.repo.List(ctx, AlertFilter{
		AlertType:       query.AlertType,
		IncludeInactive: query.IncludeInactive,
		Page:            query.Page,
		PageSize:        query.PageSize,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	if query.RadiusKm != nil {
		var origin geo.Coordinate
		originKnown := false
		if requester != nil {
			origin, originKnown = requester.Coordinates()
		}
		alerts = geo.FilterWithinRadius(origin, originKnown, *query.RadiusKm, alerts)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed")
	return alerts, nil
}

// GetStats returns the number of active alerts per alert type.
func (s *alertService) GetStats(ctx context.Context) (map[string]int, error) {
	stats, err := s.repo.CountActiveByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert stats: %w", err)
	}
	return stats, nil
}

// ownedAlert fetches an alert and enforces that the requester authored it.
func (s *alertService) ownedAlert(ctx context.Context, requesterID, id uuid.UUID) (*models.CommunityAlert, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch alert: %w", err)
	}
	if alert.UserID != requesterID {
		return nil, fmt.Errorf("alert %s: %w", id, ErrForbidden)
	}
	return alert, nil
}
