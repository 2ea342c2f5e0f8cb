package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/sirupsen/logrus"
)

// AdoptionRepository defines the persistence contract for adoption listings.
type AdoptionRepository interface {
	Create(ctx context.Context, listing *models.AdoptionListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdoptionListing, error)
	Update(ctx context.Context, listing *models.AdoptionListing) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, page, pageSize int) ([]*models.AdoptionListing, error)
}

// AdoptionService defines the business logic for adoption listings.
type AdoptionService interface {
	CreateListing(ctx context.Context, requesterID, petID uuid.UUID, additionalInfo, requirements string) (*models.AdoptionListing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*models.AdoptionListing, error)
	ListListings(ctx context.Context, page, pageSize int) ([]*models.AdoptionListing, error)
	UpdateListing(ctx context.Context, requesterID, id uuid.UUID, additionalInfo, requirements string) (*models.AdoptionListing, error)
	DeactivateListing(ctx context.Context, requesterID, id uuid.UUID) error
}

type adoptionService struct {
	repo   AdoptionRepository
	pets   PetRepository
	logger *logrus.Logger
}

func NewAdoptionService(repo AdoptionRepository, pets PetRepository, logger *logrus.Logger) AdoptionService {
	return &adoptionService{repo: repo, pets: pets, logger: logger}
}

// CreateListing posts a pet for adoption. The requester must own the pet and
// the pet must be marked adoptable; a pet can have at most one listing.
func (s *adoptionService) CreateListing(ctx context.Context, requesterID, petID uuid.UUID, additionalInfo, requirements string) (*models.AdoptionListing, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "adoption",
		"method":  "CreateListing",
		"pet_id":  petID,
	})

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch pet for listing: %w", err)
	}
	if pet.OwnerID != requesterID {
		log.Warn("Listing attempt by non-owner")
		return nil, fmt.Errorf("pet %s: %w", petID, ErrForbidden)
	}
	if !pet.IsAdoptable {
		return nil, fmt.Errorf("pet %s: %w", petID, ErrPetNotAdoptable)
	}

	listing := &models.AdoptionListing{
		PetID:                petID,
		AdditionalInfo:       additionalInfo,
		AdoptionRequirements: requirements,
		IsActive:             true,
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		if errors.Is(err, ErrDuplicateListing) {
			return nil, err
		}
		log.WithError(err).Error("Failed to create adoption listing in repository")
		return nil, fmt.Errorf("service: could not create adoption listing: %w", err)
	}

	log.WithField("listing_id", listing.ID).Info("Adoption listing created")
	return listing, nil
}

// GetListing returns a single adoption listing.
func (s *adoptionService) GetListing(ctx context.Context, id uuid.UUID) (*models.AdoptionListing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch adoption listing: %w", err)
	}
	return listing, nil
}

// ListListings returns active listings, newest first, with pagination.
func (s *adoptionService) ListListings(ctx context.Context, page, pageSize int) ([]*models.AdoptionListing, error) {
	page, pageSize = normalizePage(page, pageSize)

	listings, err := s.repo.ListActive(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list adoption listings: %w", err)
	}
	return listings, nil
}

// UpdateListing edits a listing. Only the pet's owner may update.
func (s *adoptionService) UpdateListing(ctx context.Context, requesterID, id uuid.UUID, additionalInfo, requirements string) (*models.AdoptionListing, error) {
	listing, err := s.ownedListing(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	listing.AdditionalInfo = additionalInfo
	listing.AdoptionRequirements = requirements
	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("service: could not update adoption listing: %w", err)
	}
	return listing, nil
}

// DeactivateListing marks a listing inactive. Only the pet's owner may do so.
func (s *adoptionService) DeactivateListing(ctx context.Context, requesterID, id uuid.UUID) error {
	if _, err := s.ownedListing(ctx, requesterID, id); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("service: could not deactivate adoption listing: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":    "adoption",
		"listing_id": id,
	}).Info("Adoption listing deactivated")
	return nil
}

// ownedListing fetches a listing and enforces that the requester owns its pet.
func (s *adoptionService) ownedListing(ctx context.Context, requesterID, id uuid.UUID) (*models.AdoptionListing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch adoption listing: %w", err)
	}

	pet, err := s.pets.GetByID(ctx, listing.PetID)
	if err != nil {
		return nil, fmt.Errorf("service: could not fetch listed pet: %w", err)
	}
	if pet.OwnerID != requesterID {
		return nil, fmt.Errorf("listing %s: %w", id, ErrForbidden)
	}
	return listing, nil
}
