package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/sirupsen/logrus"
)

// PetRepository defines the persistence contract for pet profiles.
// GetByID loads the profile together with its photos and traits.
type PetRepository interface {
	Create(ctx context.Context, pet *models.PetProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PetProfile, error)
	Update(ctx context.Context, pet *models.PetProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PetProfile, error)
	AddPhoto(ctx context.Context, photo *models.PetPhoto) error
	ReplaceTraits(ctx context.Context, petID uuid.UUID, traits []string) error
}

// PetService defines the business logic for pet profiles.
type PetService interface {
	CreatePet(ctx context.Context, ownerID uuid.UUID, pet *models.PetProfile) error
	GetPet(ctx context.Context, id uuid.UUID) (*models.PetProfile, error)
	UpdatePet(ctx context.Context, requesterID uuid.UUID, pet *models.PetProfile) error
	DeletePet(ctx context.Context, requesterID, id uuid.UUID) error
	ListPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PetProfile, error)
	AddPetPhoto(ctx context.Context, requesterID, petID uuid.UUID, photoURL string, isPrimary bool) (*models.PetPhoto, error)
	SetPetTraits(ctx context.Context, requesterID, petID uuid.UUID, traits []string) error
}

type petService struct {
	repo   PetRepository
	logger *logrus.Logger
}

func NewPetService(repo PetRepository, logger *logrus.Logger) PetService {
	return &petService{repo: repo, logger: logger}
}

// CreatePet creates a pet profile owned by the requester.
func (s *petService) CreatePet(ctx context.Context, ownerID uuid.UUID, pet *models.PetProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "pet",
		"method":   "CreatePet",
		"owner_id": ownerID,
		"name":     pet.Name,
	})

	pet.OwnerID = ownerID
	if pet.PrivacySettings == "" {
		pet.PrivacySettings = "PUBLIC"
	}
	if err := s.repo.Create(ctx, pet); err != nil {
		log.WithError(err).Error("Failed to create pet in repository")
		return fmt.Errorf("service: could not create pet: %w", err)
	}

	log.WithField("pet_id", pet.ID).Info("Pet profile created")
	return nil
}

// GetPet returns a pet profile with its photos and traits.
func (s *petService) GetPet(ctx context.Context, id uuid.UUID) (*models.PetProfile, error) {
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch pet: %w", err)
	}
	return pet, nil
}

// UpdatePet updates a pet profile. Only the owner may update.
func (s *petService) UpdatePet(ctx context.Context, requesterID uuid.UUID, pet *models.PetProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pet",
		"method":  "UpdatePet",
		"pet_id":  pet.ID,
	})

	existing, err := s.ownedPet(ctx, requesterID, pet.ID)
	if err != nil {
		return err
	}

	existing.Name = pet.Name
	existing.Species = pet.Species
	existing.Breed = pet.Breed
	existing.Age = pet.Age
	existing.GeneralSize = pet.GeneralSize
	existing.EnergyLevel = pet.EnergyLevel
	existing.Weight = pet.Weight
	existing.ColorMarkings = pet.ColorMarkings
	existing.Description = pet.Description
	existing.IsPlaydateAvailable = pet.IsPlaydateAvailable
	existing.IsAdoptable = pet.IsAdoptable
	if pet.PrivacySettings != "" {
		existing.PrivacySettings = pet.PrivacySettings
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update pet in repository")
		return fmt.Errorf("service: could not update pet: %w", err)
	}

	log.Info("Pet profile updated")
	return nil
}

// DeletePet removes a pet profile. Only the owner may delete.
func (s *petService) DeletePet(ctx context.Context, requesterID, id uuid.UUID) error {
	if _, err := s.ownedPet(ctx, requesterID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete pet: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "pet",
		"pet_id":  id,
	}).Info("Pet profile deleted")
	return nil
}

// ListPetsByOwner returns all pets belonging to a user.
func (s *petService) ListPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PetProfile, error) {
	pets, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list pets: %w", err)
	}
	return pets, nil
}

// AddPetPhoto attaches a photo URL to a pet. Only the owner may add photos.
func (s *petService) AddPetPhoto(ctx context.Context, requesterID, petID uuid.UUID, photoURL string, isPrimary bool) (*models.PetPhoto, error) {
	if _, err := s.ownedPet(ctx, requesterID, petID); err != nil {
		return nil, err
	}

	photo := &models.PetPhoto{
		PetID:     petID,
		PhotoURL:  photoURL,
		IsPrimary: isPrimary,
	}
	if err := s.repo.AddPhoto(ctx, photo); err != nil {
		return nil, fmt.Errorf("service: could not add pet photo: %w", err)
	}
	return photo, nil
}

// SetPetTraits replaces a pet's trait list. Only the owner may change traits.
func (s *petService) SetPetTraits(ctx context.Context, requesterID, petID uuid.UUID, traits []string) error {
	if _, err := s.ownedPet(ctx, requesterID, petID); err != nil {
		return err
	}

	if err := s.repo.ReplaceTraits(ctx, petID, traits); err != nil {
		return fmt.Errorf("service: could not set pet traits: %w", err)
	}
	return nil
}

// ownedPet fetches a pet and enforces that the requester owns it.
func (s *petService) ownedPet(ctx context.Context, requesterID, petID uuid.UUID) (*models.PetProfile, error) {
	pet, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch pet: %w", err)
	}
	if pet.OwnerID != requesterID {
		return nil, fmt.Errorf("pet %s: %w", petID, ErrForbidden)
	}
	return pet, nil
}
