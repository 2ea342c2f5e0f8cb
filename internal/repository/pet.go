package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
)

type PetRepository struct {
	db *pgxpool.Pool
}

func NewPetRepository(db *pgxpool.Pool) service.PetRepository {
	return &PetRepository{db: db}
}

const petColumns = `
	id, owner_id, name, species, breed, age, general_size, energy_level,
	weight, color_markings, description, is_playdate_available, is_adoptable,
	privacy_settings, created_at`

// Create inserts a new pet profile.
func (r *PetRepository) Create(ctx context.Context, pet *models.PetProfile) error {
	query := `
		INSERT INTO pets (owner_id, name, species, breed, age, general_size, energy_level, weight, color_markings, description, is_playdate_available, is_adoptable, privacy_settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		pet.OwnerID,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.Age,
		pet.GeneralSize,
		pet.EnergyLevel,
		pet.Weight,
		pet.ColorMarkings,
		pet.Description,
		pet.IsPlaydateAvailable,
		pet.IsAdoptable,
		pet.PrivacySettings,
	).Scan(&pet.ID, &pet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID returns a pet profile with its photos and traits.
func (r *PetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PetProfile, error) {
	query := `SELECT` + petColumns + ` FROM pets WHERE id = $1;`
	pet, err := scanPet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if pet.Photos, err = r.listPhotos(ctx, id); err != nil {
		return nil, err
	}
	if pet.Traits, err = r.listTraits(ctx, id); err != nil {
		return nil, err
	}
	return pet, nil
}

// Update persists pet profile fields.
func (r *PetRepository) Update(ctx context.Context, pet *models.PetProfile) error {
	query := `
		UPDATE pets SET
			name = $1,
			species = $2,
			breed = $3,
			age = $4,
			general_size = $5,
			energy_level = $6,
			weight = $7,
			color_markings = $8,
			description = $9,
			is_playdate_available = $10,
			is_adoptable = $11,
			privacy_settings = $12
		WHERE id = $13;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.Age,
		pet.GeneralSize,
		pet.EnergyLevel,
		pet.Weight,
		pet.ColorMarkings,
		pet.Description,
		pet.IsPlaydateAvailable,
		pet.IsAdoptable,
		pet.PrivacySettings,
		pet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("pet %s: %w", pet.ID, service.ErrNotFound)
	}
	return nil
}

// Delete removes a pet profile. Photos and traits go with it via ON DELETE CASCADE.
func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("pet %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListByOwner returns all pets belonging to a user, newest first.
func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PetProfile, error) {
	query := `SELECT` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	pets := make([]*models.PetProfile, 0)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}
	return pets, nil
}

// AddPhoto attaches a photo to a pet. Marking a photo primary clears the
// previous primary first.
func (r *PetRepository) AddPhoto(ctx context.Context, photo *models.PetPhoto) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin photo transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if photo.IsPrimary {
		if _, err := tx.Exec(ctx, `UPDATE pet_photos SET is_primary = FALSE WHERE pet_id = $1;`, photo.PetID); err != nil {
			return fmt.Errorf("failed to clear primary photo: %w", err)
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO pet_photos (pet_id, photo_url, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id, uploaded_at;
	`, photo.PetID, photo.PhotoURL, photo.IsPrimary).Scan(&photo.ID, &photo.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to add pet photo: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit photo transaction: %w", err)
	}
	return nil
}

// ReplaceTraits swaps a pet's trait list atomically.
func (r *PetRepository) ReplaceTraits(ctx context.Context, petID uuid.UUID, traits []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin traits transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pet_traits WHERE pet_id = $1;`, petID); err != nil {
		return fmt.Errorf("failed to clear pet traits: %w", err)
	}
	for _, trait := range traits {
		if _, err := tx.Exec(ctx, `INSERT INTO pet_traits (pet_id, trait) VALUES ($1, $2);`, petID, trait); err != nil {
			return fmt.Errorf("failed to insert pet trait: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit traits transaction: %w", err)
	}
	return nil
}

func (r *PetRepository) listPhotos(ctx context.Context, petID uuid.UUID) ([]models.PetPhoto, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pet_id, photo_url, is_primary, uploaded_at
		FROM pet_photos
		WHERE pet_id = $1
		ORDER BY is_primary DESC, uploaded_at ASC;
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet photos: %w", err)
	}
	defer rows.Close()

	photos := make([]models.PetPhoto, 0)
	for rows.Next() {
		var photo models.PetPhoto
		if err := rows.Scan(&photo.ID, &photo.PetID, &photo.PhotoURL, &photo.IsPrimary, &photo.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pet photo row: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pet photos: %w", err)
	}
	return photos, nil
}

func (r *PetRepository) listTraits(ctx context.Context, petID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT trait FROM pet_traits WHERE pet_id = $1 ORDER BY trait;`, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet traits: %w", err)
	}
	defer rows.Close()

	traits := make([]string, 0)
	for rows.Next() {
		var trait string
		if err := rows.Scan(&trait); err != nil {
			return nil, fmt.Errorf("failed to scan pet trait row: %w", err)
		}
		traits = append(traits, trait)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pet traits: %w", err)
	}
	return traits, nil
}

func scanPet(row pgx.Row) (*models.PetProfile, error) {
	pet := &models.PetProfile{}
	err := row.Scan(
		&pet.ID,
		&pet.OwnerID,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&pet.Age,
		&pet.GeneralSize,
		&pet.EnergyLevel,
		&pet.Weight,
		&pet.ColorMarkings,
		&pet.Description,
		&pet.IsPlaydateAvailable,
		&pet.IsAdoptable,
		&pet.PrivacySettings,
		&pet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pet: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan pet row: %w", err)
	}
	return pet, nil
}
