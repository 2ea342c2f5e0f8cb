package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
)

type AdoptionRepository struct {
	db *pgxpool.Pool
}

func NewAdoptionRepository(db *pgxpool.Pool) service.AdoptionRepository {
	return &AdoptionRepository{db: db}
}

// Create inserts a new adoption listing. The unique pet_id constraint maps to
// ErrDuplicateListing.
func (r *AdoptionRepository) Create(ctx context.Context, listing *models.AdoptionListing) error {
	query := `
		INSERT INTO adoption_listings (pet_id, additional_info, adoption_requirements, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, posted_at;
	`
	err := r.db.QueryRow(ctx, query,
		listing.PetID,
		listing.AdditionalInfo,
		listing.AdoptionRequirements,
		listing.IsActive,
	).Scan(&listing.ID, &listing.PostedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrDuplicateListing
		}
		return fmt.Errorf("failed to create adoption listing: %w", err)
	}
	return nil
}

// GetByID returns a single listing.
func (r *AdoptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdoptionListing, error) {
	query := `
		SELECT id, pet_id, additional_info, adoption_requirements, is_active, posted_at
		FROM adoption_listings
		WHERE id = $1;
	`
	listing := &models.AdoptionListing{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&listing.ID,
		&listing.PetID,
		&listing.AdditionalInfo,
		&listing.AdoptionRequirements,
		&listing.IsActive,
		&listing.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("adoption listing: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get adoption listing: %w", err)
	}
	return listing, nil
}

// Update persists the editable listing fields.
func (r *AdoptionRepository) Update(ctx context.Context, listing *models.AdoptionListing) error {
	query := `
		UPDATE adoption_listings SET
			additional_info = $1,
			adoption_requirements = $2,
			is_active = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		listing.AdditionalInfo,
		listing.AdoptionRequirements,
		listing.IsActive,
		listing.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update adoption listing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("adoption listing %s: %w", listing.ID, service.ErrNotFound)
	}
	return nil
}

// Deactivate marks a listing inactive.
func (r *AdoptionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE adoption_listings SET is_active = FALSE WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate adoption listing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("adoption listing %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListActive returns active listings, newest first, with pagination.
func (r *AdoptionRepository) ListActive(ctx context.Context, page, pageSize int) ([]*models.AdoptionListing, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, pet_id, additional_info, adoption_requirements, is_active, posted_at
		FROM adoption_listings
		WHERE is_active = TRUE
		ORDER BY posted_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption listings: %w", err)
	}
	defer rows.Close()

	listings := make([]*models.AdoptionListing, 0)
	for rows.Next() {
		listing := &models.AdoptionListing{}
		err := rows.Scan(
			&listing.ID,
			&listing.PetID,
			&listing.AdditionalInfo,
			&listing.AdoptionRequirements,
			&listing.IsActive,
			&listing.PostedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adoption listing row: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adoption listings: %w", err)
	}
	return listings, nil
}
