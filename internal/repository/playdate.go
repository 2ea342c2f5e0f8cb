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

type PlaydateRepository struct {
	db *pgxpool.Pool
}

func NewPlaydateRepository(db *pgxpool.Pool) service.PlaydateRepository {
	return &PlaydateRepository{db: db}
}

const playdateColumns = `id, pet_id, organizer_id, scheduled_time, location, status, created_at`

// Create inserts a new playdate.
func (r *PlaydateRepository) Create(ctx context.Context, playdate *models.Playdate) error {
	query := `
		INSERT INTO playdates (pet_id, organizer_id, scheduled_time, location, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		playdate.PetID,
		playdate.OrganizerID,
		playdate.ScheduledTime,
		playdate.Location,
		playdate.Status,
	).Scan(&playdate.ID, &playdate.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create playdate: %w", err)
	}
	return nil
}

// GetByID returns a playdate by UUID.
func (r *PlaydateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Playdate, error) {
	query := `SELECT ` + playdateColumns + ` FROM playdates WHERE id = $1;`
	return scanPlaydate(r.db.QueryRow(ctx, query, id))
}

// Update persists schedule, location and status.
func (r *PlaydateRepository) Update(ctx context.Context, playdate *models.Playdate) error {
	query := `
		UPDATE playdates SET
			scheduled_time = $1,
			location = $2,
			status = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		playdate.ScheduledTime,
		playdate.Location,
		playdate.Status,
		playdate.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update playdate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("playdate %s: %w", playdate.ID, service.ErrNotFound)
	}
	return nil
}

// ListByOrganizer returns the user's playdates, soonest first.
func (r *PlaydateRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*models.Playdate, error) {
	query := `
		SELECT ` + playdateColumns + `
		FROM playdates
		WHERE organizer_id = $1
		ORDER BY scheduled_time ASC;
	`
	rows, err := r.db.Query(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playdates: %w", err)
	}
	defer rows.Close()

	playdates := make([]*models.Playdate, 0)
	for rows.Next() {
		playdate, err := scanPlaydate(rows)
		if err != nil {
			return nil, err
		}
		playdates = append(playdates, playdate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playdates: %w", err)
	}
	return playdates, nil
}

func scanPlaydate(row pgx.Row) (*models.Playdate, error) {
	playdate := &models.Playdate{}
	err := row.Scan(
		&playdate.ID,
		&playdate.PetID,
		&playdate.OrganizerID,
		&playdate.ScheduledTime,
		&playdate.Location,
		&playdate.Status,
		&playdate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("playdate: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan playdate row: %w", err)
	}
	return playdate, nil
}
