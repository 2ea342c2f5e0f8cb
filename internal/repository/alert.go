package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/redis/go-redis/v9"
)

const alertCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const alertColumns = `
	id, user_id, alert_type, title, description, pet_type, size, color_markings,
	location, latitude, longitude, contact_info, photo_url, is_active, created_at`

// Create inserts a new community alert.
func (r *AlertRepository) Create(ctx context.Context, alert *models.CommunityAlert) error {
	query := `
		INSERT INTO community_alerts (user_id, alert_type, title, description, pet_type, size, color_markings, location, latitude, longitude, contact_info, photo_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.UserID,
		alert.AlertType,
		alert.Title,
		alert.Description,
		alert.PetType,
		alert.Size,
		alert.ColorMarkings,
		alert.Location,
		alert.Latitude,
		alert.Longitude,
		alert.ContactInfo,
		alert.PhotoURL,
		alert.IsActive,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID returns an alert by UUID.
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error) {
	query := `SELECT` + alertColumns + ` FROM community_alerts WHERE id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Update persists alert fields.
func (r *AlertRepository) Update(ctx context.Context, alert *models.CommunityAlert) error {
	query := `
		UPDATE community_alerts SET
			title = $1,
			description = $2,
			pet_type = $3,
			size = $4,
			color_markings = $5,
			location = $6,
			latitude = $7,
			longitude = $8,
			contact_info = $9,
			photo_url = $10,
			is_active = $11
		WHERE id = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.Title,
		alert.Description,
		alert.PetType,
		alert.Size,
		alert.ColorMarkings,
		alert.Location,
		alert.Latitude,
		alert.Longitude,
		alert.ContactInfo,
		alert.PhotoURL,
		alert.IsActive,
		alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s: %w", alert.ID, service.ErrNotFound)
	}
	return nil
}

// List returns alerts matching the filter, newest first, with pagination.
// The radius filter is deliberately not handled here: the service filters the
// returned snapshot in memory.
func (r *AlertRepository) List(ctx context.Context, filter service.AlertFilter) ([]*models.CommunityAlert, error) {
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT` + alertColumns + `
		FROM community_alerts
		WHERE ($1 = '' OR alert_type = $1)
		  AND ($2 OR is_active = TRUE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, filter.AlertType, filter.IncludeInactive, filter.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.CommunityAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

// CountActiveByType returns the number of active alerts per alert type.
func (r *AlertRepository) CountActiveByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT alert_type, COUNT(*)
		FROM community_alerts
		WHERE is_active = TRUE
		GROUP BY alert_type;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts by type: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var alertType string
		var count int
		if err := rows.Scan(&alertType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan alert stats row: %w", err)
		}
		stats[alertType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert stats: %w", err)
	}
	return stats, nil
}

func alertCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("alert:%s", id.String())
}

// GetAlertFromCache tries to fetch an alert from Redis. A cache miss returns (nil, nil).
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.CommunityAlert, error) {
	val, err := r.redisClient.Get(ctx, alertCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.CommunityAlert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache stores an alert in Redis with a short TTL.
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.CommunityAlert) error {
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, alertCacheKey(alert.ID), val, alertCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// InvalidateAlertCache drops an alert from the Redis cache.
func (r *AlertRepository) InvalidateAlertCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, alertCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}

func scanAlert(row pgx.Row) (*models.CommunityAlert, error) {
	alert := &models.CommunityAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.UserID,
		&alert.AlertType,
		&alert.Title,
		&alert.Description,
		&alert.PetType,
		&alert.Size,
		&alert.ColorMarkings,
		&alert.Location,
		&alert.Latitude,
		&alert.Longitude,
		&alert.ContactInfo,
		&alert.PhotoURL,
		&alert.IsActive,
		&alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan alert row: %w", err)
	}
	return alert, nil
}
