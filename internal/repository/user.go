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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, username, email, password_hash, profile_name, phone_number, bio,
	location, latitude, longitude, photo_url, created_at, updated_at`

// Create inserts a new user. Unique violations on username/email are mapped
// to the matching service sentinel.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, profile_name, phone_number, bio, location, latitude, longitude, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.ProfileName,
		user.PhoneNumber,
		user.Bio,
		user.Location,
		user.Latitude,
		user.Longitude,
		user.PhotoURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return service.ErrUsernameTaken
			case "users_email_key":
				return service.ErrEmailTaken
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID returns a user by UUID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1;`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByUsername returns a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE username = $1;`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

// Update persists profile fields.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			profile_name = $1,
			phone_number = $2,
			bio = $3,
			location = $4,
			latitude = $5,
			longitude = $6,
			photo_url = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.ProfileName,
		user.PhoneNumber,
		user.Bio,
		user.Location,
		user.Latitude,
		user.Longitude,
		user.PhotoURL,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID, service.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ProfileName,
		&user.PhoneNumber,
		&user.Bio,
		&user.Location,
		&user.Latitude,
		&user.Longitude,
		&user.PhotoURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return user, nil
}
