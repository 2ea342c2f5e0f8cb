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

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) service.MessageRepository {
	return &MessageRepository{db: db}
}

const threadColumns = `id, user_a_id, user_b_id, playdate_id, created_at, updated_at`

// CreateThread inserts a new message thread.
func (r *MessageRepository) CreateThread(ctx context.Context, thread *models.MessageThread) error {
	query := `
		INSERT INTO message_threads (user_a_id, user_b_id, playdate_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, thread.UserAID, thread.UserBID, thread.PlaydateID).
		Scan(&thread.ID, &thread.CreatedAt, &thread.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrDuplicateThread
		}
		return fmt.Errorf("failed to create thread: %w", err)
	}
	return nil
}

// GetThreadByID returns a thread by UUID.
func (r *MessageRepository) GetThreadByID(ctx context.Context, id uuid.UUID) (*models.MessageThread, error) {
	query := `SELECT ` + threadColumns + ` FROM message_threads WHERE id = $1;`
	return scanThread(r.db.QueryRow(ctx, query, id))
}

// GetThreadByUsers returns the thread for a normalized user pair.
func (r *MessageRepository) GetThreadByUsers(ctx context.Context, userA, userB uuid.UUID) (*models.MessageThread, error) {
	query := `SELECT ` + threadColumns + ` FROM message_threads WHERE user_a_id = $1 AND user_b_id = $2;`
	return scanThread(r.db.QueryRow(ctx, query, userA, userB))
}

// ListThreadsForUser returns the user's threads, most recently active first.
func (r *MessageRepository) ListThreadsForUser(ctx context.Context, userID uuid.UUID) ([]*models.MessageThread, error) {
	query := `
		SELECT ` + threadColumns + `
		FROM message_threads
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	threads := make([]*models.MessageThread, 0)
	for rows.Next() {
		thread, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}
	return threads, nil
}

// CreateMessage inserts a message and bumps its thread's updated_at.
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin message transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO messages (thread_id, sender_id, text, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`, message.ThreadID, message.SenderID, message.Text, message.PhotoURL).
		Scan(&message.ID, &message.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE message_threads SET updated_at = NOW() WHERE id = $1;`, message.ThreadID); err != nil {
		return fmt.Errorf("failed to touch thread: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit message transaction: %w", err)
	}
	return nil
}

// ListMessagesByThread returns a thread's messages, oldest first.
func (r *MessageRepository) ListMessagesByThread(ctx context.Context, threadID uuid.UUID) ([]*models.Message, error) {
	query := `
		SELECT id, thread_id, sender_id, text, photo_url, created_at, is_read
		FROM messages
		WHERE thread_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		message := &models.Message{}
		err := rows.Scan(
			&message.ID,
			&message.ThreadID,
			&message.SenderID,
			&message.Text,
			&message.PhotoURL,
			&message.Timestamp,
			&message.IsRead,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}

// MarkMessagesRead flags the other participant's messages as read.
func (r *MessageRepository) MarkMessagesRead(ctx context.Context, threadID, readerID uuid.UUID) error {
	query := `
		UPDATE messages SET is_read = TRUE
		WHERE thread_id = $1 AND sender_id <> $2 AND is_read = FALSE;
	`
	if _, err := r.db.Exec(ctx, query, threadID, readerID); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func scanThread(row pgx.Row) (*models.MessageThread, error) {
	thread := &models.MessageThread{}
	err := row.Scan(
		&thread.ID,
		&thread.UserAID,
		&thread.UserBID,
		&thread.PlaydateID,
		&thread.CreatedAt,
		&thread.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("thread: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan thread row: %w", err)
	}
	return thread, nil
}
