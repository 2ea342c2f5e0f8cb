package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps opaque session tokens in Redis with a TTL.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionStore(redisClient *redis.Client, ttl time.Duration) service.SessionStore {
	return &SessionStore{redisClient: redisClient, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create stores the token with the session TTL.
func (s *SessionStore) Create(ctx context.Context, token string, userID uuid.UUID) error {
	if err := s.redisClient.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get resolves a token to its user ID. Missing or expired tokens return ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, service.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse session user id: %w", err)
	}
	return userID, nil
}

// Delete removes the token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
