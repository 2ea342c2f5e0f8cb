package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/notification"
	"github.com/sirupsen/logrus"
)

// MessageRepository defines the persistence contract for direct messaging.
type MessageRepository interface {
	CreateThread(ctx context.Context, thread *models.MessageThread) error
	GetThreadByID(ctx context.Context, id uuid.UUID) (*models.MessageThread, error)
	GetThreadByUsers(ctx context.Context, userA, userB uuid.UUID) (*models.MessageThread, error)
	ListThreadsForUser(ctx context.Context, userID uuid.UUID) ([]*models.MessageThread, error)
	CreateMessage(ctx context.Context, message *models.Message) error
	ListMessagesByThread(ctx context.Context, threadID uuid.UUID) ([]*models.Message, error)
	MarkMessagesRead(ctx context.Context, threadID, readerID uuid.UUID) error
}

// MessagingService defines the business logic for direct messaging.
type MessagingService interface {
	GetOrCreateThread(ctx context.Context, requesterID, otherID uuid.UUID, playdateID *uuid.UUID) (*models.MessageThread, error)
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*models.MessageThread, error)
	SendMessage(ctx context.Context, requesterID, threadID uuid.UUID, text, photoURL string) (*models.Message, error)
	ListMessages(ctx context.Context, requesterID, threadID uuid.UUID) ([]*models.Message, error)
}

type messagingService struct {
	repo      MessageRepository
	users     UserRepository
	logger    *logrus.Logger
	publisher notification.Publisher
}

func NewMessagingService(repo MessageRepository, users UserRepository, logger *logrus.Logger, publisher notification.Publisher) MessagingService {
	return &messagingService{
		repo:      repo,
		users:     users,
		logger:    logger,
		publisher: publisher,
	}
}

// GetOrCreateThread returns the thread between the requester and the other
// user, creating it on first contact. The pair is normalized so the same two
// users always share one thread regardless of who opened it.
func (s *messagingService) GetOrCreateThread(ctx context.Context, requesterID, otherID uuid.UUID, playdateID *uuid.UUID) (*models.MessageThread, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "messaging",
		"method":   "GetOrCreateThread",
		"user_id":  requesterID,
		"other_id": otherID,
	})

	if requesterID == otherID {
		return nil, ErrSelfThread
	}

	// The other participant must exist.
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", otherID, ErrNotFound)
		}
		return nil, fmt.Errorf("service: could not fetch thread participant: %w", err)
	}

	userA, userB := normalizePair(requesterID, otherID)
	thread, err := s.repo.GetThreadByUsers(ctx, userA, userB)
	if err == nil {
		return thread, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to look up thread")
		return nil, fmt.Errorf("service: could not look up thread: %w", err)
	}

	thread = &models.MessageThread{
		UserAID:    userA,
		UserBID:    userB,
		PlaydateID: playdateID,
	}
	if err := s.repo.CreateThread(ctx, thread); err != nil {
		// Two first-contact requests can race the insert; the unique pair
		// constraint catches the loser, who picks up the winner's thread.
		if errors.Is(err, ErrDuplicateThread) {
			thread, err = s.repo.GetThreadByUsers(ctx, userA, userB)
			if err != nil {
				return nil, fmt.Errorf("service: could not look up thread: %w", err)
			}
			return thread, nil
		}
		log.WithError(err).Error("Failed to create thread in repository")
		return nil, fmt.Errorf("service: could not create thread: %w", err)
	}

	log.WithField("thread_id", thread.ID).Info("Message thread created")
	return thread, nil
}

// ListThreads returns the user's threads, most recently active first.
func (s *messagingService) ListThreads(ctx context.Context, userID uuid.UUID) ([]*models.MessageThread, error) {
	threads, err := s.repo.ListThreadsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list threads: %w", err)
	}
	return threads, nil
}

// SendMessage posts a message to a thread the requester participates in.
// Text or a photo URL is required. A message.sent event is published so the
// recipient can be notified.
func (s *messagingService) SendMessage(ctx context.Context, requesterID, threadID uuid.UUID, text, photoURL string) (*models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "messaging",
		"method":    "SendMessage",
		"thread_id": threadID,
		"sender_id": requesterID,
	})

	if strings.TrimSpace(text) == "" && strings.TrimSpace(photoURL) == "" {
		return nil, ErrEmptyMessage
	}

	thread, err := s.participantThread(ctx, requesterID, threadID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ThreadID: threadID,
		SenderID: requesterID,
		Text:     text,
		PhotoURL: photoURL,
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		log.WithError(err).Error("Failed to create message in repository")
		return nil, fmt.Errorf("service: could not send message: %w", err)
	}

	recipient := thread.UserAID
	if recipient == requesterID {
		recipient = thread.UserBID
	}
	if err := s.publisher.Publish(ctx, notification.Event{
		Type:      notification.EventMessageSent,
		ActorID:   requesterID,
		SubjectID: recipient,
		Data:      message,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish message.sent event")
	}

	log.WithField("message_id", message.ID).Info("Message sent")
	return message, nil
}

// ListMessages returns a thread's messages, oldest first, and marks the other
// participant's messages as read.
func (s *messagingService) ListMessages(ctx context.Context, requesterID, threadID uuid.UUID) ([]*models.Message, error) {
	if _, err := s.participantThread(ctx, requesterID, threadID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessagesByThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}

	if err := s.repo.MarkMessagesRead(ctx, threadID, requesterID); err != nil {
		// Reading still succeeded; the unread flags will catch up next time.
		s.logger.WithError(err).Warn("Failed to mark messages read")
	}
	return messages, nil
}

// participantThread fetches a thread and enforces that the requester belongs to it.
func (s *messagingService) participantThread(ctx context.Context, requesterID, threadID uuid.UUID) (*models.MessageThread, error) {
	thread, err := s.repo.GetThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch thread: %w", err)
	}
	if !thread.HasParticipant(requesterID) {
		return nil, fmt.Errorf("thread %s: %w", threadID, ErrForbidden)
	}
	return thread, nil
}

// normalizePair orders two user IDs so a pair is always stored the same way.
func normalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}
