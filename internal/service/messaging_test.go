package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/notification"
	notification_mocks "github.com/petnextdoor/pet_next_door/internal/notification/mocks"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messagingServiceMocks struct {
	repo      *mocks.MockMessageRepository
	users     *mocks.MockUserRepository
	publisher *notification_mocks.MockPublisher
}

// newTestMessagingService builds a messaging service with mocked dependencies.
func newTestMessagingService(t *testing.T) (service.MessagingService, messagingServiceMocks) {
	ctrl := gomock.NewController(t)
	deps := messagingServiceMocks{
		repo:      mocks.NewMockMessageRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		publisher: notification_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewMessagingService(deps.repo, deps.users, logger, deps.publisher)
	return svc, deps
}

func TestGetOrCreateThread_SelfThread(t *testing.T) {
	svc, _ := newTestMessagingService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.GetOrCreateThread(ctx, userID, userID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSelfThread)
}

func TestGetOrCreateThread_OtherUserMissing(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	otherID := uuid.New()

	deps.users.EXPECT().
		GetByID(ctx, otherID).
		Return(nil, service.ErrNotFound).
		Times(1)

	_, err := svc.GetOrCreateThread(ctx, uuid.New(), otherID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetOrCreateThread_ReturnsExisting(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	otherID := uuid.New()
	existing := &models.MessageThread{ID: uuid.New()}

	deps.users.EXPECT().
		GetByID(ctx, otherID).
		Return(&models.User{ID: otherID}, nil).
		Times(1)

	deps.repo.EXPECT().
		GetThreadByUsers(ctx, gomock.Any(), gomock.Any()).
		Return(existing, nil).
		Times(1)

	thread, err := svc.GetOrCreateThread(ctx, requesterID, otherID, nil)

	require.NoError(t, err)
	assert.Equal(t, existing, thread)
}

func TestGetOrCreateThread_NormalizesPair(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	requesterID := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	otherID := uuid.MustParse("00000000-0000-0000-0000-00000000ffff")

	deps.users.EXPECT().
		GetByID(ctx, otherID).
		Return(&models.User{ID: otherID}, nil).
		Times(1)

	// The lexically smaller ID must land in the first slot even though the
	// requester supplied them the other way round.
	deps.repo.EXPECT().
		GetThreadByUsers(ctx, otherID, requesterID).
		Return(nil, service.ErrNotFound).
		Times(1)

	deps.repo.EXPECT().
		CreateThread(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, thread *models.MessageThread) error {
			thread.ID = uuid.New()
			assert.Equal(t, otherID, thread.UserAID)
			assert.Equal(t, requesterID, thread.UserBID)
			return nil
		}).
		Times(1)

	thread, err := svc.GetOrCreateThread(ctx, requesterID, otherID, nil)

	require.NoError(t, err)
	require.NotNil(t, thread)
}

func TestGetOrCreateThread_LosingInsertRaceReturnsWinner(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	requesterID := uuid.MustParse("00000000-0000-0000-0000-00000000aaaa")
	otherID := uuid.MustParse("00000000-0000-0000-0000-00000000bbbb")
	winner := &models.MessageThread{ID: uuid.New(), UserAID: requesterID, UserBID: otherID}

	deps.users.EXPECT().
		GetByID(ctx, otherID).
		Return(&models.User{ID: otherID}, nil).
		Times(1)

	// A concurrent first-contact request created the thread between the
	// lookup miss and the insert.
	deps.repo.EXPECT().
		GetThreadByUsers(ctx, requesterID, otherID).
		Return(nil, service.ErrNotFound).
		Times(1)

	deps.repo.EXPECT().
		CreateThread(ctx, gomock.Any()).
		Return(service.ErrDuplicateThread).
		Times(1)

	deps.repo.EXPECT().
		GetThreadByUsers(ctx, requesterID, otherID).
		Return(winner, nil).
		Times(1)

	thread, err := svc.GetOrCreateThread(ctx, requesterID, otherID, nil)

	require.NoError(t, err)
	assert.Equal(t, winner, thread)
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	svc, _ := newTestMessagingService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, uuid.New(), uuid.New(), "   ", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmptyMessage)
}

func TestSendMessage_NotAParticipant(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	threadID := uuid.New()

	deps.repo.EXPECT().
		GetThreadByID(ctx, threadID).
		Return(&models.MessageThread{ID: threadID, UserAID: uuid.New(), UserBID: uuid.New()}, nil).
		Times(1)

	_, err := svc.SendMessage(ctx, uuid.New(), threadID, "hello", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestSendMessage_Success_NotifiesRecipient(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	threadID := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()

	deps.repo.EXPECT().
		GetThreadByID(ctx, threadID).
		Return(&models.MessageThread{ID: threadID, UserAID: sender, UserBID: recipient}, nil).
		Times(1)

	deps.repo.EXPECT().
		CreateMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, message *models.Message) error {
			message.ID = uuid.New()
			return nil
		}).
		Times(1)

	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, notification.EventMessageSent, event.Type)
			assert.Equal(t, sender, event.ActorID)
			assert.Equal(t, recipient, event.SubjectID)
			return nil
		}).
		Times(1)

	message, err := svc.SendMessage(ctx, sender, threadID, "see you at the dog run", "")

	require.NoError(t, err)
	assert.Equal(t, threadID, message.ThreadID)
	assert.Equal(t, sender, message.SenderID)
}

func TestListMessages_MarksRead(t *testing.T) {
	svc, deps := newTestMessagingService(t)
	ctx := context.Background()
	threadID := uuid.New()
	reader := uuid.New()
	expected := []*models.Message{
		{ID: uuid.New(), ThreadID: threadID, Text: "first"},
		{ID: uuid.New(), ThreadID: threadID, Text: "second"},
	}

	deps.repo.EXPECT().
		GetThreadByID(ctx, threadID).
		Return(&models.MessageThread{ID: threadID, UserAID: reader, UserBID: uuid.New()}, nil).
		Times(1)

	deps.repo.EXPECT().
		ListMessagesByThread(ctx, threadID).
		Return(expected, nil).
		Times(1)

	deps.repo.EXPECT().
		MarkMessagesRead(ctx, threadID, reader).
		Return(nil).
		Times(1)

	messages, err := svc.ListMessages(ctx, reader, threadID)

	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}
