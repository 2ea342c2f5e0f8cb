package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPlaydateService builds a playdate service with mocked dependencies.
func newTestPlaydateService(t *testing.T) (service.PlaydateService, *mocks.MockPlaydateRepository, *mocks.MockPetRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlaydateRepository(ctrl)
	pets := mocks.NewMockPetRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewPlaydateService(repo, pets, logger)
	return svc, repo, pets
}

func TestCreatePlaydate_Success(t *testing.T) {
	svc, repo, pets := newTestPlaydateService(t)
	ctx := context.Background()
	organizerID := uuid.New()
	petID := uuid.New()
	scheduled := time.Now().Add(48 * time.Hour)

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, IsPlaydateAvailable: true}, nil).
		Times(1)

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, playdate *models.Playdate) error {
			playdate.ID = uuid.New()
			return nil
		}).
		Times(1)

	playdate, err := svc.CreatePlaydate(ctx, organizerID, petID, scheduled, "Prospect Park dog run")

	require.NoError(t, err)
	assert.Equal(t, organizerID, playdate.OrganizerID)
	assert.Equal(t, models.PlaydatePending, playdate.Status)
}

func TestCreatePlaydate_BlankLocation(t *testing.T) {
	svc, _, _ := newTestPlaydateService(t)
	ctx := context.Background()

	_, err := svc.CreatePlaydate(ctx, uuid.New(), uuid.New(), time.Now().Add(time.Hour), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmptyField)
}

func TestCreatePlaydate_TimeInPast(t *testing.T) {
	svc, _, _ := newTestPlaydateService(t)
	ctx := context.Background()

	_, err := svc.CreatePlaydate(ctx, uuid.New(), uuid.New(), time.Now().Add(-time.Hour), "Prospect Park")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPastPlaydate)
}

func TestCreatePlaydate_PetNotAvailable(t *testing.T) {
	svc, _, pets := newTestPlaydateService(t)
	ctx := context.Background()
	petID := uuid.New()

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, IsPlaydateAvailable: false}, nil).
		Times(1)

	_, err := svc.CreatePlaydate(ctx, uuid.New(), petID, time.Now().Add(time.Hour), "Prospect Park")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPetNotAvailable)
}

func TestUpdatePlaydate_Forbidden(t *testing.T) {
	svc, repo, _ := newTestPlaydateService(t)
	ctx := context.Background()
	playdateID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, playdateID).
		Return(&models.Playdate{ID: playdateID, OrganizerID: uuid.New()}, nil).
		Times(1)

	_, err := svc.UpdatePlaydate(ctx, uuid.New(), playdateID, time.Now().Add(time.Hour), "Central Park")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestUpdateStatus_PendingToConfirmed(t *testing.T) {
	svc, repo, _ := newTestPlaydateService(t)
	ctx := context.Background()
	organizerID := uuid.New()
	playdateID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, playdateID).
		Return(&models.Playdate{ID: playdateID, OrganizerID: organizerID, Status: models.PlaydatePending}, nil).
		Times(1)

	repo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	playdate, err := svc.UpdateStatus(ctx, organizerID, playdateID, models.PlaydateConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.PlaydateConfirmed, playdate.Status)
}

func TestUpdateStatus_ConfirmedToCancelled(t *testing.T) {
	svc, repo, _ := newTestPlaydateService(t)
	ctx := context.Background()
	organizerID := uuid.New()
	playdateID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, playdateID).
		Return(&models.Playdate{ID: playdateID, OrganizerID: organizerID, Status: models.PlaydateConfirmed}, nil).
		Times(1)

	repo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	playdate, err := svc.UpdateStatus(ctx, organizerID, playdateID, models.PlaydateCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.PlaydateCancelled, playdate.Status)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	svc, repo, _ := newTestPlaydateService(t)
	ctx := context.Background()
	organizerID := uuid.New()
	playdateID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, playdateID).
		Return(&models.Playdate{ID: playdateID, OrganizerID: organizerID, Status: models.PlaydateCancelled}, nil).
		Times(1)

	_, err := svc.UpdateStatus(ctx, organizerID, playdateID, models.PlaydateConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}
