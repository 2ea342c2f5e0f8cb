package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPetService builds a pet service with a mocked repository.
func newTestPetService(t *testing.T) (service.PetService, *mocks.MockPetRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPetRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewPetService(repo, logger)
	return svc, repo
}

func TestCreatePet_Success_DefaultsPrivacyToPublic(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, pet *models.PetProfile) error {
			pet.ID = uuid.New()
			assert.Equal(t, ownerID, pet.OwnerID)
			assert.Equal(t, "PUBLIC", pet.PrivacySettings)
			return nil
		}).
		Times(1)

	pet := &models.PetProfile{Name: "Daisy", Species: "DOG", Breed: "Beagle"}
	err := svc.CreatePet(ctx, ownerID, pet)

	require.NoError(t, err)
}

func TestUpdatePet_Forbidden(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	petID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: uuid.New()}, nil).
		Times(1)

	err := svc.UpdatePet(ctx, uuid.New(), &models.PetProfile{ID: petID, Name: "Daisy"})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestUpdatePet_KeepsPrivacyWhenOmitted(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID, PrivacySettings: "PRIVATE"}, nil).
		Times(1)

	repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, pet *models.PetProfile) error {
			assert.Equal(t, "PRIVATE", pet.PrivacySettings)
			assert.Equal(t, "Daisy Mae", pet.Name)
			return nil
		}).
		Times(1)

	err := svc.UpdatePet(ctx, ownerID, &models.PetProfile{ID: petID, Name: "Daisy Mae"})

	require.NoError(t, err)
}

func TestDeletePet_NotFound(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	petID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, petID).
		Return(nil, service.ErrNotFound).
		Times(1)

	err := svc.DeletePet(ctx, uuid.New(), petID)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAddPetPhoto_Success(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID}, nil).
		Times(1)

	repo.EXPECT().
		AddPhoto(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, photo *models.PetPhoto) error {
			photo.ID = uuid.New()
			return nil
		}).
		Times(1)

	photo, err := svc.AddPetPhoto(ctx, ownerID, petID, "https://cdn.example.com/daisy.jpg", true)

	require.NoError(t, err)
	assert.Equal(t, petID, photo.PetID)
	assert.True(t, photo.IsPrimary)
}

func TestSetPetTraits_Success(t *testing.T) {
	svc, repo := newTestPetService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()
	traits := []string{"friendly", "high-energy", "good with kids"}

	repo.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID}, nil).
		Times(1)

	repo.EXPECT().
		ReplaceTraits(ctx, petID, traits).
		Return(nil).
		Times(1)

	err := svc.SetPetTraits(ctx, ownerID, petID, traits)

	require.NoError(t, err)
}
