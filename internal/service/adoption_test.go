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

// newTestAdoptionService builds an adoption service with mocked dependencies.
func newTestAdoptionService(t *testing.T) (service.AdoptionService, *mocks.MockAdoptionRepository, *mocks.MockPetRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdoptionRepository(ctrl)
	pets := mocks.NewMockPetRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewAdoptionService(repo, pets, logger)
	return svc, repo, pets
}

func TestCreateListing_Success(t *testing.T) {
	svc, repo, pets := newTestAdoptionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID, IsAdoptable: true}, nil).
		Times(1)

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, listing *models.AdoptionListing) error {
			listing.ID = uuid.New()
			return nil
		}).
		Times(1)

	listing, err := svc.CreateListing(ctx, ownerID, petID, "House-trained senior beagle", "Fenced yard required")

	require.NoError(t, err)
	assert.Equal(t, petID, listing.PetID)
	assert.True(t, listing.IsActive)
}

func TestCreateListing_NotOwner(t *testing.T) {
	svc, _, pets := newTestAdoptionService(t)
	ctx := context.Background()
	petID := uuid.New()

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: uuid.New(), IsAdoptable: true}, nil).
		Times(1)

	_, err := svc.CreateListing(ctx, uuid.New(), petID, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateListing_PetNotAdoptable(t *testing.T) {
	svc, _, pets := newTestAdoptionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID, IsAdoptable: false}, nil).
		Times(1)

	_, err := svc.CreateListing(ctx, ownerID, petID, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPetNotAdoptable)
}

func TestCreateListing_DuplicateListing(t *testing.T) {
	svc, repo, pets := newTestAdoptionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID, IsAdoptable: true}, nil).
		Times(1)

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(service.ErrDuplicateListing).
		Times(1)

	_, err := svc.CreateListing(ctx, ownerID, petID, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrDuplicateListing)
}

func TestListListings_NormalizesPagination(t *testing.T) {
	svc, repo, _ := newTestAdoptionService(t)
	ctx := context.Background()
	expected := []*models.AdoptionListing{{ID: uuid.New()}}

	// Out-of-range values fall back to the defaults.
	repo.EXPECT().
		ListActive(ctx, 1, 20).
		Return(expected, nil).
		Times(1)

	listings, err := svc.ListListings(ctx, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, expected, listings)
}

func TestDeactivateListing_Success(t *testing.T) {
	svc, repo, pets := newTestAdoptionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	petID := uuid.New()
	listingID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, listingID).
		Return(&models.AdoptionListing{ID: listingID, PetID: petID, IsActive: true}, nil).
		Times(1)

	pets.EXPECT().
		GetByID(ctx, petID).
		Return(&models.PetProfile{ID: petID, OwnerID: ownerID}, nil).
		Times(1)

	repo.EXPECT().
		Deactivate(ctx, listingID).
		Return(nil).
		Times(1)

	err := svc.DeactivateListing(ctx, ownerID, listingID)

	require.NoError(t, err)
}
