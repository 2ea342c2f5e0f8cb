package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/geocoding"
	geocoding_mocks "github.com/petnextdoor/pet_next_door/internal/geocoding/mocks"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userServiceMocks struct {
	repo     *mocks.MockUserRepository
	sessions *mocks.MockSessionStore
	geocoder *geocoding_mocks.MockGeocoder
	iplocate *geocoding_mocks.MockIPLocator
}

// newTestUserService builds a user service with mocked dependencies.
func newTestUserService(t *testing.T) (service.UserService, userServiceMocks) {
	ctrl := gomock.NewController(t)
	deps := userServiceMocks{
		repo:     mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionStore(ctrl),
		geocoder: geocoding_mocks.NewMockGeocoder(ctrl),
		iplocate: geocoding_mocks.NewMockIPLocator(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewUserService(deps.repo, deps.sessions, deps.geocoder, deps.iplocate, logger)
	return svc, deps
}

func TestRegister_Success_WithBrowserCoordinates(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	input := service.RegisterInput{
		Username:    "daisy_owner",
		Email:       "Daisy.Owner@Example.com",
		Password:    "correct horse battery",
		ProfileName: "Daisy's Human",
		Latitude:    floatPtr(40.712776),
		Longitude:   floatPtr(-74.005974),
	}

	deps.geocoder.EXPECT().
		ReverseGeocode(ctx, 40.712776, -74.005974).
		Return("New York, New York, United States", nil).
		Times(1)

	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			assert.Equal(t, "daisy_owner", user.Username)
			assert.Equal(t, "daisy.owner@example.com", user.Email)
			assert.NotEqual(t, input.Password, user.PasswordHash)
			return nil
		}).
		Times(1)

	deps.sessions.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	user, token, err := svc.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "New York, New York, United States", user.Location)
	require.NotNil(t, user.Latitude)
	assert.InDelta(t, 40.712776, *user.Latitude, 1e-9)
}

func TestRegister_Success_IPFallback(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	input := service.RegisterInput{
		Username:    "cat_person",
		Email:       "cat@example.com",
		Password:    "hunter2hunter2",
		ProfileName: "Cat Person",
		ClientIP:    "203.0.113.7",
	}

	deps.iplocate.EXPECT().
		LocateIP(ctx, "203.0.113.7").
		Return(&geocoding.IPLocation{
			Latitude:  51.507351,
			Longitude: -0.127758,
			Location:  "London, England, United Kingdom",
		}, nil).
		Times(1)

	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	deps.sessions.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	user, _, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "London, England, United Kingdom", user.Location)
	require.NotNil(t, user.Latitude)
	assert.InDelta(t, 51.507351, *user.Latitude, 1e-9)
}

func TestRegister_IPLookupFailureDegradesGracefully(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	input := service.RegisterInput{
		Username:    "no_location",
		Email:       "nowhere@example.com",
		Password:    "hunter2hunter2",
		ProfileName: "Nowhere",
		ClientIP:    "198.51.100.1",
	}

	deps.iplocate.EXPECT().
		LocateIP(ctx, "198.51.100.1").
		Return(nil, geocoding.ErrNotFound).
		Times(1)

	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	deps.sessions.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	user, _, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, user.Latitude)
	assert.Nil(t, user.Longitude)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	input := service.RegisterInput{
		Username:    "taken",
		Email:       "taken@example.com",
		Password:    "hunter2hunter2",
		ProfileName: "Taken",
	}

	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(service.ErrUsernameTaken).
		Times(1)

	_, _, err := svc.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame 99"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:           uuid.New(),
		Username:     "daisy_owner",
		PasswordHash: string(hash),
	}

	deps.repo.EXPECT().
		GetByUsername(ctx, "daisy_owner").
		Return(stored, nil).
		Times(1)

	deps.sessions.EXPECT().
		Create(ctx, gomock.Any(), stored.ID).
		Return(nil).
		Times(1)

	user, token, err := svc.Login(ctx, "daisy_owner", "open sesame 99")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("the real password"), bcrypt.MinCost)
	require.NoError(t, err)

	deps.repo.EXPECT().
		GetByUsername(ctx, "daisy_owner").
		Return(&models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil).
		Times(1)

	_, _, err = svc.Login(ctx, "daisy_owner", "a guess")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		GetByUsername(ctx, "ghost").
		Return(nil, service.ErrNotFound).
		Times(1)

	_, _, err := svc.Login(ctx, "ghost", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthenticate_Success(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &models.User{ID: userID, Username: "daisy_owner"}

	deps.sessions.EXPECT().
		Get(ctx, "some-token").
		Return(userID, nil).
		Times(1)

	deps.repo.EXPECT().
		GetByID(ctx, userID).
		Return(expected, nil).
		Times(1)

	user, err := svc.Authenticate(ctx, "some-token")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()

	deps.sessions.EXPECT().
		Get(ctx, "stale-token").
		Return(uuid.Nil, service.ErrNotFound).
		Times(1)

	_, err := svc.Authenticate(ctx, "stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestUpdateProfile_ManualAddressGeocoded(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &models.User{ID: userID, Username: "daisy_owner"}

	deps.repo.EXPECT().
		GetByID(ctx, userID).
		Return(stored, nil).
		Times(1)

	deps.geocoder.EXPECT().
		Geocode(ctx, "221B Baker Street, London").
		Return(&geocoding.Result{
			Latitude:    51.523767,
			Longitude:   -0.158555,
			DisplayName: "221B Baker Street, Marylebone, London",
		}, nil).
		Times(1)

	deps.repo.EXPECT().
		Update(ctx, stored).
		Return(nil).
		Times(1)

	user, err := svc.UpdateProfile(ctx, userID, service.UpdateProfileInput{
		ProfileName:      "Daisy's Human",
		Location:         "221B Baker Street, London",
		UseManualAddress: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "221B Baker Street, Marylebone, London", user.Location)
	require.NotNil(t, user.Latitude)
	assert.InDelta(t, 51.523767, *user.Latitude, 1e-9)
}

func TestUpdateProfile_ManualAddressNotFound(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.repo.EXPECT().
		GetByID(ctx, userID).
		Return(&models.User{ID: userID}, nil).
		Times(1)

	deps.geocoder.EXPECT().
		Geocode(ctx, "Nowhere in particular").
		Return(nil, geocoding.ErrNotFound).
		Times(1)

	_, err := svc.UpdateProfile(ctx, userID, service.UpdateProfileInput{
		ProfileName:      "Daisy's Human",
		Location:         "Nowhere in particular",
		UseManualAddress: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateProfile_CoordinatesReverseGeocoded(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &models.User{ID: userID}

	deps.repo.EXPECT().
		GetByID(ctx, userID).
		Return(stored, nil).
		Times(1)

	deps.geocoder.EXPECT().
		ReverseGeocode(ctx, 40.650002, -73.949997).
		Return("Brooklyn, New York, United States", nil).
		Times(1)

	deps.repo.EXPECT().
		Update(ctx, stored).
		Return(nil).
		Times(1)

	user, err := svc.UpdateProfile(ctx, userID, service.UpdateProfileInput{
		ProfileName: "Daisy's Human",
		Latitude:    floatPtr(40.650002),
		Longitude:   floatPtr(-73.949997),
	})

	require.NoError(t, err)
	assert.Equal(t, "Brooklyn, New York, United States", user.Location)
}

func TestLogout_Success(t *testing.T) {
	svc, deps := newTestUserService(t)
	ctx := context.Background()

	deps.sessions.EXPECT().
		Delete(ctx, "some-token").
		Return(nil).
		Times(1)

	err := svc.Logout(ctx, "some-token")

	require.NoError(t, err)
}
