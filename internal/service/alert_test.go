package service_test

import (
	"bytes"
	"context"
	"fmt"
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

// newTestAlertService builds an alert service with mocked dependencies.
func newTestAlertService(t *testing.T) (service.AlertService, *mocks.MockAlertRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewAlertService(repoMock, logger, publisherMock)
	return svc, repoMock, publisherMock
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateAlert_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	alert := &models.CommunityAlert{
		AlertType:   models.AlertLost,
		Title:       "Lost beagle near the park",
		Description: "Answers to Daisy",
		Location:    "Prospect Park, Brooklyn",
		ContactInfo: "555-0142",
	}

	repoMock.EXPECT().
		Create(ctx, alert).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, notification.EventAlertCreated, event.Type)
			assert.Equal(t, userID, event.ActorID)
			return nil
		}).
		Times(1)

	err := svc.CreateAlert(ctx, userID, alert)

	require.NoError(t, err)
	assert.Equal(t, userID, alert.UserID)
	assert.True(t, alert.IsActive)
}

func TestCreateAlert_EmptyContactInfo(t *testing.T) {
	svc, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.CommunityAlert{
		AlertType:   models.AlertFound,
		Title:       "Found a tabby cat",
		Description: "Very friendly",
		Location:    "5th and Main",
		ContactInfo: "   ",
	}

	err := svc.CreateAlert(ctx, uuid.New(), alert)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmptyField)
}

func TestCreateAlert_PublishFailureIsNotFatal(t *testing.T) {
	svc, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.CommunityAlert{
		AlertType:   models.AlertEmergency,
		Title:       "Injured dog on Route 9",
		Description: "Needs a vet",
		Location:    "Route 9, mile 14",
		ContactInfo: "555-0200",
	}

	repoMock.EXPECT().
		Create(ctx, alert).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("queue unavailable")).
		Times(1)

	err := svc.CreateAlert(ctx, uuid.New(), alert)

	require.NoError(t, err)
}

func TestGetAlert_Success_FromCache(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.CommunityAlert{
		ID:    alertID,
		Title: "Cached alert",
	}

	repoMock.EXPECT().
		GetAlertFromCache(ctx, alertID).
		Return(expected, nil).
		Times(1)

	alert, err := svc.GetAlert(ctx, alertID)

	require.NoError(t, err)
	assert.Equal(t, expected, alert)
}

func TestGetAlert_Success_FromDB(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.CommunityAlert{
		ID:    alertID,
		Title: "Database alert",
	}

	repoMock.EXPECT().
		GetAlertFromCache(ctx, alertID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(expected, nil).
		Times(1)

	repoMock.EXPECT().
		SetAlertCache(ctx, expected).
		Return(nil).
		Times(1)

	alert, err := svc.GetAlert(ctx, alertID)

	require.NoError(t, err)
	assert.Equal(t, expected, alert)
}

func TestGetAlert_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().
		GetAlertFromCache(ctx, alertID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(nil, service.ErrNotFound).
		Times(1)

	alert, err := svc.GetAlert(ctx, alertID)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, alert)
}

func TestUpdateAlert_Forbidden(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	author := uuid.New()
	stranger := uuid.New()

	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(&models.CommunityAlert{ID: alertID, UserID: author}, nil).
		Times(1)

	updated, err := svc.UpdateAlert(ctx, stranger, &models.CommunityAlert{ID: alertID, Title: "Edited"})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrForbidden)
	assert.Nil(t, updated)
}

func TestUpdateAlert_Success_KeepsAlertActive(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	author := uuid.New()
	stored := &models.CommunityAlert{
		ID:          alertID,
		UserID:      author,
		AlertType:   models.AlertLost,
		Title:       "Lost beagle near the park",
		Description: "Answers to Daisy",
		Location:    "Prospect Park, Brooklyn",
		ContactInfo: "555-0142",
		IsActive:    true,
	}

	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(stored, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.CommunityAlert) error {
			assert.Equal(t, "Found her collar on 7th Ave", alert.Description)
			assert.True(t, alert.IsActive)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().
		InvalidateAlertCache(ctx, alertID).
		Return(nil).
		Times(1)

	// The edit payload arrives with the active flag unset, the way the
	// handler builds it from the request body.
	updated, err := svc.UpdateAlert(ctx, author, &models.CommunityAlert{
		ID:          alertID,
		AlertType:   models.AlertLost,
		Title:       "Lost beagle near the park",
		Description: "Found her collar on 7th Ave",
		Location:    "Prospect Park, Brooklyn",
		ContactInfo: "555-0142",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, author, updated.UserID)
	assert.Equal(t, "Found her collar on 7th Ave", updated.Description)
	assert.True(t, updated.IsActive)
}

func TestDeactivateAlert_Success(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	author := uuid.New()
	stored := &models.CommunityAlert{ID: alertID, UserID: author, IsActive: true}

	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(stored, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, stored).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidateAlertCache(ctx, alertID).
		Return(nil).
		Times(1)

	err := svc.DeactivateAlert(ctx, author, alertID)

	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

// listAlertsFixture returns three active alerts: two near downtown Manhattan
// and one in Boston, far outside any city-scale radius.
func listAlertsFixture() []*models.CommunityAlert {
	return []*models.CommunityAlert{
		{
			ID:        uuid.New(),
			Title:     "Lost dog near City Hall",
			Latitude:  floatPtr(40.712776),
			Longitude: floatPtr(-74.005974),
			IsActive:  true,
		},
		{
			ID:        uuid.New(),
			Title:     "Found cat in Brooklyn",
			Latitude:  floatPtr(40.650002),
			Longitude: floatPtr(-73.949997),
			IsActive:  true,
		},
		{
			ID:        uuid.New(),
			Title:     "Lost parrot in Boston",
			Latitude:  floatPtr(42.360082),
			Longitude: floatPtr(-71.058880),
			IsActive:  true,
		},
	}
}

func TestListAlerts_NoRadiusReturnsAll(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	fixture := listAlertsFixture()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		Return(fixture, nil).
		Times(1)

	requester := &models.User{ID: uuid.New()}
	alerts, err := svc.ListAlerts(ctx, requester, service.ListAlertsQuery{})

	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}

func TestListAlerts_RadiusFiltersByDistance(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	fixture := listAlertsFixture()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		Return(fixture, nil).
		Times(1)

	// Requester in lower Manhattan: both New York alerts are within 20 km,
	// Boston is roughly 300 km away.
	requester := &models.User{
		ID:        uuid.New(),
		Latitude:  floatPtr(40.730610),
		Longitude: floatPtr(-73.935242),
	}
	alerts, err := svc.ListAlerts(ctx, requester, service.ListAlertsQuery{RadiusKm: floatPtr(20)})

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, fixture[0].ID, alerts[0].ID)
	assert.Equal(t, fixture[1].ID, alerts[1].ID)
}

func TestListAlerts_RadiusWithoutRequesterCoordinates(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		Return(listAlertsFixture(), nil).
		Times(1)

	// The requester never resolved a location, so distance is undefined.
	requester := &models.User{ID: uuid.New()}
	alerts, err := svc.ListAlerts(ctx, requester, service.ListAlertsQuery{RadiusKm: floatPtr(20)})

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestListAlerts_RadiusSkipsAlertsWithoutCoordinates(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	fixture := listAlertsFixture()
	fixture[0].Latitude = nil
	fixture[0].Longitude = nil

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		Return(fixture, nil).
		Times(1)

	requester := &models.User{
		ID:        uuid.New(),
		Latitude:  floatPtr(40.730610),
		Longitude: floatPtr(-73.935242),
	}
	alerts, err := svc.ListAlerts(ctx, requester, service.ListAlertsQuery{RadiusKm: floatPtr(20)})

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, fixture[1].ID, alerts[0].ID)
}

func TestListAlerts_ZeroRadiusReturnsEmpty(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		Return(listAlertsFixture(), nil).
		Times(1)

	requester := &models.User{
		ID:        uuid.New(),
		Latitude:  floatPtr(40.712776),
		Longitude: floatPtr(-74.005974),
	}
	alerts, err := svc.ListAlerts(ctx, requester, service.ListAlertsQuery{RadiusKm: floatPtr(0)})

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestGetStats_Success(t *testing.T) {
	svc, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := map[string]int{
		models.AlertLost:  4,
		models.AlertFound: 2,
	}

	repoMock.EXPECT().
		CountActiveByType(ctx).
		Return(expected, nil).
		Times(1)

	stats, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
