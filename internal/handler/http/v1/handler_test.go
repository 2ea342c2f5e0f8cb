package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/config"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-session-token"

type handlerMocks struct {
	users     *mocks.MockUserService
	pets      *mocks.MockPetService
	adoptions *mocks.MockAdoptionService
	community *mocks.MockCommunityService
	alerts    *mocks.MockAlertService
	messaging *mocks.MockMessagingService
	playdates *mocks.MockPlaydateService
}

// newTestHandler creates a Handler instance with mocked services.
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		users:     mocks.NewMockUserService(ctrl),
		pets:      mocks.NewMockPetService(ctrl),
		adoptions: mocks.NewMockAdoptionService(ctrl),
		community: mocks.NewMockCommunityService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		messaging: mocks.NewMockMessagingService(ctrl),
		playdates: mocks.NewMockPlaydateService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	handler := NewHandler(Services{
		Users:     m.users,
		Pets:      m.pets,
		Adoptions: m.adoptions,
		Community: m.community,
		Alerts:    m.alerts,
		Messaging: m.messaging,
		Playdates: m.playdates,
	}, logger, &config.Config{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest is a helper for executing HTTP requests against the test router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// asUser registers an Authenticate expectation for the session token and
// returns the Authorization header to send with the request.
func asUser(m handlerMocks, user *models.User) map[string]string {
	m.users.EXPECT().
		Authenticate(gomock.Any(), testToken).
		Return(user, nil).
		Times(1)
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func TestRegister_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := RegisterRequest{
		Username:    "daisy_owner",
		Email:       "daisy.owner@example.com",
		Password:    "correct horse",
		ProfileName: "Daisy's Human",
	}

	m.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.RegisterInput) (*models.User, string, error) {
			assert.Equal(t, reqBody.Username, input.Username)
			assert.NotEmpty(t, input.ClientIP)
			return &models.User{
				ID:          userID,
				Username:    input.Username,
				Email:       input.Email,
				ProfileName: input.ProfileName,
			}, testToken, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, testToken, resp.Token)
	assert.Equal(t, userID, resp.User.ID)
}

func TestRegister_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterRequest{ // Username missing
		Email:       "daisy.owner@example.com",
		Password:    "correct horse",
		ProfileName: "Daisy's Human",
	}

	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Username' failed on the 'required' tag")
}

func TestRegister_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBufferString(`{"username": "daisy`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestRegister_UsernameTaken(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Username:    "daisy_owner",
		Email:       "daisy.owner@example.com",
		Password:    "correct horse",
		ProfileName: "Daisy's Human",
	}

	m.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", service.ErrUsernameTaken).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LoginRequest{Username: "daisy_owner", Password: "correct horse"}

	m.users.EXPECT().
		Login(gomock.Any(), reqBody.Username, reqBody.Password).
		Return(&models.User{ID: uuid.New(), Username: reqBody.Username}, testToken, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, testToken, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LoginRequest{Username: "daisy_owner", Password: "wrong"}

	m.users.EXPECT().
		Login(gomock.Any(), reqBody.Username, reqBody.Password).
		Return(nil, "", service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/users/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session token required")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().
		Authenticate(gomock.Any(), "stale-token").
		Return(nil, service.ErrInvalidSession).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/me", nil, map[string]string{"Authorization": "Bearer stale-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestGetMe_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New(), Username: "daisy_owner", ProfileName: "Daisy's Human"}

	w := makeRequest(router, "GET", "/api/v1/users/me", nil, asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, user.Username, resp.Username)
}

func TestCreatePet_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreatePetRequest{
		Name:        "Daisy",
		Species:     "DOG",
		Breed:       "Beagle",
		Age:         "4 years",
		GeneralSize: "MEDIUM",
		EnergyLevel: "HIGH",
	}

	m.pets.EXPECT().
		CreatePet(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, pet *models.PetProfile) error {
			pet.ID = uuid.New()
			pet.OwnerID = user.ID
			assert.Equal(t, reqBody.Name, pet.Name)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/pets", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PetResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestCreatePet_InvalidSpecies(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreatePetRequest{
		Name:        "Rex",
		Species:     "DINOSAUR",
		Age:         "65 million years",
		GeneralSize: "LARGE",
		EnergyLevel: "LOW",
	}

	m.pets.EXPECT().CreatePet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/pets", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Species' failed on the 'oneof' tag")
}

func TestGetPet_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	petID := uuid.New()

	m.pets.EXPECT().GetPet(gomock.Any(), petID).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/pets/%s", petID), nil, asUser(m, user))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPet_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}

	m.pets.EXPECT().GetPet(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/pets/not-a-uuid", nil, asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pet ID")
}

func TestCreateListing_PetNotAdoptable(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreateListingRequest{
		PetID:          uuid.New(),
		AdditionalInfo: "House-trained senior beagle",
	}

	m.adoptions.EXPECT().
		CreateListing(gomock.Any(), user.ID, reqBody.PetID, reqBody.AdditionalInfo, "").
		Return(nil, service.ErrPetNotAdoptable).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/adoptions", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListListings_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	listings := []*models.AdoptionListing{
		{ID: uuid.New(), PetID: uuid.New(), IsActive: true},
		{ID: uuid.New(), PetID: uuid.New(), IsActive: true},
	}

	m.adoptions.EXPECT().ListListings(gomock.Any(), 1, 20).Return(listings, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/adoptions", nil, asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ListingResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestCreateAlert_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreateAlertRequest{
		AlertType:   "LOST",
		Title:       "Lost beagle near Prospect Park",
		Description: "Answers to Daisy, wearing a red collar",
		Location:    "Prospect Park, Brooklyn",
		ContactInfo: "555-0100",
	}

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID, alert *models.CommunityAlert) error {
			alert.ID = uuid.New()
			alert.UserID = userID
			alert.IsActive = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.True(t, resp.IsActive)
}

func TestListAlerts_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	alerts := []*models.CommunityAlert{
		{ID: uuid.New(), AlertType: "LOST", Title: "Lost beagle"},
	}

	m.alerts.EXPECT().
		ListAlerts(gomock.Any(), user, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.User, query service.ListAlertsQuery) ([]*models.CommunityAlert, error) {
			assert.Equal(t, "LOST", query.AlertType)
			require.NotNil(t, query.RadiusKm)
			assert.Equal(t, 5.0, *query.RadiusKm)
			return alerts, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts?alert_type=LOST&radius=5", nil, asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestListAlerts_InvalidRadius(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}

	m.alerts.EXPECT().ListAlerts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts?radius=nearby", nil, asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid radius")
}

func TestListAlerts_InvalidAlertType(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}

	m.alerts.EXPECT().ListAlerts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts?alert_type=STOLEN", nil, asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert type")
}

func TestGetAlertStats_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	stats := map[string]int{"LOST": 3, "FOUND": 1, "EMERGENCY": 0}

	m.alerts.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/stats", nil, asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.ActiveByType["LOST"])
}

func TestDeactivateAlert_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	alertID := uuid.New()

	m.alerts.EXPECT().
		DeactivateAlert(gomock.Any(), user.ID, alertID).
		Return(service.ErrForbidden).
		Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/alerts/%s", alertID), nil, asUser(m, user))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateAlert_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	alertID := uuid.New()
	reqBody := UpdateAlertRequest{
		AlertType:   "LOST",
		Title:       "Lost beagle near Prospect Park",
		Description: "Last seen by the boathouse",
		Location:    "Prospect Park, Brooklyn",
		ContactInfo: "555-0100",
	}

	m.alerts.EXPECT().
		UpdateAlert(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, alert *models.CommunityAlert) (*models.CommunityAlert, error) {
			assert.Equal(t, alertID, alert.ID)
			stored := *alert
			stored.UserID = user.ID
			stored.IsActive = true
			stored.CreatedAt = time.Now().Add(-time.Hour)
			return &stored, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/alerts/%s", alertID), bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, reqBody.Description, resp.Description)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreatePost_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreatePostRequest{Caption: "First day at the dog park"}

	m.community.EXPECT().
		CreatePost(gomock.Any(), user.ID, reqBody.Caption, "").
		Return(&models.Post{ID: uuid.New(), UserID: user.ID, Caption: reqBody.Caption}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/posts", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PostResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Caption, resp.Caption)
}

func TestOpenThread_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	otherID := uuid.New()
	reqBody := CreateThreadRequest{UserID: otherID}
	thread := &models.MessageThread{ID: uuid.New(), UserAID: user.ID, UserBID: otherID}

	m.messaging.EXPECT().
		GetOrCreateThread(gomock.Any(), user.ID, otherID, gomock.Nil()).
		Return(thread, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/threads", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ThreadResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, thread.ID, resp.ID)
}

func TestOpenThread_SelfThread(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := CreateThreadRequest{UserID: user.ID}

	m.messaging.EXPECT().
		GetOrCreateThread(gomock.Any(), user.ID, user.ID, gomock.Nil()).
		Return(nil, service.ErrSelfThread).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/threads", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	threadID := uuid.New()
	reqBody := SendMessageRequest{Text: "hello"}

	m.messaging.EXPECT().
		SendMessage(gomock.Any(), user.ID, threadID, reqBody.Text, "").
		Return(nil, service.ErrForbidden).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/threads/%s/messages", threadID), bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePlaydate_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	petID := uuid.New()
	scheduled := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	reqBody := CreatePlaydateRequest{
		PetID:         petID,
		ScheduledTime: scheduled,
		Location:      "Prospect Park dog run",
	}

	m.playdates.EXPECT().
		CreatePlaydate(gomock.Any(), user.ID, petID, gomock.Any(), reqBody.Location).
		Return(&models.Playdate{
			ID:            uuid.New(),
			PetID:         petID,
			OrganizerID:   user.ID,
			ScheduledTime: scheduled,
			Location:      reqBody.Location,
			Status:        models.PlaydatePending,
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/playdates", bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PlaydateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.PlaydatePending, resp.Status)
}

func TestUpdatePlaydateStatus_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	playdateID := uuid.New()
	reqBody := UpdatePlaydateStatusRequest{Status: models.PlaydateConfirmed}

	m.playdates.EXPECT().
		UpdateStatus(gomock.Any(), user.ID, playdateID, models.PlaydateConfirmed).
		Return(nil, service.ErrInvalidTransition).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/playdates/%s/status", playdateID), bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePlaydateStatus_InvalidStatusValue(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}
	reqBody := UpdatePlaydateStatusRequest{Status: "POSTPONED"}

	m.playdates.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/playdates/%s/status", uuid.New()), bytes.NewBuffer(bodyBytes), asUser(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestLogout_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}

	headers := asUser(m, user)
	m.users.EXPECT().Logout(gomock.Any(), testToken).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/auth/logout", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestServiceError_HiddenBehind500(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New()}

	m.alerts.EXPECT().
		GetStats(gomock.Any()).
		Return(nil, errors.New("redis: connection refused")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/stats", nil, asUser(m, user))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "redis")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
