package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/petnextdoor/pet_next_door/internal/config"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/sirupsen/logrus"
)

// Services bundles the business-logic dependencies of the API handler.
type Services struct {
	Users     service.UserService
	Pets      service.PetService
	Adoptions service.AdoptionService
	Community service.CommunityService
	Alerts    service.AlertService
	Messaging service.MessagingService
	Playdates service.PlaydateService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// respondError translates service errors into HTTP responses. Unknown errors
// are logged and hidden behind a generic 500.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
	case errors.Is(err, service.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateListing):
		log.WithError(err).Warn("Conflicting resource state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPetNotAdoptable),
		errors.Is(err, service.ErrPetNotAvailable),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrEmptyField),
		errors.Is(err, service.ErrSelfThread),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrPastPlaydate):
		log.WithError(err).Warn("Rejected request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
