package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/service"
)

// @Summary Create a community alert
// @Description Create a lost/found/emergency alert. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAlertModel(input)
	if err := h.services.Alerts.CreateAlert(c.Request.Context(), currentUser(c).ID, model); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToAlertResponse(model))
}

// @Summary List community alerts
// @Description Get a paginated list of alerts, newest first. With radius set, only alerts within that distance (km) of the requester's stored coordinates are returned. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert_type query string false "Filter by alert type (LOST, FOUND, EMERGENCY)"
// @Param include_inactive query bool false "Include deactivated alerts" default(false)
// @Param radius query number false "Radius in kilometers around the requester's location"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid radius or alert type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	alertType := c.Query("alert_type")
	if alertType != "" && alertType != "LOST" && alertType != "FOUND" && alertType != "EMERGENCY" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert type"})
		return
	}

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))

	query := service.ListAlertsQuery{
		AlertType:       alertType,
		IncludeInactive: includeInactive,
		Page:            page,
		PageSize:        pageSize,
	}

	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.WithField("radius", raw).Warn("Non-numeric radius")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		query.RadiusKm = &radius
	}

	alerts, err := h.services.Alerts.ListAlerts(c.Request.Context(), currentUser(c), query)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert statistics
// @Description Get the count of active alerts per type. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/stats [get]
func (h *Handler) getAlertStats(c *gin.Context) {
	log := h.logger.WithField("method", "getAlertStats")

	stats, err := h.services.Alerts.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{ActiveByType: stats})
}

// @Summary Get a community alert
// @Description Get a single alert by ID. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.services.Alerts.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Update a community alert
// @Description Update an alert by ID. Only the author may update. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param alert body UpdateAlertRequest true "Alert update request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the alert's author"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [put]
func (h *Handler) updateAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "updateAlert").WithField("id", id)

	var input UpdateAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAlertModel(input)
	model.ID = id

	updated, err := h.services.Alerts.UpdateAlert(c.Request.Context(), currentUser(c).ID, model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToAlertResponse(updated))
}

// @Summary Deactivate a community alert
// @Description Deactivate an alert by ID, marking it resolved. Only the author may deactivate. Requires session token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the alert's author"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [delete]
func (h *Handler) deactivateAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "deactivateAlert").WithField("id", id)

	if err := h.services.Alerts.DeactivateAlert(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
