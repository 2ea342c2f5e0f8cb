package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Schedule a playdate
// @Description Schedule a playdate for a playdate-available pet owned by the authenticated user. Requires session token.
// @Tags Playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playdate body CreatePlaydateRequest true "Playdate creation request"
// @Success 201 {object} PlaydateResponse
// @Failure 400 {object} map[string]string "Invalid request body, past time, or pet not available"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /playdates [post]
func (h *Handler) createPlaydate(c *gin.Context) {
	var input CreatePlaydateRequest
	log := h.logger.WithField("method", "createPlaydate")

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

	playdate, err := h.services.Playdates.CreatePlaydate(c.Request.Context(), currentUser(c).ID, input.PetID, input.ScheduledTime, input.Location)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToPlaydateResponse(playdate))
}

// @Summary List own playdates
// @Description Get all playdates organized by the authenticated user, soonest first. Requires session token.
// @Tags Playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlaydateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playdates [get]
func (h *Handler) listPlaydates(c *gin.Context) {
	log := h.logger.WithField("method", "listPlaydates")

	playdates, err := h.services.Playdates.ListMyPlaydates(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToPlaydateResponses(playdates))
}

// @Summary Get a playdate
// @Description Get a single playdate by ID. Requires session token.
// @Tags Playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Playdate ID"
// @Success 200 {object} PlaydateResponse
// @Failure 400 {object} map[string]string "Invalid playdate ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Playdate not found"
// @Router /playdates/{id} [get]
func (h *Handler) getPlaydate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playdate ID"})
		return
	}
	log := h.logger.WithField("method", "getPlaydate").WithField("id", id)

	playdate, err := h.services.Playdates.GetPlaydate(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPlaydateResponse(playdate))
}

// @Summary Reschedule a playdate
// @Description Update a playdate's time and location. Only the organizer may update. Requires session token.
// @Tags Playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Playdate ID"
// @Param playdate body UpdatePlaydateRequest true "Playdate update request"
// @Success 200 {object} PlaydateResponse
// @Failure 400 {object} map[string]string "Invalid playdate ID, request body, or past time"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the organizer"
// @Failure 404 {object} map[string]string "Playdate not found"
// @Router /playdates/{id} [put]
func (h *Handler) updatePlaydate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playdate ID"})
		return
	}
	log := h.logger.WithField("method", "updatePlaydate").WithField("id", id)

	var input UpdatePlaydateRequest
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

	playdate, err := h.services.Playdates.UpdatePlaydate(c.Request.Context(), currentUser(c).ID, id, input.ScheduledTime, input.Location)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPlaydateResponse(playdate))
}

// @Summary Confirm or cancel a playdate
// @Description Change a playdate's status. PENDING playdates may be confirmed or cancelled; CONFIRMED playdates may only be cancelled. Requires session token.
// @Tags Playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Playdate ID"
// @Param status body UpdatePlaydateStatusRequest true "Status change request"
// @Success 200 {object} PlaydateResponse
// @Failure 400 {object} map[string]string "Invalid playdate ID, request body, or status transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the organizer"
// @Failure 404 {object} map[string]string "Playdate not found"
// @Router /playdates/{id}/status [patch]
func (h *Handler) updatePlaydateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playdate ID"})
		return
	}
	log := h.logger.WithField("method", "updatePlaydateStatus").WithField("id", id)

	var input UpdatePlaydateStatusRequest
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

	playdate, err := h.services.Playdates.UpdateStatus(c.Request.Context(), currentUser(c).ID, id, input.Status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPlaydateResponse(playdate))
}
