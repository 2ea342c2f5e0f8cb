package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Open a message thread
// @Description Get or create the direct-message thread between the authenticated user and another user. Requires session token.
// @Tags Messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param thread body CreateThreadRequest true "Thread request"
// @Success 200 {object} ThreadResponse
// @Failure 400 {object} map[string]string "Invalid request body or self thread"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Other user not found"
// @Router /threads [post]
func (h *Handler) openThread(c *gin.Context) {
	var input CreateThreadRequest
	log := h.logger.WithField("method", "openThread")

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

	thread, err := h.services.Messaging.GetOrCreateThread(c.Request.Context(), currentUser(c).ID, input.UserID, input.PlaydateID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToThreadResponse(thread))
}

// @Summary List message threads
// @Description Get all threads the authenticated user participates in, most recently active first. Requires session token.
// @Tags Messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ThreadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /threads [get]
func (h *Handler) listThreads(c *gin.Context) {
	log := h.logger.WithField("method", "listThreads")

	threads, err := h.services.Messaging.ListThreads(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToThreadResponses(threads))
}

// @Summary List messages in a thread
// @Description Get all messages in a thread, oldest first. Messages from the other participant are marked read. Requires session token.
// @Tags Messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} map[string]string "Invalid thread ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a thread participant"
// @Failure 404 {object} map[string]string "Thread not found"
// @Router /threads/{id}/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}
	log := h.logger.WithField("method", "listMessages").WithField("id", id)

	messages, err := h.services.Messaging.ListMessages(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary Send a message
// @Description Send a message in a thread. Either text or a photo URL must be present. Requires session token.
// @Tags Messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param message body SendMessageRequest true "Message request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid thread ID or empty message"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a thread participant"
// @Failure 404 {object} map[string]string "Thread not found"
// @Router /threads/{id}/messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}
	log := h.logger.WithField("method", "sendMessage").WithField("id", id)

	var input SendMessageRequest
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

	message, err := h.services.Messaging.SendMessage(c.Request.Context(), currentUser(c).ID, id, input.Text, input.PhotoURL)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToMessageResponse(message))
}
