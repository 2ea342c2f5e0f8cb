package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Post a pet for adoption
// @Description Create an adoption listing for an adoptable pet owned by the authenticated user. Requires session token.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body CreateListingRequest true "Listing creation request"
// @Success 201 {object} ListingResponse
// @Failure 400 {object} map[string]string "Invalid request body or pet not adoptable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 409 {object} map[string]string "Pet already has a listing"
// @Router /adoptions [post]
func (h *Handler) createListing(c *gin.Context) {
	var input CreateListingRequest
	log := h.logger.WithField("method", "createListing")

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

	listing, err := h.services.Adoptions.CreateListing(c.Request.Context(), currentUser(c).ID, input.PetID, input.AdditionalInfo, input.AdoptionRequirements)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToListingResponse(listing))
}

// @Summary List adoption listings
// @Description Get a paginated list of active adoption listings, newest first. Requires session token.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ListingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /adoptions [get]
func (h *Handler) listListings(c *gin.Context) {
	log := h.logger.WithField("method", "listListings")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	listings, err := h.services.Adoptions.ListListings(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToListingResponses(listings))
}

// @Summary Get an adoption listing
// @Description Get a single adoption listing by ID. Requires session token.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} ListingResponse
// @Failure 400 {object} map[string]string "Invalid listing ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Listing not found"
// @Router /adoptions/{id} [get]
func (h *Handler) getListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}
	log := h.logger.WithField("method", "getListing").WithField("id", id)

	listing, err := h.services.Adoptions.GetListing(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToListingResponse(listing))
}

// @Summary Update an adoption listing
// @Description Update an adoption listing by ID. Only the pet's owner may update. Requires session token.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param listing body UpdateListingRequest true "Listing update request"
// @Success 200 {object} ListingResponse
// @Failure 400 {object} map[string]string "Invalid listing ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Listing not found"
// @Router /adoptions/{id} [put]
func (h *Handler) updateListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}
	log := h.logger.WithField("method", "updateListing").WithField("id", id)

	var input UpdateListingRequest
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

	listing, err := h.services.Adoptions.UpdateListing(c.Request.Context(), currentUser(c).ID, id, input.AdditionalInfo, input.AdoptionRequirements)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToListingResponse(listing))
}

// @Summary Deactivate an adoption listing
// @Description Deactivate an adoption listing by ID. The pet stays in the system. Requires session token.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid listing ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Listing not found"
// @Router /adoptions/{id} [delete]
func (h *Handler) deactivateListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}
	log := h.logger.WithField("method", "deactivateListing").WithField("id", id)

	if err := h.services.Adoptions.DeactivateListing(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
