package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a pet profile
// @Description Create a pet profile owned by the authenticated user. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pet body CreatePetRequest true "Pet creation request"
// @Success 201 {object} PetResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /pets [post]
func (h *Handler) createPet(c *gin.Context) {
	var input CreatePetRequest
	log := h.logger.WithField("method", "createPet")

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

	model := DTOToPetModel(input)
	if err := h.services.Pets.CreatePet(c.Request.Context(), currentUser(c).ID, model); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToPetResponse(model))
}

// @Summary Get a pet profile
// @Description Get a pet profile by ID, including its photos and traits. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} PetResponse
// @Failure 400 {object} map[string]string "Invalid pet ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{id} [get]
func (h *Handler) getPet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet ID"})
		return
	}
	log := h.logger.WithField("method", "getPet").WithField("id", id)

	pet, err := h.services.Pets.GetPet(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPetResponse(pet))
}

// @Summary Update a pet profile
// @Description Update a pet profile by ID. Only the owner may update. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param pet body UpdatePetRequest true "Pet update request"
// @Success 200 {object} PetResponse
// @Failure 400 {object} map[string]string "Invalid pet ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{id} [put]
func (h *Handler) updatePet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet ID"})
		return
	}
	log := h.logger.WithField("method", "updatePet").WithField("id", id)

	var input UpdatePetRequest
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

	model := DTOToPetModel(input)
	model.ID = id

	if err := h.services.Pets.UpdatePet(c.Request.Context(), currentUser(c).ID, model); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPetResponse(model))
}

// @Summary Delete a pet profile
// @Description Delete a pet profile by ID. Only the owner may delete. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid pet ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{id} [delete]
func (h *Handler) deletePet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet ID"})
		return
	}
	log := h.logger.WithField("method", "deletePet").WithField("id", id)

	if err := h.services.Pets.DeletePet(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add a pet photo
// @Description Attach a photo URL to a pet profile. Marking it primary clears the previous primary photo. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param photo body AddPetPhotoRequest true "Photo request"
// @Success 201 {object} PetPhotoResponse
// @Failure 400 {object} map[string]string "Invalid pet ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{id}/photos [post]
func (h *Handler) addPetPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet ID"})
		return
	}
	log := h.logger.WithField("method", "addPetPhoto").WithField("id", id)

	var input AddPetPhotoRequest
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

	photo, err := h.services.Pets.AddPetPhoto(c.Request.Context(), currentUser(c).ID, id, input.PhotoURL, input.IsPrimary)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToPetPhotoResponse(photo))
}

// @Summary Replace a pet's traits
// @Description Replace the full trait list of a pet profile. Requires session token.
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param traits body SetPetTraitsRequest true "Trait list"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid pet ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the pet's owner"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{id}/traits [put]
func (h *Handler) setPetTraits(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet ID"})
		return
	}
	log := h.logger.WithField("method", "setPetTraits").WithField("id", id)

	var input SetPetTraitsRequest
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

	if err := h.services.Pets.SetPetTraits(c.Request.Context(), currentUser(c).ID, id, input.Traits); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusOK)
}
