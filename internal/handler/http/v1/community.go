package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a community post
// @Description Create a post in the community feed. Requires session token.
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} PostResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var input CreatePostRequest
	log := h.logger.WithField("method", "createPost")

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

	post, err := h.services.Community.CreatePost(c.Request.Context(), currentUser(c).ID, input.Caption, input.PhotoURL)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToPostResponse(post))
}

// @Summary List community posts
// @Description Get a paginated list of community posts, newest first. Requires session token.
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} PostResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	log := h.logger.WithField("method", "listPosts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	posts, err := h.services.Community.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToPostResponses(posts))
}

// @Summary Get a community post
// @Description Get a single post by ID, including its comments. Requires session token.
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 400 {object} map[string]string "Invalid post ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return
	}
	log := h.logger.WithField("method", "getPost").WithField("id", id)

	post, err := h.services.Community.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToPostResponse(post))
}

// @Summary Comment on a post
// @Description Add a comment to an existing post. Requires session token.
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} map[string]string "Invalid post ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{id}/comments [post]
func (h *Handler) addComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return
	}
	log := h.logger.WithField("method", "addComment").WithField("id", id)

	var input CreateCommentRequest
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

	comment, err := h.services.Community.AddComment(c.Request.Context(), currentUser(c).ID, id, input.Text)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToCommentResponse(comment))
}
