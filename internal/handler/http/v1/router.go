package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Everything except
// registration, login, and the health check requires a session token.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("", h.authMiddleware())

	authed.POST("/auth/logout", h.logout)

	users := authed.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateProfile)
		users.GET("/:id", h.getUser)
		users.GET("/:id/pets", h.listUserPets)
	}

	pets := authed.Group("/pets")
	{
		pets.POST("", h.createPet)
		pets.GET("/:id", h.getPet)
		pets.PUT("/:id", h.updatePet)
		pets.DELETE("/:id", h.deletePet)
		pets.POST("/:id/photos", h.addPetPhoto)
		pets.PUT("/:id/traits", h.setPetTraits)
	}

	adoptions := authed.Group("/adoptions")
	{
		adoptions.POST("", h.createListing)
		adoptions.GET("", h.listListings)
		adoptions.GET("/:id", h.getListing)
		adoptions.PUT("/:id", h.updateListing)
		adoptions.DELETE("/:id", h.deactivateListing)
	}

	posts := authed.Group("/posts")
	{
		posts.POST("", h.createPost)
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("/:id/comments", h.addComment)
	}

	alerts := authed.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
		alerts.GET("/stats", h.getAlertStats)
		alerts.GET("/:id", h.getAlert)
		alerts.PUT("/:id", h.updateAlert)
		alerts.DELETE("/:id", h.deactivateAlert)
	}

	threads := authed.Group("/threads")
	{
		threads.POST("", h.openThread)
		threads.GET("", h.listThreads)
		threads.GET("/:id/messages", h.listMessages)
		threads.POST("/:id/messages", h.sendMessage)
	}

	playdates := authed.Group("/playdates")
	{
		playdates.POST("", h.createPlaydate)
		playdates.GET("", h.listPlaydates)
		playdates.GET("/:id", h.getPlaydate)
		playdates.PUT("/:id", h.updatePlaydate)
		playdates.PATCH("/:id/status", h.updatePlaydateStatus)
	}
}
