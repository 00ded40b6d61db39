package routes

import (
	"net/http"
	"time"

	"gatherandgo/handlers"
	"gatherandgo/middleware"
	"gatherandgo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPreferenceRoutes registers user preference endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.POST("", hb.SavePreferencesHandler)
		api.GET("", hb.GetProfileHandler)
	}
}

// RegisterGroupRoutes registers group management endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.POST("", hb.CreateGroupHandler)
		api.GET("", hb.ListGroupsHandler)
		api.GET("/:id", hb.GetGroupHandler)
		api.POST("/:id/join", hb.JoinGroupHandler)
		api.POST("/:id/invite", hb.InviteToGroupHandler)
		api.POST("/:id/finalize", hb.FinalizeGroupHandler)
		api.GET("/:id/recommendations", hb.GroupRecommendationsHandler)
	}
}

// RegisterEventRoutes registers event rating endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.POST("/:id/rating", hb.RateEventHandler)
		api.GET("/:id/rating", hb.GetEventRatingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// monitor snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPreferenceRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
