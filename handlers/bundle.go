package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler for route registration.
type HandlerBundle struct {
	// Preference endpoints.
	SavePreferencesHandler gin.HandlerFunc
	GetProfileHandler      gin.HandlerFunc

	// Group endpoints.
	CreateGroupHandler   gin.HandlerFunc
	GetGroupHandler      gin.HandlerFunc
	ListGroupsHandler    gin.HandlerFunc
	JoinGroupHandler     gin.HandlerFunc
	InviteToGroupHandler gin.HandlerFunc
	FinalizeGroupHandler gin.HandlerFunc

	// Recommendation endpoints.
	GroupRecommendationsHandler gin.HandlerFunc

	// Event rating endpoints.
	RateEventHandler      gin.HandlerFunc
	GetEventRatingHandler gin.HandlerFunc
}

// userIDFromContext pulls the authenticated user id set by the auth
// middleware. The empty return means the middleware did not run.
func userIDFromContext(c *gin.Context) string {
	val, ok := c.Get("userID")
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
