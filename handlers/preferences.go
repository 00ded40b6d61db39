package handlers

import (
	"net/http"

	"gatherandgo/services/preferences"
	"gatherandgo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreferencesHandler exposes the user preference endpoints.
type PreferencesHandler struct {
	Service preferences.PreferenceService
}

// NewPreferencesHandler creates a PreferencesHandler.
func NewPreferencesHandler(svc preferences.PreferenceService) *PreferencesHandler {
	return &PreferencesHandler{Service: svc}
}

// SavePreferencesHandler handles POST /api/preferences.
func (h *PreferencesHandler) SavePreferencesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	var update preferences.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid preferences payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SavePreferences(userID, update); err != nil {
		logger.Error("Failed to save preferences", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences saved"})
}

// GetProfileHandler handles GET /api/preferences.
func (h *PreferencesHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	user, err := h.Service.GetProfile(userID)
	if err != nil {
		logger.Error("Failed to fetch profile", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		// No profile yet; valid outcome, not a store failure.
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
