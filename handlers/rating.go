package handlers

import (
	"net/http"

	"gatherandgo/services/rating"
	"gatherandgo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingHandler exposes the star rating endpoints.
type RatingHandler struct {
	Ledger rating.Ledger
}

// NewRatingHandler creates a RatingHandler.
func NewRatingHandler(ledger rating.Ledger) *RatingHandler {
	return &RatingHandler{Ledger: ledger}
}

// RateEventHandler handles POST /api/events/:id/rating. Re-rating replaces
// the caller's earlier stars; the vote count only moves on a first rating.
func (h *RatingHandler) RateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}
	eventID := c.Param("id")

	var req struct {
		Stars int `json:"stars" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Ledger.Rate(eventID, userID, req.Stars)
	if err != nil {
		if rating.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record rating", zap.String("eventID", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEventRatingHandler handles GET /api/events/:id/rating.
func (h *RatingHandler) GetEventRatingHandler(c *gin.Context) {
	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}
	eventID := c.Param("id")

	summary, err := h.Ledger.Summary(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	votes, err := h.Ledger.Votes(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rated, err := h.Ledger.HasRated(eventID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"eventId":  eventID,
		"rating":   summary,
		"votes":    votes,
		"hasRated": rated,
	})
}
