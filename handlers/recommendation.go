package handlers

import (
	"net/http"

	"gatherandgo/models"
	"gatherandgo/services/group"
	"gatherandgo/services/rating"
	"gatherandgo/services/recommendation"
	"gatherandgo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler serves the event list the presentation layer renders
// as cards: provider output merged with live ledger data per event.
type RecommendationHandler struct {
	Recommender recommendation.RecommendationService
	Ledger      rating.Ledger
	Groups      group.GroupService
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(rec recommendation.RecommendationService, ledger rating.Ledger, groups group.GroupService) *RecommendationHandler {
	return &RecommendationHandler{Recommender: rec, Ledger: ledger, Groups: groups}
}

// eventView is an EventRecommendation plus the caller-specific vote flag.
type eventView struct {
	models.EventRecommendation
	HasRated bool `json:"hasRated"`
}

// GroupRecommendationsHandler handles GET /api/groups/:id/recommendations.
// Recommendation delivery never hard-fails: the provider already degrades to
// its default catalog, and ledger or group lookups here are best effort.
func (h *RecommendationHandler) GroupRecommendationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}
	groupID := c.Param("id")

	events := h.Recommender.GetRecommendations(groupID)

	// Group size backs the "n/size voted" display; unknown groups render
	// with zero so the list itself still goes out.
	totalVoters := 0
	if grp, err := h.Groups.GetGroup(groupID); err == nil {
		totalVoters = len(grp.MemberIDs)
	}

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		view := eventView{EventRecommendation: event}

		if summary, err := h.Ledger.Summary(event.ID); err == nil && summary.Count > 0 {
			view.Rating = summary
		}
		if votes, err := h.Ledger.Votes(event.ID); err == nil {
			view.Votes = votes
		}
		if rated, err := h.Ledger.HasRated(event.ID, userID); err == nil {
			view.HasRated = rated
		} else {
			logger.Debug("Ledger lookup failed", zap.String("eventID", event.ID), zap.Error(err))
		}

		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"groupId":     groupID,
		"totalVoters": totalVoters,
		"events":      views,
	})
}
