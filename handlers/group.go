package handlers

import (
	"net/http"

	"gatherandgo/database/repository"
	"gatherandgo/services/group"
	"gatherandgo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupHandler exposes the group management endpoints.
type GroupHandler struct {
	Service group.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Service: svc}
}

// CreateGroupHandler handles POST /api/groups.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID, err := h.Service.CreateGroup(userID, req.Name)
	if err != nil {
		logger.Error("Failed to create group", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": groupID})
}

// GetGroupHandler handles GET /api/groups/:id.
func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	groupID := c.Param("id")

	grp, err := h.Service.GetGroup(groupID)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grp)
}

// ListGroupsHandler handles GET /api/groups.
func (h *GroupHandler) ListGroupsHandler(c *gin.Context) {
	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	groups, err := h.Service.ListGroupsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// JoinGroupHandler handles POST /api/groups/:id/join.
func (h *GroupHandler) JoinGroupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := userIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}
	groupID := c.Param("id")

	if err := h.Service.JoinGroup(userID, groupID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to join group", zap.String("groupID", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined group"})
}

// InviteToGroupHandler handles POST /api/groups/:id/invite.
func (h *GroupHandler) InviteToGroupHandler(c *gin.Context) {
	groupID := c.Param("id")

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.InviteByEmail(groupID, req.Email); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invite recorded"})
}

// FinalizeGroupHandler handles POST /api/groups/:id/finalize.
func (h *GroupHandler) FinalizeGroupHandler(c *gin.Context) {
	groupID := c.Param("id")

	if err := h.Service.FinalizeGroup(groupID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group finalized"})
}
