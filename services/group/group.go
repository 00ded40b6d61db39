package group

import (
	"fmt"
	"time"

	"gatherandgo/models"
	"gatherandgo/utils"

	"go.uber.org/zap"
)

// CreateGroup creates a new group with the creator as its only member.
// Store failures surface to the caller unchanged; there is no local recovery.
func (s *DefaultGroupService) CreateGroup(userID, name string) (string, error) {
	logger := utils.GetLogger()

	newGroup := &models.Group{
		Name:          name,
		CreatedBy:     userID,
		MemberIDs:     []string{userID},
		InvitedEmails: []string{},
		Status:        models.GroupStatusPlanning,
		CreatedAt:     time.Now(),
	}

	groupID, err := s.Repo.Create(newGroup)
	if err != nil {
		logger.Error("Failed to create group", zap.String("userID", userID), zap.Error(err))
		return "", fmt.Errorf("failed to create group: %w", err)
	}

	logger.Info("Group created", zap.String("groupID", groupID), zap.String("createdBy", userID))
	return groupID, nil
}

// JoinGroup adds userID to the group's member set. The union-append happens
// atomically in the store, so concurrent joins from different users cannot
// lose an update and repeated joins cannot create duplicates.
func (s *DefaultGroupService) JoinGroup(userID, groupID string) error {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByID(groupID); err != nil {
		return err
	}

	if err := s.Repo.AddMember(groupID, userID); err != nil {
		logger.Error("Failed to join group", zap.String("userID", userID), zap.String("groupID", groupID), zap.Error(err))
		return fmt.Errorf("failed to join group: %w", err)
	}

	logger.Info("User joined group", zap.String("userID", userID), zap.String("groupID", groupID))
	return nil
}

// GetGroup retrieves a group by id.
func (s *DefaultGroupService) GetGroup(groupID string) (*models.Group, error) {
	return s.Repo.GetByID(groupID)
}

// ListGroupsForUser retrieves every group the user belongs to.
func (s *DefaultGroupService) ListGroupsForUser(userID string) ([]models.Group, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []models.Group
	for _, g := range all {
		if g.HasMember(userID) {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

// InviteByEmail records an email invitation on the group. Uses the same
// atomic set-union as membership, so repeat invites are no-ops.
func (s *DefaultGroupService) InviteByEmail(groupID, email string) error {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByID(groupID); err != nil {
		return err
	}

	if err := s.Repo.AddInvitedEmail(groupID, email); err != nil {
		logger.Error("Failed to record invite", zap.String("groupID", groupID), zap.Error(err))
		return fmt.Errorf("failed to record invite: %w", err)
	}
	return nil
}

// FinalizeGroup transitions the group from planning to finalized.
func (s *DefaultGroupService) FinalizeGroup(groupID string) error {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByID(groupID); err != nil {
		return err
	}

	if err := s.Repo.SetStatus(groupID, models.GroupStatusFinalized); err != nil {
		logger.Error("Failed to finalize group", zap.String("groupID", groupID), zap.Error(err))
		return fmt.Errorf("failed to finalize group: %w", err)
	}

	logger.Info("Group finalized", zap.String("groupID", groupID))
	return nil
}
