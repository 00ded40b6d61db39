package group

import (
	groupRepo "gatherandgo/database/repository/group"
	"gatherandgo/models"
)

// GroupService defines the group management operations.
type GroupService interface {
	// CreateGroup creates a planning group owned by userID and returns the
	// store-assigned group id.
	CreateGroup(userID, name string) (string, error)
	// JoinGroup adds userID to the group's member set. Joining twice is a
	// no-op, never an error.
	JoinGroup(userID, groupID string) error
	// GetGroup retrieves a group by id.
	GetGroup(groupID string) (*models.Group, error)
	// ListGroupsForUser retrieves every group userID is a member of.
	ListGroupsForUser(userID string) ([]models.Group, error)
	// InviteByEmail records an invitation on the group. Idempotent.
	InviteByEmail(groupID, email string) error
	// FinalizeGroup moves the group out of planning.
	FinalizeGroup(groupID string) error
}

// DefaultGroupService is the production implementation.
type DefaultGroupService struct {
	Repo groupRepo.GroupRepository
}
