package groupRepo

import "gatherandgo/models"

// GroupRepository defines methods for group data access.
type GroupRepository interface {
	// Create inserts a new group document and returns the store-assigned id.
	Create(group *models.Group) (string, error)
	// GetByID retrieves a group by its id. Returns a repository.NotFoundError
	// when the group does not exist.
	GetByID(id string) (*models.Group, error)
	// GetAll retrieves all groups.
	GetAll() ([]models.Group, error)
	// AddMember appends userID to the group's memberIds with set semantics.
	// The append is atomic at the field level: concurrent calls never lose an
	// update and repeated calls never create duplicates.
	AddMember(groupID, userID string) error
	// AddInvitedEmail appends email to invitedEmails with the same atomic
	// set-union semantics as AddMember.
	AddInvitedEmail(groupID, email string) error
	// SetStatus updates the group's status string.
	SetStatus(groupID, status string) error
}
