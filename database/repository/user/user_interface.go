package userRepo

import "gatherandgo/models"

// UserRepository defines methods for user profile data access. Documents are
// keyed by the externally assigned user id.
type UserRepository interface {
	// GetByID retrieves a user by id. An absent document is a valid outcome
	// and returns (nil, nil); only a failed read returns an error.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// UpsertMerge writes the given fields into the user document, creating it
	// if absent. Fields use dotted paths (e.g. "preferences.activities");
	// fields not present in the map keep their stored values.
	UpsertMerge(id string, fields map[string]any) error
}
