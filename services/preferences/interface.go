package preferences

import (
	userRepo "gatherandgo/database/repository/user"
	"gatherandgo/models"
)

// ProfileUpdate is a partial user document: only non-zero fields are written.
type ProfileUpdate struct {
	Name        string                  `json:"name,omitempty"`
	Email       string                  `json:"email,omitempty"`
	Preferences *models.UserPreferences `json:"preferences,omitempty"`
}

// PreferenceService defines user profile and preference operations.
type PreferenceService interface {
	// SavePreferences merge-writes the partial update into the user's
	// document, creating it on first save. Fields absent from the update keep
	// their stored values; updatedAt is set on every call.
	SavePreferences(userID string, update ProfileUpdate) error
	// GetProfile retrieves a user's profile. Returns (nil, nil) when no
	// document exists; that is a valid outcome, not a failure.
	GetProfile(userID string) (*models.User, error)
}

// DefaultPreferenceService is the production implementation.
type DefaultPreferenceService struct {
	Repo userRepo.UserRepository
}
