package preferences

import (
	"fmt"
	"time"

	"gatherandgo/models"
	"gatherandgo/utils"

	"go.uber.org/zap"
)

// SavePreferences patches only the fields present in the update. Preference
// subfields are written under dotted paths so that saving activities today
// does not erase the notes saved yesterday.
func (s *DefaultPreferenceService) SavePreferences(userID string, update ProfileUpdate) error {
	logger := utils.GetLogger()

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}

	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.Email != "" {
		updateFields["email"] = update.Email
	}
	if p := update.Preferences; p != nil {
		if p.Budget != nil {
			updateFields["preferences.budget"] = p.Budget
		}
		if p.Activities != nil {
			updateFields["preferences.activities"] = p.Activities
		}
		if p.Notes != "" {
			updateFields["preferences.notes"] = p.Notes
		}
		if p.Availability != nil {
			updateFields["preferences.availability"] = p.Availability
		}
	}

	if err := s.Repo.UpsertMerge(userID, updateFields); err != nil {
		logger.Error("Failed to save preferences", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	logger.Debug("Preferences saved", zap.String("userID", userID))
	return nil
}

// GetProfile retrieves a user's profile; absence returns (nil, nil).
func (s *DefaultPreferenceService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}
