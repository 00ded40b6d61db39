package recommendation

import (
	"fmt"
	"sort"

	"gatherandgo/models"
	"gatherandgo/utils"

	"go.uber.org/zap"
)

// GetRecommendations returns the ordered event list for a group. Any failure
// on the matching path is logged and swallowed; the caller always gets a
// usable list. This is the one place in the system where availability beats
// correctness.
func (s *DefaultRecommendationService) GetRecommendations(groupID string) []models.EventRecommendation {
	logger := utils.GetLogger()

	if events, ok := s.cachedRecommendations(groupID); ok {
		return events
	}

	events, err := s.recommendForGroup(groupID)
	if err != nil {
		logger.Warn("Falling back to default catalog",
			zap.String("groupID", groupID), zap.Error(err))
		return DefaultCatalog()
	}

	s.cacheRecommendations(groupID, events)
	return events
}

// recommendForGroup runs the real matching path: load the group, load each
// member's preferences, and re-score the catalog against them.
func (s *DefaultRecommendationService) recommendForGroup(groupID string) ([]models.EventRecommendation, error) {
	grp, err := s.GroupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}

	var prefs []models.UserPreferences
	for _, memberID := range grp.MemberIDs {
		member, err := s.UserRepo.GetByID(memberID)
		if err != nil {
			return nil, fmt.Errorf("failed to load member %s: %w", memberID, err)
		}
		// Members who never saved preferences simply don't contribute.
		if member != nil && member.Preferences != nil {
			prefs = append(prefs, *member.Preferences)
		}
	}

	events := DefaultCatalog()
	if len(prefs) == 0 {
		// Nothing to match against; the catalog's own ordering stands.
		return events, nil
	}

	for i := range events {
		events[i].MatchScore = scoreEvent(events[i], prefs)
	}

	// Ties keep stable input order; no secondary sort key.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].MatchScore > events[j].MatchScore
	})
	return events, nil
}
