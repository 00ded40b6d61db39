package recommendation

import (
	"context"
	"encoding/json"
	"time"

	"gatherandgo/models"
	"gatherandgo/utils"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "recommend:group:"

// cachedRecommendations looks up a previously computed result. Every cache
// failure is treated as a miss; the fail-open contract extends to the cache.
func (s *DefaultRecommendationService) cachedRecommendations(groupID string) ([]models.EventRecommendation, bool) {
	if s.CacheClient == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := s.CacheClient.Get(ctx, cacheKeyPrefix+groupID).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var events []models.EventRecommendation
	if err := json.Unmarshal([]byte(val), &events); err != nil || len(events) == 0 {
		return nil, false
	}
	return events, true
}

func (s *DefaultRecommendationService) cacheRecommendations(groupID string, events []models.EventRecommendation) {
	if s.CacheClient == nil {
		return
	}

	data, err := json.Marshal(events)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := s.CacheClient.Set(ctx, cacheKeyPrefix+groupID, data, ttl).Err(); err != nil {
		utils.GetLogger().Debug("Failed to cache recommendations",
			zap.String("groupID", groupID), zap.Error(err))
	}
}
