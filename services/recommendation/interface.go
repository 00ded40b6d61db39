package recommendation

import (
	"time"

	groupRepo "gatherandgo/database/repository/group"
	userRepo "gatherandgo/database/repository/user"
	"gatherandgo/models"

	"github.com/go-redis/redis/v8"
)

// RecommendationService produces candidate events for a group. The contract
// is fail-open: GetRecommendations always returns a non-empty list sorted by
// non-increasing match score, even when the group is unknown or the store is
// unreachable.
type RecommendationService interface {
	GetRecommendations(groupID string) []models.EventRecommendation
}

// DefaultRecommendationService scores the event catalog against the group
// members' stored preferences, falling back to the catalog's own ordering
// whenever anything on that path fails.
type DefaultRecommendationService struct {
	GroupRepo groupRepo.GroupRepository
	UserRepo  userRepo.UserRepository

	// CacheClient may be nil, in which case results are recomputed per call.
	CacheClient *redis.Client
	CacheTTL    time.Duration
}
