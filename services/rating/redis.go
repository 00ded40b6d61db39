package rating

import (
	"context"
	"strconv"
	"time"

	"gatherandgo/database/repository"
	"gatherandgo/models"

	"github.com/go-redis/redis/v8"
)

const ledgerKeyPrefix = "ratings:event:"

// RedisLedger stores ratings in one hash per event, field = user id. HSET's
// return value (number of newly created fields) gives the vote delta
// atomically, so concurrent re-rates never double-count a voter.
type RedisLedger struct {
	client *redis.Client
}

// NewRedisLedger creates a Ledger backed by the given redis client.
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func ledgerKey(eventID string) string {
	return ledgerKeyPrefix + eventID
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// Rate upserts the user's rating and recomputes the aggregate from the full
// hash.
func (l *RedisLedger) Rate(eventID, userID string, stars int) (*Result, error) {
	if err := validStars(stars); err != nil {
		return nil, err
	}

	ctx, cancel := newContext()
	defer cancel()

	created, err := l.client.HSet(ctx, ledgerKey(eventID), userID, stars).Result()
	if err != nil {
		return nil, &repository.StoreWriteError{Collection: ledgerKey(eventID), Err: err}
	}

	summary, err := l.Summary(eventID)
	if err != nil {
		return nil, err
	}

	return &Result{
		NewAverage: summary.Average,
		NewCount:   summary.Count,
		VoteDelta:  int(created),
	}, nil
}

// HasRated reports whether the user has a field in the event's hash.
func (l *RedisLedger) HasRated(eventID, userID string) (bool, error) {
	ctx, cancel := newContext()
	defer cancel()

	rated, err := l.client.HExists(ctx, ledgerKey(eventID), userID).Result()
	if err != nil {
		return false, &repository.StoreReadError{Collection: ledgerKey(eventID), Err: err}
	}
	return rated, nil
}

// Votes returns the number of distinct raters (hash length).
func (l *RedisLedger) Votes(eventID string) (int, error) {
	ctx, cancel := newContext()
	defer cancel()

	n, err := l.client.HLen(ctx, ledgerKey(eventID)).Result()
	if err != nil {
		return 0, &repository.StoreReadError{Collection: ledgerKey(eventID), Err: err}
	}
	return int(n), nil
}

// Summary recomputes the average and count from the full per-user set.
func (l *RedisLedger) Summary(eventID string) (models.EventRating, error) {
	ctx, cancel := newContext()
	defer cancel()

	all, err := l.client.HGetAll(ctx, ledgerKey(eventID)).Result()
	if err != nil {
		return models.EventRating{}, &repository.StoreReadError{Collection: ledgerKey(eventID), Err: err}
	}
	if len(all) == 0 {
		return models.EventRating{}, nil
	}

	sum := 0
	for _, v := range all {
		stars, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		sum += stars
	}
	return models.EventRating{
		Average: float64(sum) / float64(len(all)),
		Count:   len(all),
	}, nil
}
