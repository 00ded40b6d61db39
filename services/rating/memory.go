package rating

import (
	"sync"

	"gatherandgo/models"
)

// MemoryLedger is an in-process Ledger keyed by (eventID, userID). Used in
// tests and anywhere a process-local ledger is enough.
type MemoryLedger struct {
	mu      sync.Mutex
	ratings map[string]map[string]int // eventID -> userID -> stars
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{ratings: make(map[string]map[string]int)}
}

// Rate upserts the user's rating and recomputes the aggregate from the full
// per-user set.
func (l *MemoryLedger) Rate(eventID, userID string, stars int) (*Result, error) {
	if err := validStars(stars); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	byUser := l.ratings[eventID]
	if byUser == nil {
		byUser = make(map[string]int)
		l.ratings[eventID] = byUser
	}

	delta := 0
	if _, rated := byUser[userID]; !rated {
		delta = 1
	}
	byUser[userID] = stars

	sum := 0
	for _, s := range byUser {
		sum += s
	}
	count := len(byUser)

	return &Result{
		NewAverage: float64(sum) / float64(count),
		NewCount:   count,
		VoteDelta:  delta,
	}, nil
}

// HasRated reports whether the user has already rated the event.
func (l *MemoryLedger) HasRated(eventID, userID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, rated := l.ratings[eventID][userID]
	return rated, nil
}

// Votes returns the number of distinct users who rated the event.
func (l *MemoryLedger) Votes(eventID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.ratings[eventID]), nil
}

// Summary returns the event's current average and count.
func (l *MemoryLedger) Summary(eventID string) (models.EventRating, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byUser := l.ratings[eventID]
	if len(byUser) == 0 {
		return models.EventRating{}, nil
	}

	sum := 0
	for _, s := range byUser {
		sum += s
	}
	return models.EventRating{
		Average: float64(sum) / float64(len(byUser)),
		Count:   len(byUser),
	}, nil
}
