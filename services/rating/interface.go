package rating

import "gatherandgo/models"

// Result reports the aggregate state after a rating is cast. VoteDelta is 1
// when this was the user's first rating for the event and 0 on a re-rate.
type Result struct {
	NewAverage float64 `json:"newAverage"`
	NewCount   int     `json:"newCount"`
	VoteDelta  int     `json:"voteCountDelta"`
}

// Ledger stores one rating per (event, user) pair and derives everything
// else from that set: the average, the count, and the vote tally. A later
// rating from the same user replaces the earlier one and never
// double-increments the vote count.
//
// Implementations are injected where needed rather than shared as a
// module-level singleton, so tests get isolated ledgers.
type Ledger interface {
	// Rate upserts the user's rating (1..5 stars) for the event and returns
	// the recomputed aggregate. Stars outside 1..5 fail with ValidationError.
	Rate(eventID, userID string, stars int) (*Result, error)
	// HasRated reports whether the user has already rated the event.
	HasRated(eventID, userID string) (bool, error)
	// Votes returns the number of distinct users who have rated the event.
	// Not capped by group size; there is no retraction.
	Votes(eventID string) (int, error)
	// Summary returns the event's current average and rating count.
	Summary(eventID string) (models.EventRating, error)
}

// validStars checks the 1..5 contract shared by all implementations.
func validStars(stars int) error {
	if stars < 1 || stars > 5 {
		return &ValidationError{Field: "stars", Reason: "must be between 1 and 5"}
	}
	return nil
}
