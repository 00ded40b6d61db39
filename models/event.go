// models/event.go
package models

// EventRating is the aggregate star rating shown on an event card.
type EventRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// EventRecommendation is a candidate event for a group. Recommendations are
// derived per request and not persisted; the provider returns them sorted by
// descending MatchScore, so the first element is the top match.
type EventRecommendation struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Time        string      `json:"time"`
	Price       string      `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	MatchScore  int         `json:"matchScore"`
	Tags        []string    `json:"tags"`
	Emoji       string      `json:"emoji"`
	Rating      EventRating `json:"rating"`
	Votes       int         `json:"votes"`
}
