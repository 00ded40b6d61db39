package recommendation

import (
	"math"
	"strconv"
	"strings"

	"gatherandgo/models"
)

// Scoring constants.
const (
	BaseScore    = 50.0
	TagWeight    = 40.0
	BudgetWeight = 10.0
)

// scoreEvent computes a 0..100 match score for an event against the member
// preferences: the share of members whose activities overlap the event's
// tags carries most of the weight, budget fit the rest.
func scoreEvent(event models.EventRecommendation, prefs []models.UserPreferences) int {
	tagMatches := 0
	budgetMatches := 0
	budgetVoters := 0

	price, priced := parsePrice(event.Price)

	for _, p := range prefs {
		if overlaps(p.Activities, event.Tags) {
			tagMatches++
		}
		if p.Budget != nil {
			budgetVoters++
			if priced && price >= p.Budget.Min && price <= p.Budget.Max {
				budgetMatches++
			}
		}
	}

	score := BaseScore + TagWeight*float64(tagMatches)/float64(len(prefs))
	if budgetVoters > 0 {
		score += BudgetWeight * float64(budgetMatches) / float64(budgetVoters)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// overlaps reports whether any activity matches any tag, case-insensitively.
func overlaps(activities, tags []string) bool {
	for _, a := range activities {
		for _, t := range tags {
			if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(t)) {
				return true
			}
		}
	}
	return false
}

// parsePrice extracts the per-person amount from a display price string such
// as "$15/person", "$10 entry" or "Free". The second return is false when no
// amount could be read.
func parsePrice(display string) (float64, bool) {
	s := strings.TrimSpace(strings.ToLower(display))
	if s == "" {
		return 0, false
	}
	if strings.HasPrefix(s, "free") {
		return 0, true
	}

	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}

	amount, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
