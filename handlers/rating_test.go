package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatherandgo/services/rating"

	"github.com/gin-gonic/gin"
)

// testAuth stands in for the auth middleware.
func testAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newRatingRouter(ledger rating.Ledger, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRatingHandler(ledger)
	r := gin.New()
	r.POST("/api/events/:id/rating", testAuth(userID), h.RateEventHandler)
	r.GET("/api/events/:id/rating", testAuth(userID), h.GetEventRatingHandler)
	return r
}

func postRating(t *testing.T, router *gin.Engine, eventID string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/rating", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateEventEndpoint(t *testing.T) {
	router := newRatingRouter(rating.NewMemoryLedger(), "u1")

	w := postRating(t, router, "evt-1", `{"stars": 4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result rating.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.VoteDelta != 1 {
		t.Errorf("voteCountDelta: expected 1 on first rating, got %d", result.VoteDelta)
	}
	if result.NewCount != 1 || result.NewAverage != 4 {
		t.Errorf("unexpected aggregate: %+v", result)
	}
}

func TestRateEventEndpointRerate(t *testing.T) {
	router := newRatingRouter(rating.NewMemoryLedger(), "u1")

	_ = postRating(t, router, "evt-1", `{"stars": 2}`)
	w := postRating(t, router, "evt-1", `{"stars": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result rating.Result
	_ = json.Unmarshal(w.Body.Bytes(), &result)
	if result.VoteDelta != 0 {
		t.Errorf("voteCountDelta: expected 0 on re-rate, got %d", result.VoteDelta)
	}
	if result.NewCount != 1 || result.NewAverage != 5 {
		t.Errorf("unexpected aggregate after re-rate: %+v", result)
	}
}

func TestRateEventEndpointValidation(t *testing.T) {
	router := newRatingRouter(rating.NewMemoryLedger(), "u1")

	// Out of range.
	if w := postRating(t, router, "evt-1", `{"stars": 9}`); w.Code != http.StatusBadRequest {
		t.Errorf("stars=9: expected 400, got %d", w.Code)
	}
	// Missing payload field.
	if w := postRating(t, router, "evt-1", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing stars: expected 400, got %d", w.Code)
	}
	// Malformed body.
	if w := postRating(t, router, "evt-1", `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: expected 400, got %d", w.Code)
	}
}

func TestGetEventRatingEndpoint(t *testing.T) {
	ledger := rating.NewMemoryLedger()
	_, _ = ledger.Rate("evt-1", "u1", 5)
	_, _ = ledger.Rate("evt-1", "u2", 3)

	router := newRatingRouter(ledger, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/events/evt-1/rating", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		EventID  string `json:"eventId"`
		Rating   struct {
			Average float64 `json:"average"`
			Count   int     `json:"count"`
		} `json:"rating"`
		Votes    int  `json:"votes"`
		HasRated bool `json:"hasRated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EventID != "evt-1" {
		t.Errorf("eventId: expected evt-1, got %q", resp.EventID)
	}
	if resp.Votes != 2 || resp.Rating.Count != 2 {
		t.Errorf("expected 2 votes, got votes=%d count=%d", resp.Votes, resp.Rating.Count)
	}
	if resp.Rating.Average != 4 {
		t.Errorf("average: expected 4, got %v", resp.Rating.Average)
	}
	if !resp.HasRated {
		t.Error("expected hasRated true for u1")
	}
}
