package recommendation

import (
	"errors"
	"testing"
	"time"

	"gatherandgo/database/repository"
	"gatherandgo/models"

	"github.com/go-redis/redis/v8"
)

type fakeGroupRepo struct {
	group *models.Group
	err   error
}

func (r *fakeGroupRepo) Create(group *models.Group) (string, error) { return "", r.err }
func (r *fakeGroupRepo) GetByID(id string) (*models.Group, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.group == nil || r.group.ID != id {
		return nil, &repository.NotFoundError{Collection: "groups", Key: id}
	}
	return r.group, nil
}
func (r *fakeGroupRepo) GetAll() ([]models.Group, error)             { return nil, r.err }
func (r *fakeGroupRepo) AddMember(groupID, userID string) error      { return r.err }
func (r *fakeGroupRepo) AddInvitedEmail(groupID, email string) error { return r.err }
func (r *fakeGroupRepo) SetStatus(groupID, status string) error      { return r.err }

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}
func (r *fakeUserRepo) GetAll() ([]models.User, error)                { return nil, r.err }
func (r *fakeUserRepo) UpsertMerge(id string, f map[string]any) error { return r.err }

func assertSortedDescending(t *testing.T, events []models.EventRecommendation) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		if events[i].MatchScore > events[i-1].MatchScore {
			t.Fatalf("events not sorted by match score at index %d: %d after %d",
				i, events[i].MatchScore, events[i-1].MatchScore)
		}
	}
}

func assertCatalogOrder(t *testing.T, events []models.EventRecommendation) {
	t.Helper()
	catalog := DefaultCatalog()
	if len(events) != len(catalog) {
		t.Fatalf("expected %d events, got %d", len(catalog), len(events))
	}
	for i := range catalog {
		if events[i].ID != catalog[i].ID {
			t.Fatalf("expected catalog order, got %s at index %d (want %s)",
				events[i].ID, i, catalog[i].ID)
		}
	}
}

func TestRecommendationsFailOpenOnStoreError(t *testing.T) {
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{err: &repository.StoreReadError{Collection: "groups", Err: errors.New("down")}},
		UserRepo:  &fakeUserRepo{},
	}

	events := svc.GetRecommendations("grp-1")
	if len(events) == 0 {
		t.Fatal("fail-open contract broken: got empty list on store error")
	}
	assertCatalogOrder(t, events)
	assertSortedDescending(t, events)
}

func TestRecommendationsFailOpenOnUnknownGroup(t *testing.T) {
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{},
		UserRepo:  &fakeUserRepo{},
	}

	events := svc.GetRecommendations("no-such-group")
	if len(events) == 0 {
		t.Fatal("fail-open contract broken: got empty list for unknown group")
	}
	assertCatalogOrder(t, events)
}

func TestRecommendationsFailOpenOnMemberLoadError(t *testing.T) {
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{group: &models.Group{ID: "grp-1", MemberIDs: []string{"u1"}}},
		UserRepo:  &fakeUserRepo{err: &repository.StoreReadError{Collection: "users", Err: errors.New("down")}},
	}

	events := svc.GetRecommendations("grp-1")
	if len(events) == 0 {
		t.Fatal("fail-open contract broken: got empty list on member load error")
	}
	assertCatalogOrder(t, events)
}

func TestRecommendationsNoPreferencesKeepCatalogOrder(t *testing.T) {
	// Members exist but none of them ever saved preferences.
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{group: &models.Group{ID: "grp-1", MemberIDs: []string{"u1", "u2"}}},
		UserRepo:  &fakeUserRepo{users: map[string]*models.User{"u1": {ID: "u1"}}},
	}

	events := svc.GetRecommendations("grp-1")
	assertCatalogOrder(t, events)
	assertSortedDescending(t, events)
}

func TestRecommendationsPreferenceDrivenOrdering(t *testing.T) {
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{group: &models.Group{ID: "grp-1", MemberIDs: []string{"u1"}}},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"u1": {
				ID: "u1",
				Preferences: &models.UserPreferences{
					Activities: []string{"hiking"},
					Budget:     &models.Budget{Min: 0, Max: 5, Currency: "USD"},
				},
			},
		}},
	}

	events := svc.GetRecommendations("grp-1")
	if len(events) == 0 {
		t.Fatal("expected events")
	}
	assertSortedDescending(t, events)

	// The free hiking event matches both the activity and the budget, so it
	// takes the full score and the top slot.
	if events[0].ID != "evt-7" {
		t.Errorf("expected evt-7 on top, got %s (score %d)", events[0].ID, events[0].MatchScore)
	}
	if events[0].MatchScore != 100 {
		t.Errorf("expected top score 100, got %d", events[0].MatchScore)
	}
}

func TestRecommendationsStableTies(t *testing.T) {
	// Preferences that match no tags but fit every price give all events the
	// same score; ties must keep the catalog's input order.
	svc := &DefaultRecommendationService{
		GroupRepo: &fakeGroupRepo{group: &models.Group{ID: "grp-1", MemberIDs: []string{"u1"}}},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"u1": {
				ID: "u1",
				Preferences: &models.UserPreferences{
					Activities: []string{"skydiving"},
					Budget:     &models.Budget{Min: 0, Max: 1000, Currency: "USD"},
				},
			},
		}},
	}

	events := svc.GetRecommendations("grp-1")
	assertCatalogOrder(t, events)
	for _, e := range events {
		if e.MatchScore != 60 {
			t.Errorf("%s: expected flat score 60, got %d", e.ID, e.MatchScore)
		}
	}
}

func TestRecommendationsSurviveCacheFailure(t *testing.T) {
	// A dead cache backend must behave like a miss on read and a no-op on
	// write; the computed result still comes back.
	svc := &DefaultRecommendationService{
		GroupRepo:   &fakeGroupRepo{group: &models.Group{ID: "grp-1", MemberIDs: []string{"u1"}}},
		UserRepo:    &fakeUserRepo{},
		CacheClient: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond}),
		CacheTTL:    time.Minute,
	}

	events := svc.GetRecommendations("grp-1")
	if len(events) == 0 {
		t.Fatal("expected events despite unreachable cache")
	}
	assertCatalogOrder(t, events)
}

func TestScoreEventAggregatesMembers(t *testing.T) {
	event := models.EventRecommendation{
		Price: "$15/person",
		Tags:  []string{"Music", "Picnic"},
	}
	prefs := []models.UserPreferences{
		{Activities: []string{"music"}, Budget: &models.Budget{Min: 0, Max: 20}},
		{Activities: []string{"chess"}, Budget: &models.Budget{Min: 0, Max: 10}},
	}

	// Half the members match the tags (+20) and half fit the budget (+5).
	got := scoreEvent(event, prefs)
	if got != 75 {
		t.Errorf("expected score 75, got %d", got)
	}
}

func TestOverlapsCaseInsensitive(t *testing.T) {
	if !overlaps([]string{" hiking "}, []string{"Hiking", "Nature"}) {
		t.Error("expected case-insensitive, whitespace-tolerant overlap")
	}
	if overlaps([]string{"Food"}, []string{"Hiking"}) {
		t.Error("expected no overlap")
	}
	if overlaps(nil, []string{"Hiking"}) {
		t.Error("expected no overlap for empty activities")
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		display string
		amount  float64
		ok      bool
	}{
		{"$15/person", 15, true},
		{"$45/person", 45, true},
		{"$10 entry", 10, true},
		{"Free", 0, true},
		{"Free entry", 0, true},
		{"$12.50", 12.5, true},
		{"", 0, false},
		{"call for pricing", 0, false},
	}
	for _, tc := range cases {
		amount, ok := parsePrice(tc.display)
		if ok != tc.ok || amount != tc.amount {
			t.Errorf("parsePrice(%q) = (%v, %v), want (%v, %v)",
				tc.display, amount, ok, tc.amount, tc.ok)
		}
	}
}
