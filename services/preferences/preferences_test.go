package preferences

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gatherandgo/database/repository"
	"gatherandgo/models"
)

// fakeUserRepo applies dotted-path merge writes to typed documents, the way
// both real backends resolve them.
type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User
	failMode bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failMode {
		return nil, &repository.StoreReadError{Collection: "users", Err: errors.New("read refused")}
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []models.User
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *fakeUserRepo) UpsertMerge(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failMode {
		return &repository.StoreWriteError{Collection: "users", Err: errors.New("write refused")}
	}
	u, ok := r.users[id]
	if !ok {
		u = &models.User{ID: id, CreatedAt: time.Now()}
		r.users[id] = u
	}
	for path, value := range fields {
		switch path {
		case "name":
			u.Name = value.(string)
		case "email":
			u.Email = value.(string)
		case "updatedAt":
			u.UpdatedAt = value.(time.Time)
		case "preferences.budget":
			r.prefs(u).Budget = value.(*models.Budget)
		case "preferences.activities":
			r.prefs(u).Activities = value.([]string)
		case "preferences.notes":
			r.prefs(u).Notes = value.(string)
		case "preferences.availability":
			r.prefs(u).Availability = value.(*models.Availability)
		}
	}
	return nil
}

func (r *fakeUserRepo) prefs(u *models.User) *models.UserPreferences {
	if u.Preferences == nil {
		u.Preferences = &models.UserPreferences{}
	}
	return u.Preferences
}

func TestSavePreferencesCreatesProfile(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newFakeUserRepo()}

	err := svc.SavePreferences("u1", ProfileUpdate{
		Name: "Sam",
		Preferences: &models.UserPreferences{
			Activities: []string{"Hiking"},
		},
	})
	if err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	user, err := svc.GetProfile("u1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected profile to exist after first save")
	}
	if user.Name != "Sam" {
		t.Errorf("name: expected Sam, got %q", user.Name)
	}
	if user.Preferences == nil || len(user.Preferences.Activities) != 1 || user.Preferences.Activities[0] != "Hiking" {
		t.Errorf("unexpected preferences: %+v", user.Preferences)
	}
	if user.UpdatedAt.IsZero() {
		t.Error("expected updatedAt to be set on save")
	}
}

func TestSavePreferencesMergesPartialSaves(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newFakeUserRepo()}

	first := ProfileUpdate{
		Preferences: &models.UserPreferences{
			Activities: []string{"Hiking", "Food"},
			Budget:     &models.Budget{Min: 0, Max: 50, Currency: "USD"},
		},
	}
	if err := svc.SavePreferences("u1", first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := ProfileUpdate{
		Preferences: &models.UserPreferences{
			Notes: "no late nights",
		},
	}
	if err := svc.SavePreferences("u1", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	user, _ := svc.GetProfile("u1")
	if user == nil || user.Preferences == nil {
		t.Fatal("expected merged profile")
	}
	p := user.Preferences
	if len(p.Activities) != 2 {
		t.Errorf("activities erased by later partial save: %v", p.Activities)
	}
	if p.Budget == nil || p.Budget.Max != 50 {
		t.Errorf("budget erased by later partial save: %+v", p.Budget)
	}
	if p.Notes != "no late nights" {
		t.Errorf("notes: expected merge to add them, got %q", p.Notes)
	}
}

func TestSavePreferencesReplacesProvidedFields(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newFakeUserRepo()}

	_ = svc.SavePreferences("u1", ProfileUpdate{
		Preferences: &models.UserPreferences{Activities: []string{"Hiking"}},
	})
	_ = svc.SavePreferences("u1", ProfileUpdate{
		Preferences: &models.UserPreferences{Activities: []string{"Music", "Food"}},
	})

	user, _ := svc.GetProfile("u1")
	got := user.Preferences.Activities
	if len(got) != 2 || got[0] != "Music" || got[1] != "Food" {
		t.Errorf("activities: expected full replacement [Music Food], got %v", got)
	}
}

func TestGetProfileAbsent(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newFakeUserRepo()}

	user, err := svc.GetProfile("nobody")
	if err != nil {
		t.Fatalf("absent profile must not be an error, got: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil profile for unknown user, got %+v", user)
	}
}

func TestGetProfileReadFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failMode = true
	svc := &DefaultPreferenceService{Repo: repo}

	_, err := svc.GetProfile("u1")
	if err == nil {
		t.Fatal("expected error when the store fails")
	}
	var re *repository.StoreReadError
	if !errors.As(err, &re) {
		t.Errorf("expected StoreReadError, got %T: %v", err, err)
	}
}

func TestSavePreferencesWriteFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failMode = true
	svc := &DefaultPreferenceService{Repo: repo}

	err := svc.SavePreferences("u1", ProfileUpdate{Name: "Sam"})
	if err == nil {
		t.Fatal("expected error when the store fails")
	}
	var we *repository.StoreWriteError
	if !errors.As(err, &we) {
		t.Errorf("expected StoreWriteError, got %T: %v", err, err)
	}
}
