package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"herdbook-go/internal/domain/farms"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users       map[string]*User
	byEmail     map[string]string
	farms       map[string]*farms.Farm
	preferences map[string]*Preferences
	sessions    map[string]*Session

	failCreateFarm error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       make(map[string]*User),
		byEmail:     make(map[string]string),
		farms:       make(map[string]*farms.Farm),
		preferences: make(map[string]*Preferences),
		sessions:    make(map[string]*Session),
	}
}

// Transaction snapshots the maps and restores them when fn fails, so tests
// observe the same all-or-nothing behavior as the real repository.
func (r *fakeUserRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	users := copyMap(r.users)
	byEmail := copyMap(r.byEmail)
	farmsByID := copyMap(r.farms)
	preferences := copyMap(r.preferences)

	if err := fn(r); err != nil {
		r.users = users
		r.byEmail = byEmail
		r.farms = farmsByID
		r.preferences = preferences
		return err
	}
	return nil
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *User) error {
	r.users[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *fakeUserRepo) UpdateUserName(ctx context.Context, userID, name string) error {
	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Name = name
	return nil
}

func (r *fakeUserRepo) CreateFarm(ctx context.Context, farm *farms.Farm) error {
	if r.failCreateFarm != nil {
		return r.failCreateFarm
	}
	r.farms[farm.ID] = farm
	return nil
}

func (r *fakeUserRepo) ListFarmsByOwner(ctx context.Context, ownerID string) ([]farms.Farm, error) {
	var result []farms.Farm
	for _, farm := range r.farms {
		if farm.OwnerID == ownerID {
			result = append(result, *farm)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) CreatePreferences(ctx context.Context, preferences *Preferences) error {
	r.preferences[preferences.UserID] = preferences
	return nil
}

func (r *fakeUserRepo) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	return r.preferences[userID], nil
}

func (r *fakeUserRepo) GetSession(ctx context.Context, token string) (*Session, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, ErrInvalidSession
	}
	return session, nil
}

func TestSignupCreatesUserFarmAndPreferences(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.Signup(context.Background(), SignupInput{
		Name:     "  Ann  ",
		Email:    "Ann@Example.COM",
		Password: "secret",
		FarmName: "North Field",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "Ann" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if user.Email != "ann@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")); err != nil {
		t.Fatalf("stored password does not verify: %v", err)
	}

	ownerFarms, _ := repo.ListFarmsByOwner(context.Background(), user.ID)
	if len(ownerFarms) != 1 || ownerFarms[0].Name != "North Field" {
		t.Fatalf("expected one farm named North Field, got %+v", ownerFarms)
	}

	preferences := repo.preferences[user.ID]
	if preferences == nil || !preferences.EmailAlerts || preferences.DarkMode {
		t.Fatalf("expected default preferences, got %+v", preferences)
	}
}

func TestSignupRollsBackWhenFarmCreateFails(t *testing.T) {
	repo := newFakeUserRepo()
	boom := errors.New("farm insert failed")
	repo.failCreateFarm = boom
	svc := NewService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret",
		FarmName: "North Field",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected farm failure to surface, got %v", err)
	}

	if len(repo.users) != 0 || len(repo.byEmail) != 0 {
		t.Fatalf("expected user rolled back, got %d users", len(repo.users))
	}
	if len(repo.farms) != 0 || len(repo.preferences) != 0 {
		t.Fatalf("expected no partial account, got %d farms %d preferences", len(repo.farms), len(repo.preferences))
	}

	// The address must stay free for a retry.
	repo.failCreateFarm = nil
	if _, err := svc.Signup(context.Background(), SignupInput{Name: "Ann", Email: "ann@example.com", Password: "secret", FarmName: "North Field"}); err != nil {
		t.Fatalf("retry after rollback failed: %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	input := SignupInput{Name: "Ann", Email: "ann@example.com", Password: "secret", FarmName: "Farm"}
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	// A different case of the same address must still collide.
	input.Email = "ANN@example.com"
	if _, err := svc.Signup(context.Background(), input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.c", Password: "x", FarmName: "f"}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := svc.Signup(context.Background(), SignupInput{Name: "Ann", Email: "a@b.c", Password: "x"}); err == nil {
		t.Fatalf("expected error for missing farm name")
	}
}

func TestUpdateAccountRenamesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.Signup(context.Background(), SignupInput{Name: "Ann", Email: "ann@example.com", Password: "secret", FarmName: "North"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	account, err := svc.UpdateAccount(context.Background(), UpdateAccountInput{
		UserID: user.ID,
		Name:   "  Anna  ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.User.Name != "Anna" {
		t.Fatalf("expected renamed user, got %q", account.User.Name)
	}
	if len(account.Farms) != 1 || account.Farms[0].Name != "North" {
		t.Fatalf("expected farm untouched, got %+v", account.Farms)
	}
}

func TestUpdateAccountUnknownUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.UpdateAccount(context.Background(), UpdateAccountInput{UserID: "missing", Name: "Ann"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestVerifySession(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.sessions["good"] = &Session{Token: "good", UserID: "user-1", ExpiresAt: now.Add(time.Hour)}
	repo.sessions["stale"] = &Session{Token: "stale", UserID: "user-1", ExpiresAt: now.Add(-time.Minute)}

	userID, err := svc.VerifySession(context.Background(), "good")
	if err != nil || userID != "user-1" {
		t.Fatalf("expected user-1, got %q err %v", userID, err)
	}
	if _, err := svc.VerifySession(context.Background(), "stale"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
	if _, err := svc.VerifySession(context.Background(), "missing"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for unknown token, got %v", err)
	}
	if _, err := svc.VerifySession(context.Background(), ""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}
}
