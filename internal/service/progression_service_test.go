package service

import (
	"errors"
	"sync"
	"testing"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"
)

var testThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5000}

// memoryUserStore is a mutex-guarded in-memory stand-in for the user
// repository, mirroring its atomic-increment and monotonic-promote contract.
type memoryUserStore struct {
	mu        sync.Mutex
	users     map[uint]*model.User
	applyXP   int
	promotes  int
	findCalls int
}

func newMemoryUserStore(users ...*model.User) *memoryUserStore {
	store := &memoryUserStore{users: make(map[uint]*model.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (m *memoryUserStore) FindByID(id uint) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findCalls++
	user, ok := m.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserStore) ApplyXP(userID uint, amount int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyXP++
	user, ok := m.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	user.XP += amount
	copied := *user
	return &copied, nil
}

func (m *memoryUserStore) PromoteLevel(userID uint, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.promotes++
	if user, ok := m.users[userID]; ok && user.Level < level {
		user.Level = level
	}
	return nil
}

type badgeRecorder struct {
	mu     sync.Mutex
	badges []*model.Achievement
	err    error
}

func (b *badgeRecorder) Create(a *model.Achievement) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.badges = append(b.badges, a)
	return nil
}

func newTestProgression(store *memoryUserStore, badges *badgeRecorder) *ProgressionService {
	return NewProgressionService(store, badges, config.GameConfig{LevelThresholds: testThresholds})
}

func TestLevelForXP(t *testing.T) {
	svc := newTestProgression(newMemoryUserStore(), nil)

	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{4999, 7},
		{5000, 8},
		{999999, 8}, // capped at the top of the table
	}
	for _, tt := range tests {
		if got := svc.LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestNextLevelXP(t *testing.T) {
	svc := newTestProgression(newMemoryUserStore(), nil)

	if got := svc.NextLevelXP(1); got != 100 {
		t.Errorf("NextLevelXP(1) = %d, want 100", got)
	}
	if got := svc.NextLevelXP(7); got != 5000 {
		t.Errorf("NextLevelXP(7) = %d, want 5000", got)
	}
	if got := svc.NextLevelXP(8); got != 0 {
		t.Errorf("NextLevelXP(8) = %d, want 0 at the top of the table", got)
	}
}

func TestAwardExperience_CrossesThreshold(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 90, Level: 1})
	badges := &badgeRecorder{}
	svc := newTestProgression(store, badges)

	user, err := svc.AwardExperience(1, 20)
	if err != nil {
		t.Fatalf("AwardExperience: %v", err)
	}
	if user.XP != 110 {
		t.Errorf("XP = %d, want 110", user.XP)
	}
	if user.Level != 2 {
		t.Errorf("Level = %d, want 2", user.Level)
	}
	if len(badges.badges) != 1 || badges.badges[0].Level != 2 {
		t.Errorf("expected one level-2 badge, got %+v", badges.badges)
	}
}

func TestAwardExperience_CrossesMultipleThresholds(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 240, Level: 2})
	badges := &badgeRecorder{}
	svc := newTestProgression(store, badges)

	user, err := svc.AwardExperience(1, 300)
	if err != nil {
		t.Fatalf("AwardExperience: %v", err)
	}
	if user.XP != 540 {
		t.Errorf("XP = %d, want 540", user.XP)
	}
	if user.Level != 4 {
		t.Errorf("Level = %d, want 4", user.Level)
	}
	// one badge per crossed level, in order
	if len(badges.badges) != 2 {
		t.Fatalf("expected 2 badges, got %d", len(badges.badges))
	}
	if badges.badges[0].Level != 3 || badges.badges[1].Level != 4 {
		t.Errorf("badge levels = [%d, %d], want [3, 4]", badges.badges[0].Level, badges.badges[1].Level)
	}
}

func TestAwardExperience_NoLevelChangeWithinBand(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 100, Level: 2})
	badges := &badgeRecorder{}
	svc := newTestProgression(store, badges)

	user, err := svc.AwardExperience(1, 10)
	if err != nil {
		t.Fatalf("AwardExperience: %v", err)
	}
	if user.XP != 110 || user.Level != 2 {
		t.Errorf("got XP=%d Level=%d, want XP=110 Level=2", user.XP, user.Level)
	}
	if store.promotes != 0 {
		t.Errorf("expected no promote call, got %d", store.promotes)
	}
	if len(badges.badges) != 0 {
		t.Errorf("expected no badges, got %d", len(badges.badges))
	}
}

func TestAwardExperience_ZeroAwardPerformsNoWrite(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 50, Level: 1})
	svc := newTestProgression(store, &badgeRecorder{})

	user, err := svc.AwardExperience(1, 0)
	if err != nil {
		t.Fatalf("AwardExperience: %v", err)
	}
	if user.XP != 50 || user.Level != 1 {
		t.Errorf("zero award must not change state, got XP=%d Level=%d", user.XP, user.Level)
	}
	if store.applyXP != 0 {
		t.Errorf("zero award must not hit ApplyXP, got %d calls", store.applyXP)
	}
}

func TestAwardExperience_NegativeAwardRejected(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 50, Level: 1})
	svc := newTestProgression(store, &badgeRecorder{})

	_, err := svc.AwardExperience(1, -10)
	if !errors.Is(err, util.ErrInvalidAward) {
		t.Fatalf("expected ErrInvalidAward, got %v", err)
	}
	if store.applyXP != 0 {
		t.Errorf("rejected award must not hit the store, got %d calls", store.applyXP)
	}
}

func TestAwardExperience_UnknownUser(t *testing.T) {
	svc := newTestProgression(newMemoryUserStore(), &badgeRecorder{})

	if _, err := svc.AwardExperience(42, 10); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAwardExperience_AwardsAreAdditive(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 0, Level: 1})
	svc := newTestProgression(store, &badgeRecorder{})

	awards := []int{10, 30, 15, 20}
	total := 0
	for _, a := range awards {
		total += a
		user, err := svc.AwardExperience(1, a)
		if err != nil {
			t.Fatalf("AwardExperience(%d): %v", a, err)
		}
		if user.XP != total {
			t.Fatalf("after award of %d: XP = %d, want %d", a, user.XP, total)
		}
	}
}

func TestAwardExperience_ConcurrentAwardsAllLand(t *testing.T) {
	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 0, Level: 1})
	svc := newTestProgression(store, &badgeRecorder{})

	const workers = 2
	const awardsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < awardsPerWorker; i++ {
				if _, err := svc.AwardExperience(1, 10); err != nil {
					t.Errorf("AwardExperience: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	user, err := store.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	want := workers * awardsPerWorker * 10
	if user.XP != want {
		t.Errorf("XP = %d, want %d: concurrent awards must not lose updates", user.XP, want)
	}
	if wantLevel := svc.LevelForXP(want); user.Level != wantLevel {
		t.Errorf("Level = %d, want %d", user.Level, wantLevel)
	}
}
