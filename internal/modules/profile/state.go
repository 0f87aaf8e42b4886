package profile

import (
	"context"
	"sync"

	"github.com/courtbook/courtbook/internal/modules/profile/domain"
	"github.com/courtbook/courtbook/internal/storage"

	"go.uber.org/zap"
)

// StorageKey holds the persisted user snapshot.
const StorageKey = "user-storage"

type snapshot struct {
	User              *domain.User `json:"user"`
	IsLocationEnabled bool         `json:"isLocationEnabled"`
	FavoriteClubs     []string     `json:"favoriteClubs"`
}

// State owns the signed-in user, the app-level location flag, and the
// favorite club set. Screens only ever read copies and mutate through
// the operations below. Mutations run under the mutex - the design
// assumes a single writer and the lock keeps that explicit now that
// the container lives in a concurrent runtime.
type State struct {
	mu     sync.Mutex
	store  storage.Store
	logger *zap.Logger

	user              *domain.User
	isLocationEnabled bool
	favoriteClubs     []string
}

// NewState restores the container from its snapshot. A missing or
// unreadable snapshot logs and falls back to the default state.
func NewState(ctx context.Context, store storage.Store, logger *zap.Logger) *State {
	s := &State{
		store:         store,
		logger:        logger,
		favoriteClubs: []string{},
	}

	var snap snapshot
	found, err := storage.LoadSnapshot(ctx, store, StorageKey, &snap)
	if err != nil {
		logger.Warn("failed to restore user state, starting from defaults", zap.Error(err))
		return s
	}

	if found {
		s.user = snap.User
		s.isLocationEnabled = snap.IsLocationEnabled
		if snap.FavoriteClubs != nil {
			s.favoriteClubs = snap.FavoriteClubs
		}
	}

	return s
}

// SetUser replaces the current user wholesale. Handing in an invalid
// record is a caller contract violation and is rejected.
func (s *State) SetUser(ctx context.Context, user domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.user = &u
	s.persist(ctx)

	return nil
}

// ClearUser signs the user out. Favorites and the location flag are
// device-level state and survive sign-out.
func (s *State) ClearUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.persist(ctx)
}

// EnableLocation sets the location flag. There is no inverse.
func (s *State) EnableLocation(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLocationEnabled = true
	s.persist(ctx)
}

// ToggleFavoriteClub adds the club id if absent, removes it if
// present, and reports the resulting membership. Total - the id is not
// checked against the club catalog.
func (s *State) ToggleFavoriteClub(ctx context.Context, clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.favoriteClubs {
		if id == clubID {
			s.favoriteClubs = append(s.favoriteClubs[:i], s.favoriteClubs[i+1:]...)
			s.persist(ctx)
			return false
		}
	}

	s.favoriteClubs = append(s.favoriteClubs, clubID)
	s.persist(ctx)

	return true
}

func (s *State) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false
	}

	return *s.user, true
}

func (s *State) IsLocationEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isLocationEnabled
}

func (s *State) FavoriteClubs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.favoriteClubs...)
}

func (s *State) IsFavorite(clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.favoriteClubs {
		if id == clubID {
			return true
		}
	}

	return false
}

// persist is best-effort - a failed write logs and the in-memory state
// stays authoritative for the rest of the process lifetime.
func (s *State) persist(ctx context.Context) {
	snap := snapshot{
		User:              s.user,
		IsLocationEnabled: s.isLocationEnabled,
		FavoriteClubs:     s.favoriteClubs,
	}

	if err := storage.SaveSnapshot(ctx, s.store, StorageKey, snap); err != nil {
		s.logger.Error("failed to persist user state", zap.Error(err))
	}
}
