package booking

import (
	"context"
	"sync"
	"time"

	"github.com/courtbook/courtbook/internal/modules/booking/domain"
	"github.com/courtbook/courtbook/internal/storage"

	"go.uber.org/zap"
)

// StorageKey holds the persisted booking snapshot.
const StorageKey = "booking-storage"

type snapshot struct {
	Bookings     []domain.Booking `json:"bookings"`
	SelectedDay  int              `json:"selectedDay"`
	SelectedTime *string          `json:"selectedTime"`
}

// State owns the list of the user's bookings plus the transient
// day/time selection the club-browsing flow feeds into booking
// creation. Same single-writer discipline as the profile container.
type State struct {
	mu     sync.Mutex
	store  storage.Store
	logger *zap.Logger

	bookings     []domain.Booking
	selectedDay  int
	selectedTime *string
}

// NewState restores the container from its snapshot. The selected day
// defaults to now's day of month, the selected time to absent.
func NewState(ctx context.Context, store storage.Store, logger *zap.Logger, now time.Time) *State {
	s := &State{
		store:       store,
		logger:      logger,
		bookings:    []domain.Booking{},
		selectedDay: now.Day(),
	}

	var snap snapshot
	found, err := storage.LoadSnapshot(ctx, store, StorageKey, &snap)
	if err != nil {
		logger.Warn("failed to restore booking state, starting from defaults", zap.Error(err))
		return s
	}

	if found {
		if snap.Bookings != nil {
			s.bookings = snap.Bookings
		}
		s.selectedDay = snap.SelectedDay
		s.selectedTime = snap.SelectedTime
	}

	return s
}

// Add appends unconditionally. The caller owns id uniqueness and the
// club reference; there is no time/court conflict check - the modeled
// system has no double-booking prevention.
func (s *State) Add(ctx context.Context, b domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	s.persist(ctx)
}

// Cancel removes the booking with the given id. A miss is a no-op, not
// an error - cancelling twice is fine.
func (s *State) Cancel(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			break
		}
	}

	s.persist(ctx)
}

func (s *State) SetSelectedDay(ctx context.Context, day int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedDay = day
	s.persist(ctx)
}

func (s *State) SetSelectedTime(ctx context.Context, t *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedTime = t
	s.persist(ctx)
}

func (s *State) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Booking{}, s.bookings...)
}

func (s *State) Booking(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}

	return domain.Booking{}, false
}

func (s *State) Selection() (int, *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedTime == nil {
		return s.selectedDay, nil
	}

	t := *s.selectedTime
	return s.selectedDay, &t
}

// persist is best-effort - a failed write logs and the in-memory state
// stays authoritative.
func (s *State) persist(ctx context.Context) {
	snap := snapshot{
		Bookings:     s.bookings,
		SelectedDay:  s.selectedDay,
		SelectedTime: s.selectedTime,
	}

	if err := storage.SaveSnapshot(ctx, s.store, StorageKey, snap); err != nil {
		s.logger.Error("failed to persist booking state", zap.Error(err))
	}
}
