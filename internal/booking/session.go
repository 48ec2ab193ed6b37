package booking

import (
	"sync"

	"movie-booking/internal/data/entity"
)

// Session is the booking state machine for one user: the selected showtime,
// the generated seat map, and the in-progress selection. A mutex serializes
// mutations; handlers for the same user may race.
//
// Seat maps are applied under an epoch token. Selecting a showtime bumps the
// epoch, and a seat map generated for an older epoch is dropped silently, so
// a slow fetch can never overwrite a newer showtime's map.
type Session struct {
	mu        sync.Mutex
	epoch     uint64
	showtime  *entity.Showtime
	seats     []Seat
	selection *Selection
}

func NewSession() *Session {
	return &Session{selection: NewSelection()}
}

// Begin selects a showtime, clears any previous seat map and selection, and
// returns the epoch token the caller must present when applying seats.
func (s *Session) Begin(showtime *entity.Showtime) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.showtime = showtime
	s.seats = nil
	s.selection.Clear()
	return s.epoch
}

// ApplySeats installs a generated seat map if the epoch is still current.
// Stale results are dropped and false is returned.
func (s *Session) ApplySeats(epoch uint64, seats []Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return false
	}
	s.seats = seats
	return true
}

func (s *Session) Showtime() *entity.Showtime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showtime
}

// SeatMap returns the current seat map in row/column order.
func (s *Session) SeatMap() []Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// ToggleSeat resolves a seat in the current map and toggles it in the
// selection. Unknown, blocked, or unavailable seats leave the selection
// unchanged. Returns the resolved seat and whether the selection changed.
func (s *Session) ToggleSeat(seatID string) (Seat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range s.seats {
		if seat.ID == seatID {
			return seat, s.selection.Toggle(seat)
		}
	}
	return Seat{}, false
}

// Selected returns the selection in click order.
func (s *Session) Selected() []Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Seats()
}

// SelectedLabels flattens the selection to display labels.
func (s *Session) SelectedLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Labels()
}

// StaleSelected returns selected seats that are no longer available in the
// current map. Non-empty means the checkout must be refused.
func (s *Session) StaleSelected() []Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stale []Seat
	for _, sel := range s.selection.Seats() {
		current := false
		for _, seat := range s.seats {
			if seat.ID == sel.ID && seat.Available {
				current = true
				break
			}
		}
		if !current {
			stale = append(stale, sel)
		}
	}
	return stale
}

// Total prices the current selection: per-seat price times seat count plus
// the flat service fee. Computed once at commit time and snapshotted onto
// the booking record.
func (s *Session) Total(pricePerSeat, serviceFee float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricePerSeat*float64(s.selection.Len()) + serviceFee
}

// Clear drops the selection and the selected showtime. The epoch is bumped
// so any in-flight seat generation for the old showtime is discarded.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.showtime = nil
	s.seats = nil
	s.selection.Clear()
}
