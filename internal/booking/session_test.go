package booking

import (
	"testing"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShowtime() *entity.Showtime {
	return &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		MovieID:    uuid.New(),
		TheaterID:  uuid.New(),
		ShowTime:   "09:30 AM",
		Price:      150,
	}
}

func availableSeats(ids ...string) []Seat {
	seats := make([]Seat, 0, len(ids))
	for i, id := range ids {
		seats = append(seats, Seat{
			ID: id, Row: "C", Number: i + 1, Column: i + 1,
			Category: CategoryStandard, Available: true,
		})
	}
	return seats
}

func TestSessionBeginAndApply(t *testing.T) {
	sess := NewSession()
	st := testShowtime()

	epoch := sess.Begin(st)
	assert.True(t, sess.ApplySeats(epoch, availableSeats("s1", "s2")))

	assert.Equal(t, st, sess.Showtime())
	assert.Len(t, sess.SeatMap(), 2)
}

func TestSessionStaleSeatMapDropped(t *testing.T) {
	sess := NewSession()

	oldEpoch := sess.Begin(testShowtime())
	sess.Begin(testShowtime())

	// A seat map generated for the first showtime arrives late.
	assert.False(t, sess.ApplySeats(oldEpoch, availableSeats("old")))
	assert.Empty(t, sess.SeatMap())
}

func TestSessionBeginClearsSelection(t *testing.T) {
	sess := NewSession()

	epoch := sess.Begin(testShowtime())
	sess.ApplySeats(epoch, availableSeats("s1"))
	_, changed := sess.ToggleSeat("s1")
	require.True(t, changed)

	sess.Begin(testShowtime())
	assert.Empty(t, sess.Selected())
	assert.Empty(t, sess.SeatMap())
}

func TestSessionToggleSeat(t *testing.T) {
	sess := NewSession()
	epoch := sess.Begin(testShowtime())
	seats := availableSeats("s1", "s2")
	seats[1].Available = false
	sess.ApplySeats(epoch, seats)

	seat, changed := sess.ToggleSeat("s1")
	assert.True(t, changed)
	assert.Equal(t, "s1", seat.ID)

	// Unavailable seats don't select.
	seat, changed = sess.ToggleSeat("s2")
	assert.False(t, changed)
	assert.Equal(t, "s2", seat.ID)

	// Unknown seats resolve to nothing.
	seat, changed = sess.ToggleSeat("nope")
	assert.False(t, changed)
	assert.Empty(t, seat.ID)

	assert.Equal(t, []string{"C1"}, sess.SelectedLabels())
}

func TestSessionStaleSelected(t *testing.T) {
	sess := NewSession()
	epoch := sess.Begin(testShowtime())
	sess.ApplySeats(epoch, availableSeats("s1", "s2"))
	sess.ToggleSeat("s1")
	sess.ToggleSeat("s2")

	require.Empty(t, sess.StaleSelected())

	// Refresh the map with s2 now taken.
	refreshed := availableSeats("s1", "s2")
	refreshed[1].Available = false
	sess.ApplySeats(epoch, refreshed)

	stale := sess.StaleSelected()
	require.Len(t, stale, 1)
	assert.Equal(t, "s2", stale[0].ID)
}

func TestSessionTotal(t *testing.T) {
	sess := NewSession()
	epoch := sess.Begin(testShowtime())
	sess.ApplySeats(epoch, availableSeats("s1", "s2"))
	sess.ToggleSeat("s1")
	sess.ToggleSeat("s2")

	// 2 seats x 200 + 20 fee
	assert.InDelta(t, 420.0, sess.Total(200, 20), 0.001)
}

func TestSessionClear(t *testing.T) {
	sess := NewSession()
	epoch := sess.Begin(testShowtime())
	sess.ApplySeats(epoch, availableSeats("s1"))
	sess.ToggleSeat("s1")

	sess.Clear()

	assert.Nil(t, sess.Showtime())
	assert.Empty(t, sess.SeatMap())
	assert.Empty(t, sess.Selected())

	// The clear bumped the epoch, so the old seat map can't come back.
	assert.False(t, sess.ApplySeats(epoch, availableSeats("s1")))
}

func TestSessionsLazyCreate(t *testing.T) {
	m := NewSessions()
	userA := uuid.New()
	userB := uuid.New()

	assert.Same(t, m.Get(userA), m.Get(userA))
	assert.NotSame(t, m.Get(userA), m.Get(userB))
}
