package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-booking/internal/booking"
	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	service  BookingService
	sessions *booking.Sessions
	gateway  *fakeGateway
	bookings *fakeBookingRepo
	movies   *fakeMovieRepo

	userID     uuid.UUID
	showtimeID uuid.UUID
	movie      *entity.Movie
	showtime   *entity.Showtime
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	userID := uuid.New()
	desc := "A space epic"
	poster := "https://img.example/poster.jpg"

	movie := &entity.Movie{
		Base:        entity.Base{ID: uuid.New()},
		Title:       "Interstellar",
		Description: &desc,
		PosterURL:   &poster,
		Genres:      []string{"Sci-Fi"},
		Languages:   []string{"English"},
		Price:       200,
	}
	theater := &entity.Theater{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Galaxy Cinema",
		Location:   "Mumbai",
	}
	showtime := &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		MovieID:    movie.ID,
		TheaterID:  theater.ID,
		ShowDate:   time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		ShowTime:   "09:30 AM",
		Price:      150,
	}

	users := newFakeUserRepo()
	users.users[userID] = &entity.User{
		Base:     entity.Base{ID: userID},
		Username: "tester",
		Email:    "tester@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}

	repo := &repository.Repository{
		User:     users,
		Session:  newFakeSessionRepo(),
		Movie:    newFakeMovieRepo(movie),
		Theater:  newFakeTheaterRepo(theater),
		Showtime: newFakeShowtimeRepo(showtime),
		Booking:  newFakeBookingRepo(),
	}

	config := &utils.Config{
		Pricing: utils.PricingConfig{ServiceFee: 20},
	}

	sessions := booking.NewSessions()
	gateway := &fakeGateway{}

	service := NewBookingService(repo, config, sessions, gateway, nil, testLogger())

	return &bookingFixture{
		service:    service,
		sessions:   sessions,
		gateway:    gateway,
		bookings:   repo.Booking.(*fakeBookingRepo),
		movies:     repo.Movie.(*fakeMovieRepo),
		userID:     userID,
		showtimeID: showtime.ID,
		movie:      movie,
		showtime:   showtime,
	}
}

// selectSeats drives the booking session to a committed-ready state by
// toggling the first n available seats.
func (f *bookingFixture) selectSeats(t *testing.T, n int) {
	t.Helper()

	state, err := f.service.SelectShowtime(context.Background(), f.userID, f.showtimeID.String())
	require.NoError(t, err)

	picked := 0
	for _, seat := range state.Seats {
		if !seat.Available {
			continue
		}
		_, err := f.service.ToggleSeat(context.Background(), f.userID, seat.ID)
		require.NoError(t, err)
		picked++
		if picked == n {
			return
		}
	}
	t.Fatalf("seat map had fewer than %d available seats", n)
}

func TestCheckoutWithoutShowtime(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.Checkout(context.Background(), f.userID)

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Empty(t, f.bookings.bookings)
}

func TestCheckoutWithoutSeats(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.SelectShowtime(context.Background(), f.userID, f.showtimeID.String())
	require.NoError(t, err)

	_, err = f.service.Checkout(context.Background(), f.userID)

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.gateway.charges)
}

func TestCheckoutCommitsSnapshot(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 2)

	resp, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	// 2 seats x movie price 200 + fee 20
	assert.InDelta(t, 420.0, resp.TotalAmount, 0.001)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Len(t, resp.SeatLabels, 2)
	assert.Equal(t, "Interstellar", resp.MovieTitle)
	assert.Equal(t, "Galaxy Cinema", resp.TheaterName)
	assert.Equal(t, "Mumbai", resp.TheaterLocation)
	assert.Equal(t, "Monday", resp.ShowDay)
	assert.Equal(t, "02 March 2026", resp.ShowDate)
	assert.Equal(t, "09:30 AM", resp.ShowTime)
	assert.NotEmpty(t, resp.OrderID)

	// The gateway saw the total in minor units.
	require.Len(t, f.gateway.charges, 1)
	assert.Equal(t, int64(42000), f.gateway.charges[0].AmountMinor)
	assert.Equal(t, "INR", f.gateway.charges[0].Currency)

	// Commit clears the session.
	_, err = f.service.GetSeatState(context.Background(), f.userID)
	var precondition *PreconditionError
	assert.ErrorAs(t, err, &precondition)
}

func TestCheckoutPriceFallsBackToShowtime(t *testing.T) {
	f := newBookingFixture(t)
	f.movie.Price = 0
	f.selectSeats(t, 1)

	resp, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	// 1 seat x showtime price 150 + fee 20
	assert.InDelta(t, 170.0, resp.TotalAmount, 0.001)
}

func TestCheckoutTotalSurvivesPriceChange(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	resp, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	// Repricing the movie after commit never rewrites the snapshot.
	f.movie.Price = 999
	stored := f.bookings.bookings[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored)
	assert.InDelta(t, 220.0, stored.TotalAmount, 0.001)
}

func TestCheckoutPersistFailureKeepsSelection(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)
	f.bookings.createErr = errors.New("connection reset")

	_, err := f.service.Checkout(context.Background(), f.userID)
	require.Error(t, err)

	// Showtime and selection survive for a retry.
	state, err := f.service.GetSeatState(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, state.Selected, 1)

	f.bookings.createErr = nil
	_, err = f.service.Checkout(context.Background(), f.userID)
	assert.NoError(t, err)
}

func TestToggleSeatPreconditions(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.ToggleSeat(context.Background(), f.userID, "anything")
	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)

	_, err = f.service.SelectShowtime(context.Background(), f.userID, f.showtimeID.String())
	require.NoError(t, err)

	_, err = f.service.ToggleSeat(context.Background(), f.userID, "no-such-seat")
	assert.EqualError(t, err, "seat not found")
}

func TestClearSelection(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	require.NoError(t, f.service.ClearSelection(context.Background(), f.userID))

	_, err := f.service.GetSeatState(context.Background(), f.userID)
	var precondition *PreconditionError
	assert.ErrorAs(t, err, &precondition)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	created, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	cancelled, err := f.service.CancelBooking(context.Background(), f.userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	// Snapshot fields are untouched by the cancel.
	assert.Equal(t, created.SeatLabels, cancelled.SeatLabels)
	assert.InDelta(t, created.TotalAmount, cancelled.TotalAmount, 0.001)

	// Cancelling again is a no-op, not an error.
	again, err := f.service.CancelBooking(context.Background(), f.userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", again.Status)
}

func TestCancelBookingHidesOtherUsers(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	created, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	_, err = f.service.CancelBooking(context.Background(), uuid.New(), created.ID)
	assert.EqualError(t, err, "booking not found")
}

func TestUserBookings(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	_, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	bookings, err := f.service.UserBookings(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	other, err := f.service.UserBookings(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTicket(t *testing.T) {
	f := newBookingFixture(t)
	f.selectSeats(t, 1)

	created, err := f.service.Checkout(context.Background(), f.userID)
	require.NoError(t, err)

	data, filename, err := f.service.Ticket(context.Background(), f.userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderID+".pdf", filename)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}
