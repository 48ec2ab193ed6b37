package usecase

import (
	"context"
	"errors"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// In-memory repository fakes. Each one keeps entities in a map and mimics the
// pgx repositories' nil-on-missing contract.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	r.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session // keyed by token
	revoked  []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	r.revoked = append(r.revoked, token)
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
	order  []uuid.UUID
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
	for _, m := range movies {
		r.movies[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	r.movies[movie.ID] = movie
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return r.movies[id], nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	out := make([]*entity.Movie, 0, len(r.order))
	for _, id := range r.order {
		if m, ok := r.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return errors.New("movie not found")
	}
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.movies[id]; !ok {
		return errors.New("movie not found")
	}
	delete(r.movies, id)
	return nil
}

type fakeTheaterRepo struct {
	theaters map[uuid.UUID]*entity.Theater
}

func newFakeTheaterRepo(theaters ...*entity.Theater) *fakeTheaterRepo {
	r := &fakeTheaterRepo{theaters: make(map[uuid.UUID]*entity.Theater)}
	for _, t := range theaters {
		r.theaters[t.ID] = t
	}
	return r
}

func (r *fakeTheaterRepo) Create(ctx context.Context, theater *entity.Theater) error {
	r.theaters[theater.ID] = theater
	return nil
}

func (r *fakeTheaterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	return r.theaters[id], nil
}

func (r *fakeTheaterRepo) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	out := make([]*entity.Theater, 0, len(r.theaters))
	for _, t := range r.theaters {
		out = append(out, t)
	}
	return out, nil
}

type fakeShowtimeRepo struct {
	showtimes map[uuid.UUID]*entity.Showtime
}

func newFakeShowtimeRepo(showtimes ...*entity.Showtime) *fakeShowtimeRepo {
	r := &fakeShowtimeRepo{showtimes: make(map[uuid.UUID]*entity.Showtime)}
	for _, st := range showtimes {
		r.showtimes[st.ID] = st
	}
	return r
}

func (r *fakeShowtimeRepo) Create(ctx context.Context, showtime *entity.Showtime) error {
	r.showtimes[showtime.ID] = showtime
	return nil
}

func (r *fakeShowtimeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	return r.showtimes[id], nil
}

func (r *fakeShowtimeRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	var out []*entity.Showtime
	for _, st := range r.showtimes {
		if st.MovieID == movieID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *fakeShowtimeRepo) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Showtime, error) {
	var out []*entity.Showtime
	for _, st := range r.showtimes {
		if st.TheaterID == theaterID {
			out = append(out, st)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*entity.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

type fakeGateway struct {
	charges []payment.Charge
	err     error
}

func (g *fakeGateway) Charge(ctx context.Context, charge payment.Charge) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.charges = append(g.charges, charge)
	return "txn_test", nil
}
