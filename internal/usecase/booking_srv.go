package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"movie-booking/internal/booking"
	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/payment"
	"movie-booking/internal/queue"
	"movie-booking/internal/ticket"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The gateway contract takes amounts in minor units: totals are charged
// in paise.
const (
	chargeCurrency     = "INR"
	minorUnitsPerRupee = 100
)

type BookingService interface {
	// SelectShowtime starts a booking: it pins the showtime to the user's
	// session, regenerates the seat map, and drops any previous selection.
	SelectShowtime(ctx context.Context, userID uuid.UUID, showtimeID string) (*response.SeatStateResponse, error)
	GetSeatState(ctx context.Context, userID uuid.UUID) (*response.SeatStateResponse, error)
	ToggleSeat(ctx context.Context, userID uuid.UUID, seatID string) (*response.SeatStateResponse, error)
	ClearSelection(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID) (*response.BookingResponse, error)
	UserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	Ticket(ctx context.Context, userID uuid.UUID, bookingID string) ([]byte, string, error)
}

type bookingService struct {
	repo      *repository.Repository
	config    *utils.Config
	sessions  *booking.Sessions
	gateway   payment.Gateway
	publisher *queue.Publisher
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	sessions *booking.Sessions,
	gateway payment.Gateway,
	publisher *queue.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		config:    config,
		sessions:  sessions,
		gateway:   gateway,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) SelectShowtime(ctx context.Context, userID uuid.UUID, showtimeID string) (*response.SeatStateResponse, error) {
	id, err := utils.ParseUUID(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID")
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("get showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime not found")
	}

	sess := s.sessions.Get(userID)
	epoch := sess.Begin(showtime)
	seats := booking.GenerateSeats(showtime.ID.String())
	if !sess.ApplySeats(epoch, seats) {
		// A newer selection raced this one; its own seat map wins.
		s.log.Debug("Stale seat map dropped",
			zap.String("user_id", userID.String()),
			zap.String("showtime_id", showtimeID))
	}

	s.log.Info("Showtime selected",
		zap.String("user_id", userID.String()),
		zap.String("showtime_id", showtimeID))

	return s.seatState(sess)
}

func (s *bookingService) GetSeatState(ctx context.Context, userID uuid.UUID) (*response.SeatStateResponse, error) {
	return s.seatState(s.sessions.Get(userID))
}

func (s *bookingService) ToggleSeat(ctx context.Context, userID uuid.UUID, seatID string) (*response.SeatStateResponse, error) {
	sess := s.sessions.Get(userID)
	if sess.Showtime() == nil {
		return nil, failedPrecondition("no showtime selected")
	}

	seat, changed := sess.ToggleSeat(seatID)
	if !changed {
		if seat.ID == "" {
			return nil, fmt.Errorf("seat not found")
		}
		return nil, failedPrecondition("seat %s is not available", seat.Label())
	}

	return s.seatState(sess)
}

func (s *bookingService) ClearSelection(ctx context.Context, userID uuid.UUID) error {
	s.sessions.Get(userID).Clear()
	return nil
}

// Checkout commits the in-progress booking: it prices the selection once,
// charges the gateway, and persists a denormalized snapshot. On any failure
// the session keeps its showtime and selection so the user can retry; only a
// successful commit clears them.
func (s *bookingService) Checkout(ctx context.Context, userID uuid.UUID) (*response.BookingResponse, error) {
	sess := s.sessions.Get(userID)

	showtime := sess.Showtime()
	if showtime == nil {
		return nil, failedPrecondition("no showtime selected")
	}

	selected := sess.Selected()
	if len(selected) == 0 {
		return nil, failedPrecondition("no seats selected")
	}

	if stale := sess.StaleSelected(); len(stale) > 0 {
		labels := make([]string, 0, len(stale))
		for _, seat := range stale {
			labels = append(labels, seat.Label())
		}
		return nil, failedPrecondition("seats no longer available: %s", strings.Join(labels, ", "))
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Error("Failed to get movie for checkout", zap.Error(err))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	theater, err := s.repo.Theater.FindByID(ctx, showtime.TheaterID)
	if err != nil {
		s.log.Error("Failed to get theater for checkout", zap.Error(err))
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user for checkout", zap.Error(err))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Per-seat price comes from the movie, falling back to the showtime
	// when the movie carries none.
	price := movie.Price
	if price == 0 {
		price = showtime.Price
	}
	total := sess.Total(price, s.config.Pricing.ServiceFee)
	orderID := utils.GenerateOrderID()

	txnID, err := s.gateway.Charge(ctx, payment.Charge{
		OrderID:       orderID,
		AmountMinor:   int64(math.Round(total * minorUnitsPerRupee)),
		Currency:      chargeCurrency,
		Description:   fmt.Sprintf("Tickets for %s", movie.Title),
		CustomerName:  user.Username,
		CustomerEmail: user.Email,
	})
	if err != nil {
		s.log.Error("Payment failed",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("payment failed")
	}

	now := time.Now()
	record := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:         orderID,
		UserID:          userID,
		SeatLabels:      sess.SelectedLabels(),
		TotalAmount:     total,
		Status:          entity.BookingStatusConfirmed,
		MovieTitle:      movie.Title,
		PosterURL:       derefString(movie.PosterURL),
		BackdropURL:     derefString(movie.BackdropURL),
		TheaterName:     theater.Name,
		TheaterLocation: theater.Location,
		ShowDay:         showtime.ShowDate.Weekday().String(),
		ShowDate:        showtime.ShowDate.Format("02 January 2006"),
		ShowTime:        showtime.ShowTime,
	}

	if err := s.repo.Booking.Create(ctx, record); err != nil {
		// Selection and showtime stay intact so the user can retry.
		s.log.Error("Failed to save booking",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("transaction_id", txnID))
		return nil, fmt.Errorf("save booking: %w", err)
	}

	sess.Clear()

	s.publisher.Publish(ctx, queue.BookingEvent{
		Type:        "booking.confirmed",
		BookingID:   record.ID.String(),
		OrderID:     orderID,
		UserID:      userID.String(),
		TotalAmount: total,
		At:          now,
	})

	s.log.Info("Booking confirmed",
		zap.String("booking_id", record.ID.String()),
		zap.String("order_id", orderID),
		zap.String("transaction_id", txnID),
		zap.Float64("total", total),
		zap.Int("seats", len(record.SeatLabels)))

	resp := response.BookingToResponse(record)
	return &resp, nil
}

func (s *bookingService) UserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

// CancelBooking flips the status to cancelled and nothing else; the record
// keeps its snapshot. Cancelling an already-cancelled booking is a no-op.
func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	record, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if record.Status == entity.BookingStatusCancelled {
		resp := response.BookingToResponse(record)
		return &resp, nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, record.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	record.Status = entity.BookingStatusCancelled

	s.publisher.Publish(ctx, queue.BookingEvent{
		Type:        "booking.cancelled",
		BookingID:   record.ID.String(),
		OrderID:     record.OrderID,
		UserID:      userID.String(),
		TotalAmount: record.TotalAmount,
		At:          time.Now(),
	})

	s.log.Info("Booking cancelled",
		zap.String("booking_id", record.ID.String()),
		zap.String("order_id", record.OrderID))

	resp := response.BookingToResponse(record)
	return &resp, nil
}

// Ticket renders the e-ticket PDF for a confirmed or cancelled booking and
// returns the bytes plus a download filename.
func (s *bookingService) Ticket(ctx context.Context, userID uuid.UUID, bookingID string) ([]byte, string, error) {
	record, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}

	data, err := ticket.Build(record)
	if err != nil {
		s.log.Error("Failed to build ticket", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, "", fmt.Errorf("build ticket: %w", err)
	}

	return data, record.OrderID + ".pdf", nil
}

// findOwnedBooking hides other users' bookings behind not-found.
func (s *bookingService) findOwnedBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	record, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if record == nil || record.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	return record, nil
}

func (s *bookingService) seatState(sess *booking.Session) (*response.SeatStateResponse, error) {
	showtime := sess.Showtime()
	if showtime == nil {
		return nil, failedPrecondition("no showtime selected")
	}

	return &response.SeatStateResponse{
		Showtime: response.ShowtimeToResponse(showtime),
		Seats:    sess.SeatMap(),
		Selected: sess.Selected(),
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
