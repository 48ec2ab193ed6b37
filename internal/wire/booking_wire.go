package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// The whole booking flow requires a session: selection state lives
	// server side, keyed by user.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/showtimes/{id}/select", bookingHandler.SelectShowtime)
		r.Get("/api/booking/seats", bookingHandler.GetSeatState)
		r.Post("/api/booking/seats/{seatID}/toggle", bookingHandler.ToggleSeat)
		r.Post("/api/booking/clear", bookingHandler.ClearSelection)
		r.Post("/api/checkout", bookingHandler.Checkout)

		r.Get("/api/bookings", bookingHandler.GetBookings)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
		r.Get("/api/bookings/{id}/ticket", bookingHandler.Ticket)
	})
}
