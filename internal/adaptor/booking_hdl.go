package adaptor

import (
	"fmt"
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// SelectShowtime handles POST /api/showtimes/{id}/select
func (h *BookingHandler) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	state, err := h.service.SelectShowtime(r.Context(), userID, showtimeID)
	if err != nil {
		handleServiceError(h.log, w, err, "select showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime selected", state)
}

// GetSeatState handles GET /api/booking/seats
func (h *BookingHandler) GetSeatState(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	state, err := h.service.GetSeatState(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat state")
		return
	}

	utils.ResponseSuccess(w, "Seat state retrieved successfully", state)
}

// ToggleSeat handles POST /api/booking/seats/{seatID}/toggle
func (h *BookingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	seatID := chi.URLParam(r, "seatID")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	state, err := h.service.ToggleSeat(r.Context(), userID, seatID)
	if err != nil {
		handleServiceError(h.log, w, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "Selection updated", state)
}

// ClearSelection handles POST /api/booking/clear
func (h *BookingHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	if err := h.service.ClearSelection(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "clear selection")
		return
	}

	utils.ResponseSuccess(w, "Selection cleared", nil)
}

// Checkout handles POST /api/checkout
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	booking, err := h.service.Checkout(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookings, err := h.service.UserBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// Ticket handles GET /api/bookings/{id}/ticket and streams the e-ticket PDF.
func (h *BookingHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	data, filename, err := h.service.Ticket(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get ticket")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
