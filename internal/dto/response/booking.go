package response

import (
	"time"

	"movie-booking/internal/booking"
	"movie-booking/internal/data/entity"
)

// SeatStateResponse is the full booking-screen state: the showtime under
// selection, its seat map, and the seats picked so far in click order.
type SeatStateResponse struct {
	Showtime ShowtimeResponse `json:"showtime"`
	Seats    []booking.Seat   `json:"seats"`
	Selected []booking.Seat   `json:"selected"`
}

type BookingResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	SeatLabels      []string  `json:"seat_labels"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	MovieTitle      string    `json:"movie_title"`
	PosterURL       string    `json:"poster_url,omitempty"`
	BackdropURL     string    `json:"backdrop_url,omitempty"`
	TheaterName     string    `json:"theater_name"`
	TheaterLocation string    `json:"theater_location"`
	ShowDay         string    `json:"show_day"`
	ShowDate        string    `json:"show_date"`
	ShowTime        string    `json:"show_time"`
	CreatedAt       time.Time `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		OrderID:         b.OrderID,
		SeatLabels:      b.SeatLabels,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		MovieTitle:      b.MovieTitle,
		PosterURL:       b.PosterURL,
		BackdropURL:     b.BackdropURL,
		TheaterName:     b.TheaterName,
		TheaterLocation: b.TheaterLocation,
		ShowDay:         b.ShowDay,
		ShowDate:        b.ShowDate,
		ShowTime:        b.ShowTime,
		CreatedAt:       b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
