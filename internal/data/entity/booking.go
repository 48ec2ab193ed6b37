package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a denormalized snapshot taken at commit time. Display fields and
// the total amount are frozen here so later movie or showtime edits never
// change a historical booking.
type Booking struct {
	Base
	OrderID         string        `db:"order_id"`
	UserID          uuid.UUID     `db:"user_id"`
	SeatLabels      []string      `db:"seat_labels"` // row+number, e.g. A3
	TotalAmount     float64       `db:"total_amount"`
	Status          BookingStatus `db:"status"`
	MovieTitle      string        `db:"movie_title"`
	PosterURL       string        `db:"poster_url"`
	BackdropURL     string        `db:"backdrop_url"`
	TheaterName     string        `db:"theater_name"`
	TheaterLocation string        `db:"theater_location"`
	ShowDay         string        `db:"show_day"`  // "Monday"
	ShowDate        string        `db:"show_date"` // "02 January 2006"
	ShowTime        string        `db:"show_time"` // "09:30 AM"
}
