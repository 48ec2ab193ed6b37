package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	BaseSimple
	MovieID   uuid.UUID `db:"movie_id"`
	TheaterID uuid.UUID `db:"theater_id"`
	ShowDate  time.Time `db:"show_date"`
	ShowTime  string    `db:"show_time"` // e.g. "09:30 AM"
	Price     float64   `db:"price"`     // fallback per-seat price when the movie has none
}
