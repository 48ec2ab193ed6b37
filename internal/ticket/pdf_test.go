package ticket

import (
	"testing"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	booking := &entity.Booking{
		Base:            entity.Base{ID: uuid.New()},
		OrderID:         "BOOK-20260302-093000-0001",
		UserID:          uuid.New(),
		SeatLabels:      []string{"C4", "C5"},
		TotalAmount:     420,
		Status:          entity.BookingStatusConfirmed,
		MovieTitle:      "Interstellar",
		TheaterName:     "Galaxy Cinema",
		TheaterLocation: "Mumbai",
		ShowDay:         "Monday",
		ShowDate:        "02 March 2026",
		ShowTime:        "09:30 AM",
	}

	data, err := Build(booking)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
