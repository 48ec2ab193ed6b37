package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeatsLayout(t *testing.T) {
	seats := GenerateSeats("st-1")

	require.Len(t, seats, len(seatRows)*seatsPerRow)

	byID := make(map[string]Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	// IDs are namespaced by showtime and grid column.
	assert.Contains(t, byID, "st-1-A1")
	assert.Contains(t, byID, "st-1-H10")

	// Blocked positions: aisle cuts into the first two rows only.
	for _, id := range []string{"st-1-A1", "st-1-A2", "st-1-A9", "st-1-A10", "st-1-B1", "st-1-B10"} {
		seat := byID[id]
		assert.Equal(t, CategoryBlocked, seat.Category, id)
		assert.False(t, seat.Available, id)
		assert.Zero(t, seat.Number, id)
	}

	// Rows after F are premium, the rest standard.
	assert.Equal(t, CategoryPremium, byID["st-1-G5"].Category)
	assert.Equal(t, CategoryPremium, byID["st-1-H1"].Category)
	assert.Equal(t, CategoryStandard, byID["st-1-F5"].Category)
	assert.Equal(t, CategoryStandard, byID["st-1-C3"].Category)
}

func TestGenerateSeatsRenumbering(t *testing.T) {
	seats := GenerateSeats("st-2")

	byID := make(map[string]Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	// Row A: columns 1,2,9,10 blocked, so column 3 is seat A1 and column 8
	// is seat A6.
	assert.Equal(t, 1, byID["st-2-A3"].Number)
	assert.Equal(t, 6, byID["st-2-A8"].Number)
	assert.Equal(t, "A1", byID["st-2-A3"].Label())

	// Row B: columns 1 and 10 blocked, column 2 renumbers to 1.
	assert.Equal(t, 1, byID["st-2-B2"].Number)
	assert.Equal(t, 8, byID["st-2-B9"].Number)

	// Unblocked rows keep column numbering.
	assert.Equal(t, 4, byID["st-2-C4"].Number)
	assert.Equal(t, 10, byID["st-2-C10"].Number)
}

func TestGenerateSeatsDeterministicLayout(t *testing.T) {
	first := GenerateSeats("st-3")
	second := GenerateSeats("st-3")

	require.Len(t, second, len(first))

	// Availability is a random snapshot, but everything else must match
	// between generations.
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Row, second[i].Row)
		assert.Equal(t, first[i].Column, second[i].Column)
		assert.Equal(t, first[i].Number, second[i].Number)
		assert.Equal(t, first[i].Category, second[i].Category)
	}
}
