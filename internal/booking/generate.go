package booking

import (
	"fmt"
	"math/rand"
)

// Hall layout. Rows lexically after premiumThreshold are premium. The first
// two rows lose a few leading/trailing positions to the aisle; those are
// blocked and the remaining seats renumber contiguously from 1.
const (
	seatsPerRow      = 10
	premiumThreshold = "F"
)

var seatRows = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

var blockedColumns = map[string][]int{
	"A": {1, 2, 9, 10},
	"B": {1, 10},
}

// Availability probability stands in for a live reservation ledger: there is
// no seat inventory backend, so each generated map is a fresh random
// snapshot. Layout (IDs, rows, categories) stays deterministic.
const (
	frontRowAvailability = 0.9
	defaultAvailability  = 0.7
)

// GenerateSeats builds the full seat map for a showtime, ordered by row then
// column. The showtime ID is only a namespace prefix for seat IDs; it is not
// used to look anything up. Pure apart from the random availability flags,
// so it is safe to call repeatedly.
func GenerateSeats(showtimeID string) []Seat {
	seats := make([]Seat, 0, len(seatRows)*seatsPerRow)

	for _, row := range seatRows {
		category := CategoryStandard
		if row > premiumThreshold {
			category = CategoryPremium
		}

		availability := defaultAvailability
		if _, ok := blockedColumns[row]; ok {
			availability = frontRowAvailability
		}

		number := 0
		for col := 1; col <= seatsPerRow; col++ {
			seat := Seat{
				ID:     fmt.Sprintf("%s-%s%d", showtimeID, row, col),
				Row:    row,
				Column: col,
			}

			if isBlocked(row, col) {
				seat.Category = CategoryBlocked
				seat.Available = false
			} else {
				number++
				seat.Number = number
				seat.Category = category
				seat.Available = rand.Float64() < availability
			}

			seats = append(seats, seat)
		}
	}

	return seats
}

func isBlocked(row string, col int) bool {
	for _, blocked := range blockedColumns[row] {
		if col == blocked {
			return true
		}
	}
	return false
}
