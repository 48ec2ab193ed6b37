package booking

import "fmt"

type SeatCategory string

const (
	CategoryStandard SeatCategory = "standard"
	CategoryPremium  SeatCategory = "premium"
	// CategoryBlocked marks a grid position with no purchasable seat
	// (aisle/structural gap). Blocked seats are never selectable and never
	// counted as available.
	CategoryBlocked SeatCategory = "blocked"
)

// Seat is one position in a showtime's seat map. ID is unique within the map
// and derives from the showtime plus the grid column, so regenerating a map
// for the same showtime yields the same IDs. Number is the display position
// within the row, renumbered after blocked positions are excluded.
type Seat struct {
	ID        string       `json:"id"`
	Row       string       `json:"row"`
	Number    int          `json:"number"`
	Column    int          `json:"column"`
	Category  SeatCategory `json:"category"`
	Available bool         `json:"available"`
}

// Label is the display form persisted on bookings, e.g. "A3".
func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}
