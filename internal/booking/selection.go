package booking

// Selection is the ordered set of seats the user has chosen but not yet
// committed. Order is insertion order (click order); removing and re-adding
// a seat moves it to the end.
type Selection struct {
	seats []Seat
}

func NewSelection() *Selection {
	return &Selection{}
}

// Toggle applies a symmetric difference: a selected seat is removed, an
// unselected available seat is appended. Toggling an unavailable or blocked
// seat is a deliberate no-op (stale click, not an error). Returns whether
// the selection changed.
func (sel *Selection) Toggle(seat Seat) bool {
	for i, s := range sel.seats {
		if s.ID == seat.ID {
			sel.seats = append(sel.seats[:i], sel.seats[i+1:]...)
			return true
		}
	}

	if !seat.Available || seat.Category == CategoryBlocked {
		return false
	}

	sel.seats = append(sel.seats, seat)
	return true
}

func (sel *Selection) Contains(seatID string) bool {
	for _, s := range sel.seats {
		if s.ID == seatID {
			return true
		}
	}
	return false
}

// Seats returns the selected seats in click order.
func (sel *Selection) Seats() []Seat {
	out := make([]Seat, len(sel.seats))
	copy(out, sel.seats)
	return out
}

// Labels flattens the selection to display labels in click order.
func (sel *Selection) Labels() []string {
	labels := make([]string, len(sel.seats))
	for i, s := range sel.seats {
		labels[i] = s.Label()
	}
	return labels
}

func (sel *Selection) Len() int {
	return len(sel.seats)
}

func (sel *Selection) Clear() {
	sel.seats = nil
}
