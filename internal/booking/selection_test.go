package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seat(id string, available bool) Seat {
	return Seat{ID: id, Row: "C", Number: 1, Column: 1, Category: CategoryStandard, Available: available}
}

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	s := seat("st-C1", true)

	assert.True(t, sel.Toggle(s))
	assert.True(t, sel.Contains("st-C1"))
	assert.Equal(t, 1, sel.Len())

	// Second toggle removes it.
	assert.True(t, sel.Toggle(s))
	assert.False(t, sel.Contains("st-C1"))
	assert.Zero(t, sel.Len())
}

func TestSelectionToggleUnavailable(t *testing.T) {
	sel := NewSelection()

	assert.False(t, sel.Toggle(seat("st-C1", false)))
	assert.Zero(t, sel.Len())

	blocked := Seat{ID: "st-A1", Row: "A", Column: 1, Category: CategoryBlocked}
	assert.False(t, sel.Toggle(blocked))
	assert.Zero(t, sel.Len())
}

func TestSelectionToggleRemovesEvenWhenUnavailable(t *testing.T) {
	// A seat that became unavailable after being selected can still be
	// deselected.
	sel := NewSelection()
	s := seat("st-C1", true)
	sel.Toggle(s)

	s.Available = false
	assert.True(t, sel.Toggle(s))
	assert.Zero(t, sel.Len())
}

func TestSelectionClickOrder(t *testing.T) {
	sel := NewSelection()
	a := Seat{ID: "st-C1", Row: "C", Number: 1, Available: true}
	b := Seat{ID: "st-C2", Row: "C", Number: 2, Available: true}
	c := Seat{ID: "st-C3", Row: "C", Number: 3, Available: true}

	sel.Toggle(b)
	sel.Toggle(a)
	sel.Toggle(c)

	assert.Equal(t, []string{"C2", "C1", "C3"}, sel.Labels())

	// Removing and re-adding moves the seat to the end.
	sel.Toggle(b)
	sel.Toggle(b)
	assert.Equal(t, []string{"C1", "C3", "C2"}, sel.Labels())
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(seat("st-C1", true))
	sel.Clear()

	assert.Zero(t, sel.Len())
	assert.Empty(t, sel.Labels())
}
