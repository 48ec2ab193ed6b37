// Package ticket renders a confirmed booking as a printable PDF e-ticket.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"movie-booking/internal/data/entity"

	"github.com/phpdave11/gofpdf"
)

// Build renders the e-ticket PDF for a booking. All fields come from the
// booking's denormalized snapshot, so the ticket survives later movie or
// showtime edits.
func Build(booking *entity.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MOVIE E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, booking.MovieTitle)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Order      : %s", booking.OrderID),
		fmt.Sprintf("Theater    : %s, %s", booking.TheaterName, booking.TheaterLocation),
		fmt.Sprintf("Date       : %s, %s", booking.ShowDay, booking.ShowDate),
		fmt.Sprintf("Time       : %s", booking.ShowTime),
		fmt.Sprintf("Seats      : %s", strings.Join(booking.SeatLabels, ", ")),
		fmt.Sprintf("Total Paid : %.2f", booking.TotalAmount),
		fmt.Sprintf("Status     : %s", booking.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this ticket at the theater entrance.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render e-ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}
