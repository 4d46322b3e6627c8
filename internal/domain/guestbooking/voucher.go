package guestbooking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// GenerateVoucher renders the booking voucher handed to the lead guest.
func GenerateVoucher(b *SightseeingBooking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Reference      : " + b.BookingReference,
		"Sightseeing    : " + b.SightseeingName,
		"Date of travel : " + b.DateOfTravel.Format("2006-01-02"),
		fmt.Sprintf("Guests         : %d", b.NumberOfPax),
		"Lead guest     : " + b.LeadGuest.Name,
		fmt.Sprintf("Total amount   : %.2f", b.TotalAmount),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if len(b.AdditionalGuests) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Additional guests:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		for _, g := range b.AdditionalGuests {
			pdf.Cell(0, 7, " - "+g.Name)
			pdf.Ln(7)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher together with a valid ID at the meeting point.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
