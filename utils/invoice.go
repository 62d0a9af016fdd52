package utils

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"hotel-reservation/models"
)

const (
	ruleLine   = "---------------------------------------------------------"
	doubleLine = "========================================================="
	dashedLine = "- - - - - - - - - - - - - - - - - - - - - - - - - - - - -"
	fileRule   = "----------------------------------------"
)

//
// ===========================================================
//  MENUS
// ===========================================================
//

// FormatWelcome renders the banner and the room type / rate menu.
func FormatWelcome(hotelName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\t\t\t- Welcome to %s Reservation System -\n", hotelName)
	sb.WriteString("\nRoom Types and Rates:\n")
	for i, t := range models.RoomTypes {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%d] %s: PHP %s per night\n", i+1, strings.ToUpper(t.String()), t.Rate())
		for _, a := range t.Amenities() {
			fmt.Fprintf(&sb, " - %s\n", a)
		}
	}
	return sb.String()
}

// FormatRoomList renders the available-rooms listing.
func FormatRoomList(rooms iter.Seq[*models.Room]) string {
	var sb strings.Builder
	sb.WriteString(ruleLine + "\n\n\t\t   Available Rooms:\n" + ruleLine + "\n")
	for r := range rooms {
		sb.WriteString(r.Details())
		sb.WriteString("\n")
	}
	return sb.String()
}

//
// ===========================================================
//  INVOICE & RECEIPT
// ===========================================================
//

// FormatInvoice renders the summary printed right after a confirmation.
func FormatInvoice(res models.Reservation, guest models.Guest) string {
	var sb strings.Builder
	sb.WriteString("\n" + doubleLine + "\n")
	sb.WriteString("                         Invoice\n")
	sb.WriteString(doubleLine + "\n")
	fmt.Fprintf(&sb, "\nGuest: %s\n", guest.Name)
	fmt.Fprintf(&sb, "Reference: %s\n", res.ID)
	sb.WriteString("\nRoom Details\n")
	sb.WriteString(res.Room.Details())
	fmt.Fprintf(&sb, "Check-in Date: %s\n", res.CheckIn.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Check-out Date: %s\n", res.CheckOut.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Special Request: %s\n", guest.SpecialRequest)
	writeAmounts(&sb, res)
	return sb.String()
}

// FormatReceipt renders the consolidated official receipt of a session.
func FormatReceipt(r models.Receipt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n\n                ---- %s ----\n", r.HotelName)
	sb.WriteString(doubleLine + "\n")
	sb.WriteString("\n                    Official Receipt\n\n")
	sb.WriteString(doubleLine + "\n")
	fmt.Fprintf(&sb, "Receipt No.: %d\n", r.Number)
	fmt.Fprintf(&sb, "Reservation Date: %s\n", r.Date.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Guest Name: %s\n", r.Guest.Name)

	for i, res := range r.Reservations {
		fmt.Fprintf(&sb, "\nItem %d - Reference: %s\n", i+1, res.ID)
		sb.WriteString("Room Details:\n")
		sb.WriteString(dashedLine + "\n\n")
		sb.WriteString(res.Room.Details())
		fmt.Fprintf(&sb, "Check-in Date: %s\n", res.CheckIn.Format(models.DateLayout))
		fmt.Fprintf(&sb, "Check-out Date: %s\n", res.CheckOut.Format(models.DateLayout))
		fmt.Fprintf(&sb, "Special Request: %s\n", r.Guest.SpecialRequest)
		writeAmounts(&sb, res)
		sb.WriteString(dashedLine + "\n")
	}

	fmt.Fprintf(&sb, "\nAmount Paid: PHP %s\n", r.GrandTotal())
	return sb.String()
}

func writeAmounts(sb *strings.Builder, res models.Reservation) {
	fmt.Fprintf(sb, "Nights stayed: %d\n", res.Nights)
	fmt.Fprintf(sb, "Subtotal: PHP %s\n", res.Subtotal)
	fmt.Fprintf(sb, "VAT (12%%): PHP %s\n", res.Tax)
	fmt.Fprintf(sb, "Total Amount: PHP %s\n", res.Total)
}

// FormatReservationRecord renders the block appended to the reservations
// file for one confirmed reservation.
func FormatReservationRecord(res models.Reservation, guest models.Guest, receiptNumber int, today time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Receipt No.: %d\n", receiptNumber)
	fmt.Fprintf(&sb, "Reference: %s\n", res.ID)
	fmt.Fprintf(&sb, "Date: %s\n", today.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Guest: %s\n", guest.Name)
	fmt.Fprintf(&sb, "Contact: %s\n", guest.ContactNumber)
	fmt.Fprintf(&sb, "Email: %s\n", guest.Email)
	fmt.Fprintf(&sb, "Special Request: %s\n", guest.SpecialRequest)
	fmt.Fprintf(&sb, "Room:\n%s", res.Room.Details())
	fmt.Fprintf(&sb, "Check-in: %s\n", res.CheckIn.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Check-out: %s\n", res.CheckOut.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Nights stayed: %d\n", res.Nights)
	fmt.Fprintf(&sb, "Subtotal: PHP %s\n", res.Subtotal)
	fmt.Fprintf(&sb, "Tax (12%%): PHP %s\n", res.Tax)
	fmt.Fprintf(&sb, "Total Amount: PHP %s\n", res.Total)
	sb.WriteString(fileRule + "\n")
	return sb.String()
}
