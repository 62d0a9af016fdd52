package models

import "time"

// DateLayout is the calendar date format used for input, files and receipts.
const DateLayout = "2006-01-02"

// Reservation is a confirmed booking of one room. Amounts are fixed at
// confirmation time.
type Reservation struct {
	ID       string
	Room     *Room
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Subtotal Money
	Tax      Money
	Total    Money
}

// Receipt is the consolidated end-of-session bill. It is never persisted.
type Receipt struct {
	Number       int
	Date         time.Time
	HotelName    string
	Guest        Guest
	Reservations []Reservation
}

// GrandTotal sums the totals of all reservations on the receipt.
func (r Receipt) GrandTotal() Money {
	var sum Money
	for _, res := range r.Reservations {
		sum += res.Total
	}
	return sum
}
