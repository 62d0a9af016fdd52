package services

import (
	"fmt"
	"time"

	"hotel-reservation/models"
)

// TaxPercent is the VAT applied to every stay subtotal.
const TaxPercent = 12

// Quote is the priced breakdown of a stay.
type Quote struct {
	Nights   int
	Subtotal models.Money
	Tax      models.Money
	Total    models.Money
}

// PriceStay prices a stay in room from checkIn to checkOut. Only the
// calendar dates matter; the time of day is ignored.
func PriceStay(room *models.Room, checkIn, checkOut time.Time) (Quote, error) {
	nights := DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, fmt.Errorf("%w: %d nights", ErrInvalidStayLength, nights)
	}

	subtotal := room.Rate().Times(nights)
	tax := subtotal.Percent(TaxPercent)
	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole calendar days from a to b. It works on Unix
// seconds since time.Duration saturates after about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((CalendarDate(b).Unix() - CalendarDate(a).Unix()) / secondsPerDay)
}

// CalendarDate strips the clock and zone from t, keeping its local
// year, month and day at UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
