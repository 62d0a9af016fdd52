// services/booking_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"hotel-reservation/models"
	"hotel-reservation/utils"
)

// BookingService is the reservation ledger of a single session. It keeps
// the confirmed reservations in order and appends each one to the
// reservations file.
type BookingService struct {
	path         string
	guest        *models.Guest
	reservations []models.Reservation
}

func NewBookingService(reservationsPath string) *BookingService {
	return &BookingService{path: reservationsPath}
}

// Record prices the stay and appends the reservation to the ledger. The
// room is expected to be already marked unavailable by the caller.
func (s *BookingService) Record(room *models.Room, checkIn, checkOut time.Time, guest *models.Guest) (models.Reservation, error) {
	quote, err := PriceStay(room, checkIn, checkOut)
	if err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{
		ID:       uuid.NewString(),
		Room:     room,
		CheckIn:  CalendarDate(checkIn),
		CheckOut: CalendarDate(checkOut),
		Nights:   quote.Nights,
		Subtotal: quote.Subtotal,
		Tax:      quote.Tax,
		Total:    quote.Total,
	}
	if s.guest == nil {
		s.guest = guest
	}
	s.reservations = append(s.reservations, res)

	log.Printf("✅ reservation %s recorded: room=%s nights=%d total=%s", res.ID, room.RoomNumber, res.Nights, res.Total)
	return res, nil
}

// Reservations returns the session's reservations in confirmation order.
func (s *BookingService) Reservations() []models.Reservation {
	return append([]models.Reservation(nil), s.reservations...)
}

// Len reports how many reservations the session has confirmed.
func (s *BookingService) Len() int {
	return len(s.reservations)
}

// AppendToFile writes the reservation block to the end of the
// reservations file, creating it when missing.
func (s *BookingService) AppendToFile(res models.Reservation, guest models.Guest, receiptNumber int, today time.Time) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open reservations file: %w: %w", ErrFileIO, err)
	}

	_, werr := f.WriteString(utils.FormatReservationRecord(res, guest, receiptNumber, today))
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write reservation: %w: %w", ErrFileIO, werr)
	}
	if cerr != nil {
		return fmt.Errorf("close reservations file: %w: %w", ErrFileIO, cerr)
	}
	return nil
}

// Receipt builds the consolidated receipt for the session and consumes one
// receipt number. An empty ledger yields no receipt and leaves the counter
// alone.
func (s *BookingService) Receipt(counter *ReceiptCounter, hotelName string, today time.Time) (models.Receipt, bool) {
	if len(s.reservations) == 0 {
		return models.Receipt{}, false
	}

	var guest models.Guest
	if s.guest != nil {
		guest = *s.guest
	}
	return models.Receipt{
		Number:       counter.Issue(),
		Date:         CalendarDate(today),
		HotelName:    hotelName,
		Guest:        guest,
		Reservations: s.Reservations(),
	}, true
}
