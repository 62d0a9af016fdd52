package models

// SessionResult is what one pass through the reservation desk produced.
type SessionResult struct {
	// Declined is set when the guest answered no at the first question.
	Declined     bool
	Guest        *Guest
	Reservations []Reservation
	// ReceiptNumber is zero when no receipt was issued.
	ReceiptNumber int
	Receipt       string
}

// Outcome labels the session for logs and metrics.
func (r SessionResult) Outcome() string {
	switch {
	case r.Declined:
		return "declined"
	case len(r.Reservations) > 0:
		return "booked"
	default:
		return "abandoned"
	}
}
