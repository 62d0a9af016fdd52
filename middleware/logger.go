package middleware

import (
	"log"
	"time"

	"hotel-reservation/models"
)

// Handler runs one reservation session.
type Handler func() (models.SessionResult, error)

// Logger logs the outcome and duration of every session.
func Logger(next Handler) Handler {
	return func() (models.SessionResult, error) {
		start := time.Now()
		result, err := next()
		latency := time.Since(start)
		if err != nil {
			log.Printf("⬅️ session ended: outcome=%s reservations=%d latency=%s err=%v",
				result.Outcome(), len(result.Reservations), latency, err)
			return result, err
		}
		log.Printf("⬅️ session ended: outcome=%s reservations=%d receipt=%d latency=%s",
			result.Outcome(), len(result.Reservations), result.ReceiptNumber, latency)
		return result, nil
	}
}
