package middleware

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hotel-reservation/models"
)

// Metrics counts sessions, reservations and revenue on a private registry.
// With a textfile path set, the registry is written out after each session
// for a node_exporter textfile collector.
type Metrics struct {
	Registry *prometheus.Registry
	path     string

	SessionsTotal     *prometheus.CounterVec
	ReservationsTotal *prometheus.CounterVec
	RevenueTotal      prometheus.Counter
	SessionDuration   prometheus.Histogram
}

func NewMetrics(textfilePath string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		path:     textfilePath,
		SessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotel_sessions_total",
				Help: "Total number of reservation sessions by outcome",
			},
			[]string{"outcome"},
		),
		ReservationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotel_reservations_total",
				Help: "Total number of confirmed reservations by room type",
			},
			[]string{"room_type"},
		),
		RevenueTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hotel_revenue_centavos_total",
				Help: "Total billed amount including tax, in centavos",
			},
		),
		SessionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hotel_session_duration_seconds",
				Help:    "Reservation session duration in seconds",
				Buckets: prometheus.ExponentialBuckets(5, 2, 8),
			},
		),
	}
}

// Middleware records the session and flushes the textfile.
func (m *Metrics) Middleware(next Handler) Handler {
	return func() (models.SessionResult, error) {
		start := time.Now()
		result, err := next()
		m.SessionDuration.Observe(time.Since(start).Seconds())
		m.Observe(result)
		if ferr := m.Flush(); ferr != nil {
			log.Printf("⚠️ metrics textfile not written: %v", ferr)
		}
		return result, err
	}
}

// Observe adds one session's result to the counters.
func (m *Metrics) Observe(result models.SessionResult) {
	m.SessionsTotal.WithLabelValues(result.Outcome()).Inc()
	for _, res := range result.Reservations {
		m.ReservationsTotal.WithLabelValues(res.Room.Type.String()).Inc()
		m.RevenueTotal.Add(float64(res.Total))
	}
}

// Flush writes the registry to the textfile. It is a no-op without a path.
func (m *Metrics) Flush() error {
	if m.path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.path, m.Registry)
}
