package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. It implements usecase.SessionMetrics.
type Metrics struct {
	EventsReceived    prometheus.Counter
	LinesDiscarded    prometheus.Counter
	PaymentsCommitted prometheus.Counter
	PaymentFailures   *prometheus.CounterVec
	AmountCollected   prometheus.Counter
	SessionDuration   prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EventsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpay_events_received_total",
			Help: "Total well-formed payment events received from the device",
		}),
		LinesDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpay_lines_discarded_total",
			Help: "Total malformed or unrelated device lines dropped",
		}),
		PaymentsCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpay_payments_committed_total",
			Help: "Total payments confirmed by the device and recorded",
		}),
		PaymentFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpay_payment_failures_total",
				Help: "Total payment sessions ended without a commit, by reason",
			},
			[]string{"reason"},
		),
		AmountCollected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpay_amount_collected_total",
			Help: "Total currency units collected across committed payments",
		}),
		SessionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "parkpay_session_duration_seconds",
			Help:    "Duration of committed payment sessions",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// EventReceived counts one well-formed inbound event.
func (m *Metrics) EventReceived() {
	m.EventsReceived.Inc()
}

// LineDiscarded counts one dropped line.
func (m *Metrics) LineDiscarded() {
	m.LinesDiscarded.Inc()
}

// PaymentCommitted counts one confirmed payment and its amount.
func (m *Metrics) PaymentCommitted(amount int64, elapsed time.Duration) {
	m.PaymentsCommitted.Inc()
	m.AmountCollected.Add(float64(amount))
	m.SessionDuration.Observe(elapsed.Seconds())
}

// PaymentFailed counts one failed session by reason.
func (m *Metrics) PaymentFailed(reason string) {
	m.PaymentFailures.WithLabelValues(reason).Inc()
}
