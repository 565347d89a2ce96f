package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cart mutation ops.
const (
	OpCreate = "create"
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
	OpOrder  = "order"
	OpQuote  = "quote"
)

// Order submission outcomes.
const (
	OutcomeSubmitted = "submitted"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// CartMetrics records cart activity and order hand-off.
type CartMetrics struct {
	mutations   *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewCartMetrics registers the cart metrics on the provided registerer.
// A nil registerer yields a recorder that drops everything.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quantity_rejections_total",
		Help: "Quantity inputs rejected by bounds or parsing.",
	}, []string{"source"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions, by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_submission_duration_seconds",
		Help:    "Duration of order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(mutations, rejections, submissions, duration)
	return &CartMetrics{
		mutations:   mutations,
		rejections:  rejections,
		submissions: submissions,
		duration:    duration,
	}
}

func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncQuantityRejected counts a quantity input that left the value unchanged.
func (c *CartMetrics) IncQuantityRejected(source string) {
	if c == nil || c.rejections == nil {
		return
	}
	c.rejections.WithLabelValues(normalizeLabel(source)).Inc()
}

// ObserveSubmission records one order hand-off attempt.
func (c *CartMetrics) ObserveSubmission(outcome string, duration time.Duration) {
	if c == nil || c.submissions == nil {
		return
	}
	label := normalizeLabel(outcome)
	c.submissions.WithLabelValues(label).Inc()
	c.duration.WithLabelValues(label).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
