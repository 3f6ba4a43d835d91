// Package metrics exposes registration counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/nfrund/signup/internal/registration"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeSkipped  = "skipped"
)

// Metrics holds the registration collectors.
type Metrics struct {
	submissions        *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	gatherer           prometheus.Gatherer
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "registration_submissions_total",
			Help:      "Registration form submissions by API outcome.",
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "registration_validation_failures_total",
			Help:      "Submissions whose first failing field was the labelled one.",
		}, []string{"field"}),
		gatherer: g,
	}
	reg.MustRegister(m.submissions, m.validationFailures)
	return m
}

// Observe records one submit result.
func (m *Metrics) Observe(res registration.Result) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(Outcome(res)).Inc()
	if res.Invalid != nil {
		m.validationFailures.WithLabelValues(res.Invalid.Field).Inc()
	}
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Outcome classifies a submit result.
func Outcome(res registration.Result) string {
	switch {
	case !res.Submitted:
		return OutcomeSkipped
	case res.SubmitErr != nil:
		return OutcomeFailed
	case res.Accepted:
		return OutcomeAccepted
	default:
		return OutcomeRejected
	}
}
