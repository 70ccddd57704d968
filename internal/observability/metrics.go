// Package observability holds Prometheus collectors for the activity directory.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Signup outcomes recorded by RecordSignup.
const (
	SignupOutcomeSuccess   = "success"
	SignupOutcomeNotFound  = "not_found"
	SignupOutcomeDuplicate = "duplicate"
	SignupOutcomeInvalid   = "invalid"
	SignupOutcomeError     = "error"
)

var signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "activity_signup",
	Subsystem: "directory",
	Name:      "signups_total",
	Help:      "Signup attempts partitioned by activity and outcome.",
}, []string{"activity", "outcome"})

func init() {
	prometheus.MustRegister(signupsTotal)
}

// RecordSignup counts one signup attempt.
// Only successful and duplicate signups name an activity known to exist; every other
// outcome is folded into a single label value to keep cardinality bounded.
func RecordSignup(activity, outcome string) {
	if outcome != SignupOutcomeSuccess && outcome != SignupOutcomeDuplicate {
		activity = "unknown"
	}
	signupsTotal.WithLabelValues(activity, outcome).Inc()
}

// SignupsTotal exposes the counter for tests and admin tooling.
func SignupsTotal() *prometheus.CounterVec {
	return signupsTotal
}
