package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by activity and outcome.",
	}, []string{"activity", "outcome"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts partitioned by activity and outcome.",
	}, []string{"activity", "outcome"})
	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterGauge)
}

// RecordSignup counts a signup attempt.
func RecordSignup(activity string, ok bool) {
	signupCounter.WithLabelValues(activity, outcome(ok)).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(activity string, ok bool) {
	unregisterCounter.WithLabelValues(activity, outcome(ok)).Inc()
}

// SetRosterSize updates the roster size gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterGauge.WithLabelValues(activity).Set(float64(size))
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "rejected"
}
