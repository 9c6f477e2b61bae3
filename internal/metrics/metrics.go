package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteCallDuration times every call to the portal backend by operation and outcome.
	RemoteCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alumni_connect",
		Name:      "remote_call_duration_seconds",
		Help:      "Latency of portal backend calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	// MentorshipSends counts send attempts by outcome (sent, invalid, failed).
	MentorshipSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alumni_connect",
		Name:      "mentorship_sends_total",
		Help:      "Mentorship request send attempts.",
	}, []string{"outcome"})

	// MentorshipResponses counts respond attempts by outcome (confirmed, reconciled, noop, invalid).
	MentorshipResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alumni_connect",
		Name:      "mentorship_responses_total",
		Help:      "Accept/reject attempts and how they settled.",
	}, []string{"outcome"})

	// NotificationFailures counts swallowed best-effort notification errors.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alumni_connect",
		Name:      "notification_failures_total",
		Help:      "Best-effort notification calls that failed.",
	}, []string{"operation"})

	// ActiveSessions tracks open session workspaces.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "alumni_connect",
		Name:      "active_sessions",
		Help:      "Session workspaces currently held in memory.",
	})
)
