package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_turns_total",
			Help: "Total number of chat turns processed, by classified intent",
		},
		[]string{"intent"},
	)

	AnalyticsEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_total",
			Help: "Total number of analytics events accepted by the sink",
		},
		[]string{"event_type"},
	)

	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact-form submissions, by engagement level",
		},
		[]string{"engagement_level"},
	)

	// Web-vitals samples reported by the site (lcp, fid, cls, load times).
	WebVitals = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_web_vitals",
			Help:    "Web-vitals metric samples reported by the analytics script",
			Buckets: prometheus.ExponentialBuckets(1, 2.5, 12),
		},
		[]string{"metric"},
	)
)

func RecordChatTurn(intent string) {
	ChatTurnsTotal.WithLabelValues(intent).Inc()
}

func RecordEvent(eventType string) {
	AnalyticsEventsTotal.WithLabelValues(eventType).Inc()
}

func RecordContact(level string) {
	ContactSubmissionsTotal.WithLabelValues(level).Inc()
}

func RecordWebVital(metric string, value float64) {
	WebVitals.WithLabelValues(metric).Observe(value)
}
