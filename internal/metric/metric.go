package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_events_created_total",
		Help: "Number of events created.",
	})

	SignupsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_signups_accepted_total",
		Help: "Number of attendee sign-ups persisted.",
	})

	SignupsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_signups_rejected_total",
		Help: "Number of attendee sign-ups rejected by validation.",
	})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rollcall_exports_total",
		Help: "Number of roster exports served, by format.",
	}, []string{"format"})

	Resets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_resets_total",
		Help: "Number of roster resets performed.",
	})
)
