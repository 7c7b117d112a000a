package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EventMetrics records dispatcher, notification, email and simulator
// activity.
type EventMetrics struct {
	dispatched    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	emails        *prometheus.CounterVec
	ticks         prometheus.Counter
	handlerTime   *prometheus.HistogramVec
}

// NewEventMetrics registers the event metrics on the provided registerer.
// A nil registerer yields a no-op collector, mirroring how optional
// metrics are handled elsewhere.
func NewEventMetrics(reg prometheus.Registerer) *EventMetrics {
	if reg == nil {
		return &EventMetrics{}
	}
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_dispatched_total",
		Help: "Domain events routed through the dispatcher.",
	}, []string{"event"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Notification records appended to the store.",
	}, []string{"type"})
	emails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Email gateway invocations by template and outcome.",
	}, []string{"template", "outcome"})
	ticks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_ticks_total",
		Help: "Synthetic interactions generated by the simulator.",
	})
	handlerTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "event_handler_duration_seconds",
		Help:    "Duration of dispatcher handlers in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"event"})
	reg.MustRegister(dispatched, notifications, emails, ticks, handlerTime)
	return &EventMetrics{
		dispatched:    dispatched,
		notifications: notifications,
		emails:        emails,
		ticks:         ticks,
		handlerTime:   handlerTime,
	}
}

// IncDispatched counts one routed event.
func (m *EventMetrics) IncDispatched(event string) {
	if m == nil || m.dispatched == nil {
		return
	}
	m.dispatched.WithLabelValues(normalizeLabel(event)).Inc()
}

// IncNotification counts one created notification by severity type.
func (m *EventMetrics) IncNotification(notificationType string) {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.WithLabelValues(normalizeLabel(notificationType)).Inc()
}

// IncEmail counts one gateway invocation with its outcome
// (sent, simulated or failed).
func (m *EventMetrics) IncEmail(template, outcome string) {
	if m == nil || m.emails == nil {
		return
	}
	m.emails.WithLabelValues(normalizeLabel(template), normalizeLabel(outcome)).Inc()
}

// IncTick counts one simulator interaction.
func (m *EventMetrics) IncTick() {
	if m == nil || m.ticks == nil {
		return
	}
	m.ticks.Inc()
}

// ObserveHandlerDuration records how long a handler ran.
func (m *EventMetrics) ObserveHandlerDuration(event string, duration time.Duration) {
	if m == nil || m.handlerTime == nil {
		return
	}
	m.handlerTime.WithLabelValues(normalizeLabel(event)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
