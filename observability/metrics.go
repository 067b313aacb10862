package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "relay"

// Delivery outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

// Metrics groups every collector of the relay.
// Collectors are registered on the given registerer so tests can use a private registry.
type Metrics struct {
	Deliveries    *prometheus.CounterVec
	BusMessages   *prometheus.CounterVec
	Commands      *prometheus.CounterVec
	Sessions      prometheus.Gauge
	Agents        prometheus.Gauge
	QueueLength   *prometheus.GaugeVec
	QueueCapacity *prometheus.GaugeVec
	Restarts      *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Events pushed to session sinks, by event name and outcome.",
		}, []string{"event", "outcome"}),
		BusMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "messages_total",
			Help:      "Bus messages routed to agent mailboxes, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Inbound commands handled by the orchestrator.",
		}, []string{"command"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Currently registered sessions.",
		}),
		Agents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "agents",
			Help:      "Currently connected agents.",
		}),
		QueueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Sampled length of internal channels.",
		}, []string{"channel"}),
		QueueCapacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_capacity",
			Help:      "Capacity of internal channels.",
		}, []string{"channel"}),
		Restarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_restarts_total",
			Help:      "Workers restarted by the supervisor after a crash.",
		}, []string{"worker"}),
	}
	reg.MustRegister(
		m.Deliveries, m.BusMessages, m.Commands,
		m.Sessions, m.Agents,
		m.QueueLength, m.QueueCapacity, m.Restarts,
	)
	return m
}
