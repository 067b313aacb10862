package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

var _ contract.Emitter = (*Dispatcher)(nil)

// Dispatcher fans an event out to a computed set of recipients.
//
// It provides best-effort, at-most-once delivery. Each recipient is an
// independent operation with its own timeout: a failing sink is logged and
// counted, the remaining recipients are still served.
//
// Recipients are resolved at dispatch time and served sequentially, so two
// events emitted one after the other reach every sink in emission order.
//
// Dispatcher is the only component touching both the registry and the agent bus.
// It is safe for concurrent use by multiple goroutines.
type Dispatcher struct {
	log         *slog.Logger
	registry    contract.IRegistry
	rooms       contract.IRooms
	bus         contract.IAgentBus
	metrics     *observability.Metrics
	sinkTimeout time.Duration
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, rooms contract.IRooms,
	bus contract.IAgentBus, metrics *observability.Metrics, sinkTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:         log,
		registry:    registry,
		rooms:       rooms,
		bus:         bus,
		metrics:     metrics,
		sinkTimeout: sinkTimeout,
	}
}

// BroadcastAll delivers to every currently registered session.
func (d *Dispatcher) BroadcastAll(ctx context.Context, e event.Outbound) {
	d.deliver(ctx, d.registry.AllSinks(), e)
}

// BroadcastRoom delivers only to the current members of the room.
// An unknown or empty room is a broadcast to the empty set.
func (d *Dispatcher) BroadcastRoom(ctx context.Context, room domain.RoomName, e event.Outbound) {
	members := d.rooms.MembersOf(room)
	if len(members) == 0 {
		d.log.Debug("Room broadcast without members", "room", room, "event", e.EventName())
		return
	}
	d.deliver(ctx, d.registry.Sinks(members), e)
}

// SendTo delivers to a single session, typically an error for the sender.
func (d *Dispatcher) SendTo(ctx context.Context, id domain.SessionID, e event.Outbound) {
	d.deliver(ctx, d.registry.Sinks([]domain.SessionID{id}), e)
}

// BroadcastToAgents hands the message to the agent bus, which routes it by kind.
// It returns the number of agent mailboxes that accepted it.
func (d *Dispatcher) BroadcastToAgents(ctx context.Context, msg event.BusMessage) int {
	return d.bus.Publish(ctx, msg)
}

func (d *Dispatcher) deliver(ctx context.Context, sinks map[domain.SessionID]contract.EventSink, e event.Outbound) {
	name := string(e.EventName())
	for id, s := range sinks {
		if err := d.consume(ctx, s, e); err != nil {
			d.metrics.Deliveries.WithLabelValues(name, observability.OutcomeFailed).Inc()
			d.log.Warn("Delivery failed", "session", id, "event", name, "error", err)
			continue
		}
		d.metrics.Deliveries.WithLabelValues(name, observability.OutcomeDelivered).Inc()
	}
}

func (d *Dispatcher) consume(ctx context.Context, s contract.EventSink, e event.Outbound) error {
	sinkCtx, cancel := context.WithTimeout(ctx, d.sinkTimeout)
	defer cancel()
	return s.Consume(sinkCtx, e)
}
