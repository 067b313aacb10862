package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IAgentBus = (*AgentBus)(nil)

type agentConn struct {
	info    domain.AgentInfo
	agent   contract.Agent
	kinds   map[event.Kind]struct{}
	state   domain.AgentState
	mailbox chan event.BusMessage
	done    chan struct{}
}

func (c *agentConn) accepts(kind event.Kind) bool {
	_, ok := c.kinds[kind]
	return ok
}

// AgentBus is a typed publish/subscribe channel between the relay and its worker agents.
//
// Every connected agent owns a bounded mailbox drained by its own goroutine,
// so Handle is never called concurrently for one agent. Publishing never blocks:
// a full mailbox drops the message for that agent only.
// Publishing happens under the read lock and disconnecting under the write lock,
// hence a disconnected agent never receives a message published after its removal.
type AgentBus struct {
	mu          sync.RWMutex
	log         *slog.Logger
	metrics     *observability.Metrics
	listener    contract.AgentListener
	mailboxSize int
	closed      bool
	agents      map[domain.AgentID]*agentConn
	wg          sync.WaitGroup
}

func NewAgentBus(log *slog.Logger, metrics *observability.Metrics,
	listener contract.AgentListener, mailboxSize int) *AgentBus {
	return &AgentBus{
		log:         log,
		metrics:     metrics,
		listener:    listener,
		mailboxSize: mailboxSize,
		agents:      make(map[domain.AgentID]*agentConn),
	}
}

// Connect registers the agent under a fresh id and starts its mailbox loop.
// The listener is notified once the agent reached Connected.
// The loop stops when the agent is disconnected. A done ctx disconnects the agent.
func (b *AgentBus) Connect(ctx context.Context, agent contract.Agent, out contract.Emitter) (domain.AgentInfo, error) {
	conn := &agentConn{
		info: domain.AgentInfo{
			ID:   domain.AgentID(uuid.NewString()),
			Name: agent.Name(),
			Role: agent.Role(),
		},
		agent:   agent,
		kinds:   lo.SliceToMap(agent.Kinds(), func(k event.Kind) (event.Kind, struct{}) { return k, struct{}{} }),
		state:   domain.AgentConnecting,
		mailbox: make(chan event.BusMessage, b.mailboxSize),
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return domain.AgentInfo{}, errors.ErrBusClosed
	}
	b.agents[conn.info.ID] = conn
	b.wg.Add(1)
	b.mu.Unlock()

	go b.run(ctx, conn, out)

	b.mu.Lock()
	if _, ok := b.agents[conn.info.ID]; !ok {
		// Closed or cancelled while connecting.
		b.mu.Unlock()
		if err := ctx.Err(); err != nil {
			return domain.AgentInfo{}, err
		}
		return domain.AgentInfo{}, errors.ErrBusClosed
	}
	conn.state = domain.AgentConnected
	conn.info.ConnectedAt = time.Now().UTC()
	info := conn.info
	count := len(b.agents)
	b.mu.Unlock()

	b.metrics.Agents.Set(float64(count))
	b.log.Info("Agent connected", "agent", info.Name, "id", info.ID, "role", info.Role)
	if b.listener != nil {
		b.listener.OnAgentConnected(info)
	}
	return info, nil
}

// Disconnect is terminal for the agent id. Messages still in its mailbox are dropped.
func (b *AgentBus) Disconnect(id domain.AgentID) error {
	b.mu.Lock()
	conn, ok := b.agents[id]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", errors.ErrUnknownAgent, id)
	}
	delete(b.agents, id)
	announced := conn.state == domain.AgentConnected
	conn.state = domain.AgentDisconnected
	close(conn.done)
	count := len(b.agents)
	b.mu.Unlock()

	b.metrics.Agents.Set(float64(count))
	b.log.Info("Agent disconnected", "agent", conn.info.Name, "id", id)
	// An agent removed while connecting was never announced.
	if b.listener != nil && announced {
		b.listener.OnAgentDisconnected(conn.info)
	}
	return nil
}

// Publish routes the message to every connected agent accepting its kind,
// except the publisher itself. When msg.To is set only that agent is eligible.
// It returns the number of mailboxes that accepted the message.
func (b *AgentBus) Publish(_ context.Context, msg event.BusMessage) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, conn := range b.agents {
		if conn.state != domain.AgentConnected || !conn.accepts(msg.Kind) {
			continue
		}
		if id == msg.From || (msg.To != "" && id != msg.To) {
			continue
		}
		select {
		case conn.mailbox <- msg:
			delivered++
			b.metrics.BusMessages.WithLabelValues(string(msg.Kind), observability.OutcomeDelivered).Inc()
		default:
			b.metrics.BusMessages.WithLabelValues(string(msg.Kind), observability.OutcomeDropped).Inc()
			b.log.Warn("Agent mailbox full, message dropped", "agent", conn.info.Name, "kind", msg.Kind)
		}
	}
	return delivered
}

func (b *AgentBus) State(id domain.AgentID) domain.AgentState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	conn, ok := b.agents[id]
	if !ok {
		return domain.AgentDisconnected
	}
	return conn.state
}

// Agents returns the connected agents sorted by name.
func (b *AgentBus) Agents() []domain.AgentInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()

	res := make([]domain.AgentInfo, 0, len(b.agents))
	for _, conn := range b.agents {
		if conn.state == domain.AgentConnected {
			res = append(res, conn.info)
		}
	}
	slices.SortFunc(res, func(a, b domain.AgentInfo) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}

// Close disconnects every agent and waits for their loops to end.
// Further connections are refused.
func (b *AgentBus) Close() {
	b.mu.Lock()
	b.closed = true
	ids := lo.Keys(b.agents)
	b.mu.Unlock()

	for _, id := range ids {
		_ = b.Disconnect(id)
	}
	b.wg.Wait()
}

func (b *AgentBus) run(ctx context.Context, conn *agentConn, out contract.Emitter) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			// Already gone when Disconnect or Close won the race.
			if err := b.Disconnect(conn.info.ID); err == nil {
				b.log.Debug("Agent context done", "agent", conn.info.Name, "error", ctx.Err())
			}
			return
		case <-conn.done:
			return
		case msg := <-conn.mailbox:
			// Disconnect may have happened while the message was waiting.
			select {
			case <-conn.done:
				return
			default:
			}
			b.handle(ctx, conn, msg, out)
		}
	}
}

// handle isolates one agent failure: a panic or an error only loses the current message.
func (b *AgentBus) handle(ctx context.Context, conn *agentConn, msg event.BusMessage, out contract.Emitter) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Agent panicked while handling a message",
				"agent", conn.info.Name, "kind", msg.Kind, "error", errors.ErrWorkerPanic, "panic", r)
		}
	}()
	if err := conn.agent.Handle(ctx, conn.info.ID, msg, out); err != nil {
		b.log.Warn("Agent failed to handle message", "agent", conn.info.Name, "kind", msg.Kind, "error", err)
	}
}
