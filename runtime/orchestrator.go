// Package runtime handles session state, fan-out and the agent bus.
// It orchestrates the system without containing transport concerns.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const commandsChannel = "commands"

// Settings tunes the orchestrator. Zero values are not valid, see internal.Config defaults.
type Settings struct {
	BufferSize       int
	MailboxSize      int
	SinkTimeout      time.Duration
	MetricInterval   time.Duration
	MaxContentLength int
	ForwardToAgents  bool
	CommandPrefix    string
}

// Orchestrator is the single consumer of inbound commands.
// Commands of one connection are queued in the order they were read,
// so they are handled in that order. Handling a command never blocks on a recipient.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	rooms      contract.IRooms
	bus        *AgentBus
	dispatcher *Dispatcher
	metrics    *observability.Metrics
	validate   *validator.Validate
	settings   Settings
	commands   chan chat.Command
	roster     []contract.Agent
	stopped    chan struct{}
	stopOnce   sync.Once
	ready      chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, rooms contract.IRooms,
	metrics *observability.Metrics, settings Settings) *Orchestrator {
	o := &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		rooms:      rooms,
		metrics:    metrics,
		validate:   validator.New(),
		settings:   settings,
		commands:   make(chan chat.Command, settings.BufferSize),
		stopped:    make(chan struct{}),
		ready:      make(chan struct{}),
	}
	o.bus = NewAgentBus(log, metrics, o, settings.MailboxSize)
	o.dispatcher = NewDispatcher(log, registry, rooms, o.bus, metrics, settings.SinkTimeout)
	return o
}

// Enroll adds agents to the roster connected by Start.
func (o *Orchestrator) Enroll(agents ...contract.Agent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.roster = append(o.roster, agents...)
}

func (o *Orchestrator) Dispatcher() *Dispatcher { return o.dispatcher }

func (o *Orchestrator) Bus() *AgentBus { return o.bus }

// Ready is closed once every enrolled agent is connected.
func (o *Orchestrator) Ready() <-chan struct{} { return o.ready }

// Submit queues a command, waiting for room in the queue.
func (o *Orchestrator) Submit(ctx context.Context, cmd chat.Command) error {
	select {
	case <-o.stopped:
		return errors.ErrBusClosed
	default:
	}
	select {
	case o.commands <- cmd:
		return nil
	case <-o.stopped:
		return errors.ErrBusClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start registers the command loop and the queue sampler to the supervisor,
// connects the agent roster and blocks until the supervisor returns.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	roster := slices.Clone(o.roster)
	o.supervisor.Add(
		&commandLoop{o: o},
		workers.NewChannelCapacityWorker(o.log, o.metrics, []workers.NamedChannel{
			{Name: commandsChannel, Channel: o.commands},
		}, o.settings.MetricInterval),
	)
	o.mu.Unlock()

	go o.connectRoster(ctx, roster)

	o.log.Info("Starting orchestrator and all supervised workers", "agents", len(roster))
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) connectRoster(ctx context.Context, roster []contract.Agent) {
	defer close(o.ready)
	for _, agent := range roster {
		if _, err := o.bus.Connect(ctx, agent, o.dispatcher); err != nil {
			o.log.Error("Agent failed to connect", "agent", agent.Name(), "error", err)
		}
	}
}

// Stop cancels the supervised workers and disconnects every agent.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.stopOnce.Do(func() { close(o.stopped) })
	o.supervisor.Stop()
	o.bus.Close()
}

// OnAgentConnected turns the bus notification into a command,
// so name registration and announcement are ordered with the other commands.
func (o *Orchestrator) OnAgentConnected(info domain.AgentInfo) {
	o.enqueue(chat.AgentConnected{Agent: info})
}

func (o *Orchestrator) OnAgentDisconnected(info domain.AgentInfo) {
	o.enqueue(chat.AgentDisconnected{Agent: info})
}

func (o *Orchestrator) enqueue(cmd chat.Command) {
	select {
	case o.commands <- cmd:
	case <-o.stopped:
	}
}

// Roster builds a snapshot of sessions, agents and rooms.
func (o *Orchestrator) Roster() domain.Roster {
	sessions := o.registry.Sessions()
	slices.SortFunc(sessions, func(a, b domain.Session) int { return strings.Compare(string(a.ID), string(b.ID)) })
	return domain.Roster{
		Sessions: lo.Map(sessions, func(s domain.Session, _ int) domain.RosterSession {
			return domain.RosterSession{ID: s.ID, Name: s.DisplayName(), Rooms: o.rooms.RoomsOf(s.ID)}
		}),
		Agents: lo.Map(o.bus.Agents(), func(a domain.AgentInfo, _ int) domain.RosterAgent {
			return domain.RosterAgent{ID: a.ID, Name: a.Name, Role: a.Role}
		}),
		Rooms: lo.Map(o.rooms.Rooms(), func(r domain.RoomName, _ int) domain.RosterRoom {
			return domain.RosterRoom{Name: r, Members: len(o.rooms.MembersOf(r))}
		}),
	}
}

// Counts returns the number of sessions, agents and rooms.
func (o *Orchestrator) Counts() (sessions, agents, rooms int) {
	return len(o.registry.Sessions()), len(o.bus.Agents()), len(o.rooms.Rooms())
}

// handle is the exhaustive switch over inbound commands.
func (o *Orchestrator) handle(ctx context.Context, cmd chat.Command) {
	o.metrics.Commands.WithLabelValues(commandName(cmd)).Inc()
	switch c := cmd.(type) {
	case chat.Connect:
		o.connect(c)
	case chat.Disconnect:
		o.disconnect(ctx, c)
	case chat.SetUsername:
		o.setUsername(ctx, c)
	case chat.PostMessage:
		o.postMessage(ctx, c)
	case chat.JoinRoom:
		o.joinRoom(ctx, c)
	case chat.LeaveRoom:
		o.leaveRoom(ctx, c)
	case chat.RoomMessage:
		o.roomMessage(ctx, c)
	case chat.AgentConnected:
		o.registry.RegisterAgent(c.Agent.ID, c.Agent.Name)
		o.dispatcher.BroadcastAll(ctx, event.UserJoined{Username: c.Agent.Name})
	case chat.AgentDisconnected:
		o.registry.UnregisterAgent(c.Agent.ID)
		o.dispatcher.BroadcastAll(ctx, event.UserLeft{Username: c.Agent.Name})
	default:
		o.log.Error(errors.ErrUnknownEvent.Error(), "command", commandName(cmd))
	}
}

func (o *Orchestrator) connect(c chat.Connect) {
	if err := o.registry.Register(c.Session, c.Sink); err != nil {
		return
	}
	o.metrics.Sessions.Inc()
	o.log.Debug("Client connected", "session", c.Session)
}

func (o *Orchestrator) disconnect(ctx context.Context, c chat.Disconnect) {
	session, ok := o.registry.Lookup(c.Session)
	if !ok {
		return
	}
	o.registry.Unregister(c.Session)
	o.metrics.Sessions.Dec()
	o.log.Debug("Client disconnected", "session", c.Session, "username", session.DisplayName())
	if session.Named() {
		o.dispatcher.BroadcastAll(ctx, event.UserLeft{Username: session.Name})
	}
}

func (o *Orchestrator) setUsername(ctx context.Context, c chat.SetUsername) {
	c.Name = strings.TrimSpace(c.Name)
	if !o.valid(ctx, c.Session, c) {
		return
	}
	if _, ok := o.registry.Lookup(c.Session); !ok {
		return
	}
	o.registry.SetName(c.Session, c.Name)
	o.dispatcher.BroadcastAll(ctx, event.UserJoined{Username: c.Name})
	o.log.Info(fmt.Sprintf("%s joined the chat", c.Name))
}

func (o *Orchestrator) postMessage(ctx context.Context, c chat.PostMessage) {
	session, ok := o.registry.Lookup(c.Session)
	if !ok || !o.valid(ctx, c.Session, c) || !o.validContent(ctx, c.Session, c.Text) {
		return
	}
	msg := domain.NewMessage(session, c.Text, nil)
	o.log.Debug("Message", "username", msg.Sender, "content", msg.Content)
	o.dispatcher.BroadcastAll(ctx, event.FromMessage(msg))
	o.forward(ctx, msg)
}

func (o *Orchestrator) joinRoom(ctx context.Context, c chat.JoinRoom) {
	session, ok := o.registry.Lookup(c.Session)
	if !ok || !o.valid(ctx, c.Session, c) {
		return
	}
	o.rooms.Join(c.Room, c.Session)
	o.dispatcher.BroadcastRoom(ctx, c.Room, event.RoomJoined{Room: c.Room, Username: session.DisplayName()})
}

func (o *Orchestrator) leaveRoom(ctx context.Context, c chat.LeaveRoom) {
	session, ok := o.registry.Lookup(c.Session)
	if !ok || !o.valid(ctx, c.Session, c) {
		return
	}
	o.rooms.Leave(c.Room, c.Session)
	o.dispatcher.BroadcastRoom(ctx, c.Room, event.RoomLeft{Room: c.Room, Username: session.DisplayName()})
}

func (o *Orchestrator) roomMessage(ctx context.Context, c chat.RoomMessage) {
	session, ok := o.registry.Lookup(c.Session)
	if !ok || !o.valid(ctx, c.Session, c) || !o.validContent(ctx, c.Session, c.Text) {
		return
	}
	if !slices.Contains(o.rooms.MembersOf(c.Room), c.Session) {
		o.dispatcher.SendTo(ctx, c.Session, event.Error{
			Message: fmt.Sprintf("%s: %s", errors.ErrNotRoomMember, c.Room),
		})
		return
	}
	msg := domain.NewMessage(session, c.Text, &c.Room)
	o.dispatcher.BroadcastRoom(ctx, c.Room, event.FromMessage(msg))
	o.forward(ctx, msg)
}

// forward converts a human chat line into a bus message.
func (o *Orchestrator) forward(ctx context.Context, msg domain.Message) {
	if !o.settings.ForwardToAgents {
		return
	}
	kind := event.KindChat
	if o.settings.CommandPrefix != "" && strings.HasPrefix(strings.TrimSpace(msg.Content), o.settings.CommandPrefix) {
		kind = event.KindCommand
	}
	busMsg := event.NewBusMessage(kind, msg.Sender, msg.Content)
	busMsg.Room = msg.Room
	n := o.dispatcher.BroadcastToAgents(ctx, busMsg)
	o.log.Debug("Message forwarded to agents", "kind", kind, "agents", n)
}

// valid reports validation failures to the sender only.
func (o *Orchestrator) valid(ctx context.Context, id domain.SessionID, cmd chat.Command) bool {
	if err := o.validate.Struct(cmd); err != nil {
		o.log.Debug("Invalid command", "session", id, "command", commandName(cmd), "error", err)
		o.dispatcher.SendTo(ctx, id, event.Error{Message: fmt.Sprintf("%s: %s", errors.ErrInvalidPayload, err)})
		return false
	}
	return true
}

func (o *Orchestrator) validContent(ctx context.Context, id domain.SessionID, text string) bool {
	if o.settings.MaxContentLength <= 0 {
		return true
	}
	if err := o.validate.Var(text, fmt.Sprintf("max=%d", o.settings.MaxContentLength)); err != nil {
		o.dispatcher.SendTo(ctx, id, event.Error{
			Message: fmt.Sprintf("%s: message longer than %d characters", errors.ErrInvalidPayload, o.settings.MaxContentLength),
		})
		return false
	}
	return true
}

func commandName(cmd chat.Command) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", cmd), "chat.")
}

// commandLoop is the single consumer of the command queue.
type commandLoop struct {
	o *Orchestrator
}

func (l *commandLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.o.log.Debug("Stopping command loop")
			return nil
		case cmd := <-l.o.commands:
			l.o.handle(ctx, cmd)
		}
	}
}
