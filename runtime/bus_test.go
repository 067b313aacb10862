package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingAgent pushes every handled message to received.
type recordingAgent struct {
	name     string
	kinds    []event.Kind
	received chan event.BusMessage
	started  chan struct{}
	release  chan struct{}
	panicOn  string
}

func newRecordingAgent(name string, kinds ...event.Kind) *recordingAgent {
	return &recordingAgent{name: name, kinds: kinds, received: make(chan event.BusMessage, 16)}
}

func (a *recordingAgent) Name() string        { return a.name }
func (a *recordingAgent) Role() domain.Role   { return domain.RoleWorker }
func (a *recordingAgent) Kinds() []event.Kind { return a.kinds }

func (a *recordingAgent) Handle(_ context.Context, _ domain.AgentID, msg event.BusMessage, _ contract.Emitter) error {
	if a.started != nil {
		a.started <- struct{}{}
		<-a.release
	}
	if a.panicOn != "" && msg.Content == a.panicOn {
		panic("boom")
	}
	a.received <- msg
	return nil
}

func receive(t *testing.T, a *recordingAgent) event.BusMessage {
	t.Helper()
	select {
	case msg := <-a.received:
		return msg
	case <-time.After(2 * time.Second):
		require.FailNow(t, "agent received nothing", a.name)
		return event.BusMessage{}
	}
}

func newTestBus(t *testing.T, listener contract.AgentListener, mailboxSize int) *AgentBus {
	bus := NewAgentBus(testLog(), testMetrics(), listener, mailboxSize)
	t.Cleanup(bus.Close)
	return bus
}

func TestAgentBus_Routes_By_Kind(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bus := newTestBus(t, nil, 8)
	out := mocks.NewMockEmitter(ctrl)

	listener := newRecordingAgent("listener", event.KindChat)
	replier := newRecordingAgent("replier", event.KindReply, event.KindChat)
	listenerInfo, err := bus.Connect(ctx, listener, out)
	req.NoError(err)
	replierInfo, err := bus.Connect(ctx, replier, out)
	req.NoError(err)

	// A chat line reaches both
	req.Equal(2, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "Alice", "hi")))
	req.Equal("hi", receive(t, listener).Content)
	req.Equal("hi", receive(t, replier).Content)

	// A reply only reaches agents accepting replies
	req.Equal(1, bus.Publish(ctx, event.NewBusMessage(event.KindReply, "x", "r")))
	req.Equal("r", receive(t, replier).Content)

	// A message is never delivered back to its publisher
	req.Equal(1, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "x", "self").FromAgent(replierInfo.ID)))
	req.Equal("self", receive(t, listener).Content)

	// Addressed messages only reach their target
	req.Equal(1, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "x", "dm").Addressed(listenerInfo.ID)))
	req.Equal("dm", receive(t, listener).Content)

	// No agent accepts notices
	req.Equal(0, bus.Publish(ctx, event.NewBusMessage(event.KindNotice, "x", "n")))

	req.Len(bus.Agents(), 2)
	req.Equal("listener", bus.Agents()[0].Name)
}

func TestAgentBus_Disconnect(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockAgentListener(ctrl)
	bus := newTestBus(t, listener, 8)
	agent := newRecordingAgent("worker", event.KindChat)

	listener.EXPECT().OnAgentConnected(gomock.Any()).Times(1)
	listener.EXPECT().OnAgentDisconnected(gomock.Any()).Times(1)

	// Given a connected agent
	info, err := bus.Connect(ctx, agent, mocks.NewMockEmitter(ctrl))
	req.NoError(err)
	req.Equal(domain.AgentConnected, bus.State(info.ID))
	req.False(info.ConnectedAt.IsZero())

	// When it disconnects
	req.NoError(bus.Disconnect(info.ID))

	// Then it no longer receives anything and can't disconnect twice
	req.Equal(domain.AgentDisconnected, bus.State(info.ID))
	req.Equal(0, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "Alice", "late")))
	req.ErrorIs(bus.Disconnect(info.ID), errors.ErrUnknownAgent)
	req.Empty(bus.Agents())
}

func TestAgentBus_Context_Done_Disconnects(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockAgentListener(ctrl)
	bus := newTestBus(t, listener, 8)
	agent := newRecordingAgent("worker", event.KindChat)
	gone := make(chan domain.AgentInfo, 1)

	listener.EXPECT().OnAgentConnected(gomock.Any()).Times(1)
	listener.EXPECT().OnAgentDisconnected(gomock.Any()).Times(1).Do(func(info domain.AgentInfo) {
		gone <- info
	})

	// Given a connected agent
	info, err := bus.Connect(ctx, agent, mocks.NewMockEmitter(ctrl))
	req.NoError(err)

	// When the context it was connected with is done
	cancel()

	// Then the agent is announced as gone and removed from the bus
	select {
	case left := <-gone:
		req.Equal(info.ID, left.ID)
	case <-time.After(2 * time.Second):
		req.FailNow("agent never disconnected")
	}
	req.Equal(domain.AgentDisconnected, bus.State(info.ID))
	req.Equal(0, bus.Publish(context.Background(), event.NewBusMessage(event.KindChat, "Alice", "late")))
	req.Empty(bus.Agents())
	req.ErrorIs(bus.Disconnect(info.ID), errors.ErrUnknownAgent)
}

func TestAgentBus_Connect_With_Done_Context(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockAgentListener(ctrl)
	bus := newTestBus(t, listener, 8)

	// A notification may happen or not, depending on which goroutine wins
	listener.EXPECT().OnAgentConnected(gomock.Any()).AnyTimes()
	listener.EXPECT().OnAgentDisconnected(gomock.Any()).AnyTimes()

	// When an agent connects with a context already done
	_, err := bus.Connect(ctx, newRecordingAgent("late", event.KindChat), mocks.NewMockEmitter(ctrl))

	// Then it never stays on the bus
	if err != nil {
		req.ErrorIs(err, context.Canceled)
	}
	req.Eventually(func() bool { return len(bus.Agents()) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestAgentBus_Full_Mailbox_Drops(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bus := newTestBus(t, nil, 1)
	agent := newRecordingAgent("slow", event.KindChat)
	agent.started = make(chan struct{}, 4)
	agent.release = make(chan struct{})

	_, err := bus.Connect(ctx, agent, mocks.NewMockEmitter(ctrl))
	req.NoError(err)

	// Given the agent is busy with a first message
	req.Equal(1, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "a", "1")))
	<-agent.started

	// When more arrive than the mailbox holds
	req.Equal(1, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "a", "2")))
	req.Equal(0, bus.Publish(ctx, event.NewBusMessage(event.KindChat, "a", "3")))

	// Then the overflow is lost, the rest is handled in order
	close(agent.release)
	req.Equal("1", receive(t, agent).Content)
	req.Equal("2", receive(t, agent).Content)
}

func TestAgentBus_Panic_Loses_One_Message(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bus := newTestBus(t, nil, 8)
	agent := newRecordingAgent("fragile", event.KindChat)
	agent.panicOn = "boom"

	info, err := bus.Connect(ctx, agent, mocks.NewMockEmitter(ctrl))
	req.NoError(err)

	bus.Publish(ctx, event.NewBusMessage(event.KindChat, "a", "boom"))
	bus.Publish(ctx, event.NewBusMessage(event.KindChat, "a", "fine"))

	req.Equal("fine", receive(t, agent).Content)
	req.Equal(domain.AgentConnected, bus.State(info.ID))
}

func TestAgentBus_Closed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	bus := NewAgentBus(testLog(), testMetrics(), nil, 8)
	_, err := bus.Connect(context.Background(), newRecordingAgent("a", event.KindChat), mocks.NewMockEmitter(ctrl))
	req.NoError(err)

	bus.Close()

	req.Empty(bus.Agents())
	_, err = bus.Connect(context.Background(), newRecordingAgent("b", event.KindChat), mocks.NewMockEmitter(ctrl))
	req.ErrorIs(err, errors.ErrBusClosed)
}
