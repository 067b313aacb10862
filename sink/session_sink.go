package sink

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"sync"
)

var _ contract.EventSink = (*SessionSink)(nil)

// SessionSink is the delivery end of one connection.
// The dispatcher pushes into it, the transport write loop drains Events.
// Once closed it refuses every delivery, so a disconnected session never
// receives anything dispatched after its removal.
type SessionSink struct {
	mu     sync.Mutex
	closed bool
	events chan event.Outbound
	done   chan struct{}
}

func NewSessionSink(bufferSize int) *SessionSink {
	return &SessionSink{
		events: make(chan event.Outbound, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume is called by the dispatcher.
// It never blocks: a full buffer means the client is too slow and the event is lost for it.
func (s *SessionSink) Consume(ctx context.Context, e event.Outbound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrSinkClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case s.events <- e:
		return nil
	default:
		return errors.ErrSinkFull
	}
}

// Events is drained by the connection write loop.
func (s *SessionSink) Events() <-chan event.Outbound {
	return s.events
}

// Done is closed when the sink is closed.
func (s *SessionSink) Done() <-chan struct{} {
	return s.done
}

// Close is idempotent. Buffered events stay readable.
func (s *SessionSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
