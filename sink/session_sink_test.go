package sink

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionSink_Consume(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(2)

	// When an event is consumed
	err := s.Consume(context.Background(), event.UserJoined{Username: "Alice"})

	// Then it can be read by the write loop
	req.NoError(err)
	req.Equal(event.UserJoined{Username: "Alice"}, <-s.Events())
}

func TestSessionSink_Full_Buffer_Drops(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(1)
	ctx := context.Background()

	// Given a full buffer
	req.NoError(s.Consume(ctx, event.UserJoined{Username: "Alice"}))

	// When another event arrives
	err := s.Consume(ctx, event.UserJoined{Username: "Bob"})

	// Then it is refused without blocking
	req.ErrorIs(err, errors.ErrSinkFull)
	req.Len(s.Events(), 1)
}

func TestSessionSink_Closed_Refuses_Delivery(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(4)

	// Given a closed sink
	s.Close()
	s.Close()

	// When an event is consumed
	err := s.Consume(context.Background(), event.UserJoined{Username: "Alice"})

	// Then nothing is delivered
	req.ErrorIs(err, errors.ErrSinkClosed)
	req.Empty(s.Events())
	select {
	case <-s.Done():
	default:
		req.Fail("done channel should be closed")
	}
}

func TestSessionSink_Canceled_Context(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Consume(ctx, event.UserJoined{Username: "Alice"})

	req.ErrorIs(err, context.Canceled)
}
