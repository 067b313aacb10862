package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/chat"
	"context"

	"github.com/google/uuid"
)

// Relay is the part of the orchestrator the transport talks to.
type Relay interface {
	Submit(ctx context.Context, cmd chat.Command) error
	Roster() domain.Roster
}

type IChatService interface {
	Open(ctx context.Context, sink contract.EventSink) (domain.SessionID, error)
	Close(ctx context.Context, id domain.SessionID) error
	Submit(ctx context.Context, cmd chat.Command) error
	Roster() domain.Roster
}

type ChatService struct {
	relay Relay
}

func NewChatService(relay Relay) *ChatService {
	return &ChatService{relay: relay}
}

// Open allocates a session id and registers the connection's sink.
// The session is named "Unknown" until it sends set_username.
func (s *ChatService) Open(ctx context.Context, sink contract.EventSink) (domain.SessionID, error) {
	id := domain.SessionID(uuid.NewString())
	if err := s.relay.Submit(ctx, chat.Connect{Session: id, Sink: sink}); err != nil {
		return "", err
	}
	return id, nil
}

func (s *ChatService) Close(ctx context.Context, id domain.SessionID) error {
	return s.relay.Submit(ctx, chat.Disconnect{Session: id})
}

func (s *ChatService) Submit(ctx context.Context, cmd chat.Command) error {
	return s.relay.Submit(ctx, cmd)
}

func (s *ChatService) Roster() domain.Roster {
	return s.relay.Roster()
}
