// Package agents holds the worker agents plugged into the relay's agent bus.
package agents

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"log/slog"
)

const BridgeName = "Bridge"

// Bridge is the human-bridge agent: it turns agent replies into chat responses
// visible to the sessions, labelled with the name of the agent that spoke.
type Bridge struct {
	log   *slog.Logger
	names contract.NameResolver
}

func NewBridge(log *slog.Logger, names contract.NameResolver) *Bridge {
	return &Bridge{log: log, names: names}
}

func (b *Bridge) Name() string        { return BridgeName }
func (b *Bridge) Role() domain.Role   { return domain.RoleHumanBridge }
func (b *Bridge) Kinds() []event.Kind { return []event.Kind{event.KindReply} }

func (b *Bridge) Handle(ctx context.Context, _ domain.AgentID, msg event.BusMessage, out contract.Emitter) error {
	username := b.names.AgentName(msg.From)
	if username == domain.UnknownName && msg.Author != "" {
		username = msg.Author
	}
	resp := event.Response{Username: username, Message: msg.Content, Room: msg.Room}
	if msg.Room != nil {
		out.BroadcastRoom(ctx, *msg.Room, resp)
		return nil
	}
	out.BroadcastAll(ctx, resp)
	return nil
}
