package event

import (
	"time"

	"chat-relay/domain"

	"github.com/google/uuid"
)

// Kind tags the payload of a bus message. Agents declare the kinds they accept
// when they connect and only receive messages of those kinds.
type Kind string

const (
	// KindChat is a human chat line forwarded by the relay.
	KindChat Kind = "chat"
	// KindCommand is a human chat line starting with the command prefix.
	KindCommand Kind = "command"
	// KindReply is agent chatter meant for the human-facing channel.
	KindReply Kind = "reply"
	// KindNotice is agent-to-agent traffic that never reaches humans.
	KindNotice Kind = "notice"
)

// BusMessage is the structured message exchanged on the agent bus.
type BusMessage struct {
	ID   uuid.UUID
	Kind Kind
	// From is empty when the relay itself published the message.
	From domain.AgentID
	// To restricts delivery to a single agent when set.
	To      domain.AgentID
	Author  string
	Room    *domain.RoomName
	Content string
	At      time.Time
}

func NewBusMessage(kind Kind, author, content string) BusMessage {
	return BusMessage{
		ID:      uuid.New(),
		Kind:    kind,
		Author:  author,
		Content: content,
		At:      time.Now().UTC(),
	}
}

// FromAgent marks the message as published by the given agent.
func (m BusMessage) FromAgent(id domain.AgentID) BusMessage {
	m.From = id
	return m
}

// Addressed restricts delivery to a single agent.
func (m BusMessage) Addressed(to domain.AgentID) BusMessage {
	m.To = to
	return m
}
