// Package domain contains core concepts of the chat system.
// This file defines Message values and related rules.
// Messages are transient: they only exist for the duration of a dispatch.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat message on its way to recipients.
type Message struct {
	ID        uuid.UUID // unique identifier
	SenderID  SessionID
	Sender    string // display name at dispatch time
	Content   string
	Room      *RoomName // nil for a broadcast to everyone
	CreatedAt time.Time
}

func NewMessage(sender Session, content string, room *RoomName) Message {
	return Message{
		ID:        uuid.New(),
		SenderID:  sender.ID,
		Sender:    sender.DisplayName(),
		Content:   content,
		Room:      room,
		CreatedAt: time.Now().UTC(),
	}
}
