package event

import (
	"chat-relay/domain"
)

// Name is the event name a connection receives on the wire.
type Name string

const (
	UserJoinedName Name = "user_joined"
	UserLeftName   Name = "user_left"
	ResponseName   Name = "response"
	RoomJoinedName Name = "room_joined"
	RoomLeftName   Name = "room_left"
	ErrorName      Name = "error"
)

// Outbound is an event pushed to connections by the dispatcher.
// Each implementation carries its own typed payload.
type Outbound interface {
	EventName() Name
}

type UserJoined struct {
	Username string `json:"username"`
}

func (UserJoined) EventName() Name { return UserJoinedName }

type UserLeft struct {
	Username string `json:"username"`
}

func (UserLeft) EventName() Name { return UserLeftName }

// Response is a chat line. Room is only set for room-scoped messages.
type Response struct {
	Username string           `json:"username"`
	Message  string           `json:"message"`
	Room     *domain.RoomName `json:"room,omitempty"`
}

func (Response) EventName() Name { return ResponseName }

type RoomJoined struct {
	Room     domain.RoomName `json:"room"`
	Username string          `json:"username"`
}

func (RoomJoined) EventName() Name { return RoomJoinedName }

type RoomLeft struct {
	Room     domain.RoomName `json:"room"`
	Username string          `json:"username"`
}

func (RoomLeft) EventName() Name { return RoomLeftName }

// Error is only ever sent to the session that caused it.
type Error struct {
	Message string `json:"message"`
}

func (Error) EventName() Name { return ErrorName }

func FromMessage(m domain.Message) Response {
	return Response{
		Username: m.Sender,
		Message:  m.Content,
		Room:     m.Room,
	}
}
