// Package chat defines the inbound events a relay accepts.
// Command is a closed set: only the types of this file implement it.
package chat

import (
	"chat-relay/contract"
	"chat-relay/domain"
)

type Command interface {
	command()
}

// Connect registers a fresh connection with its delivery sink.
type Connect struct {
	Session domain.SessionID
	Sink    contract.EventSink
}

type Disconnect struct {
	Session domain.SessionID
}

type SetUsername struct {
	Session domain.SessionID
	Name    string `validate:"required,max=64"`
}

type PostMessage struct {
	Session domain.SessionID
	Text    string `validate:"required"`
}

type JoinRoom struct {
	Session domain.SessionID
	Room    domain.RoomName `validate:"required,max=64"`
}

type LeaveRoom struct {
	Session domain.SessionID
	Room    domain.RoomName `validate:"required,max=64"`
}

// RoomMessage is a chat line delivered only to the members of Room.
type RoomMessage struct {
	Session domain.SessionID
	Room    domain.RoomName `validate:"required,max=64"`
	Text    string          `validate:"required"`
}

// AgentConnected is queued by the agent bus once an agent reached Connected.
type AgentConnected struct {
	Agent domain.AgentInfo
}

type AgentDisconnected struct {
	Agent domain.AgentInfo
}

func (Connect) command()           {}
func (Disconnect) command()        {}
func (SetUsername) command()       {}
func (PostMessage) command()       {}
func (JoinRoom) command()          {}
func (LeaveRoom) command()         {}
func (RoomMessage) command()       {}
func (AgentConnected) command()    {}
func (AgentDisconnected) command() {}
