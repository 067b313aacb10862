// Package websocket exposes the relay over gorilla/websocket.
// Every frame is a JSON object {"event": <name>, "data": <payload>}.
package websocket

import (
	"chat-relay/domain"
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"encoding/json"
	"fmt"
)

// Inbound event names.
const (
	SetUsernameEvent = "set_username"
	MessageEvent     = "message"
	JoinRoomEvent    = "join_room"
	LeaveRoomEvent   = "leave_room"
	RoomMessageEvent = "room_message"
)

type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type RoomMessagePayload struct {
	Room    domain.RoomName `json:"room"`
	Message string          `json:"message"`
}

// Decode turns a client frame into the command of the given session.
func Decode(id domain.SessionID, raw []byte) (chat.Command, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}

	switch frame.Event {
	case SetUsernameEvent, MessageEvent, JoinRoomEvent, LeaveRoomEvent:
		var value string
		if err := json.Unmarshal(frame.Data, &value); err != nil {
			return nil, fmt.Errorf("%w: %s expects a string: %w", errors.ErrInvalidPayload, frame.Event, err)
		}
		return stringCommand(id, frame.Event, value), nil
	case RoomMessageEvent:
		var payload RoomMessagePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errors.ErrInvalidPayload, frame.Event, err)
		}
		return chat.RoomMessage{Session: id, Room: payload.Room, Text: payload.Message}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEvent, frame.Event)
	}
}

func stringCommand(id domain.SessionID, name, value string) chat.Command {
	switch name {
	case SetUsernameEvent:
		return chat.SetUsername{Session: id, Name: value}
	case JoinRoomEvent:
		return chat.JoinRoom{Session: id, Room: domain.RoomName(value)}
	case LeaveRoomEvent:
		return chat.LeaveRoom{Session: id, Room: domain.RoomName(value)}
	default:
		return chat.PostMessage{Session: id, Text: value}
	}
}

// Encode renders an outbound event as a frame.
func Encode(e event.Outbound) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: string(e.EventName()), Data: data})
}

// NewFrame renders a client frame, used by the terminal client and the tests.
func NewFrame(name string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: name, Data: data})
}
