package errors

import "fmt"

var (
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
	ErrDuplicateSession      = fmt.Errorf("session already registered")
	ErrSinkClosed            = fmt.Errorf("sink is closed")
	ErrSinkFull              = fmt.Errorf("sink buffer is full")
	ErrUnknownEvent          = fmt.Errorf("unknown event")
	ErrInvalidPayload        = fmt.Errorf("invalid payload")
	ErrNotRoomMember         = fmt.Errorf("session is not a member of the room")
	ErrAgentAlreadyConnected = fmt.Errorf("agent already connected")
	ErrUnknownAgent          = fmt.Errorf("unknown agent")
	ErrBusClosed             = fmt.Errorf("agent bus is closed")
	ErrUnknownAgentType      = fmt.Errorf("unknown agent type")
)
