//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the delivery end of one recipient.
// Consume must not block longer than ctx allows.
type EventSink interface {
	Consume(ctx context.Context, e event.Outbound) error
}

type IRegistry interface {
	Register(id domain.SessionID, sink EventSink) error
	SetName(id domain.SessionID, name string)
	Unregister(id domain.SessionID)
	NameOf(id domain.SessionID) string
	Lookup(id domain.SessionID) (domain.Session, bool)
	Sessions() []domain.Session
	AllSinks() map[domain.SessionID]EventSink
	Sinks(ids []domain.SessionID) map[domain.SessionID]EventSink
	RegisterAgent(id domain.AgentID, name string)
	UnregisterAgent(id domain.AgentID)
	AgentName(id domain.AgentID) string
}

type IRooms interface {
	Join(room domain.RoomName, id domain.SessionID) []domain.SessionID
	Leave(room domain.RoomName, id domain.SessionID)
	RemoveSessionEverywhere(id domain.SessionID)
	MembersOf(room domain.RoomName) []domain.SessionID
	RoomsOf(id domain.SessionID) []domain.RoomName
	Rooms() []domain.RoomName
}

// Emitter is what an agent is allowed to do with the broadcast surface.
type Emitter interface {
	BroadcastAll(ctx context.Context, e event.Outbound)
	BroadcastRoom(ctx context.Context, room domain.RoomName, e event.Outbound)
	BroadcastToAgents(ctx context.Context, msg event.BusMessage) int
}

// NameResolver reads the display-name map shared by sessions and agents.
type NameResolver interface {
	AgentName(id domain.AgentID) string
}

// Agent is an autonomous worker plugged into the agent bus.
// Handle is called sequentially for one agent, never concurrently.
type Agent interface {
	Name() string
	Role() domain.Role
	Kinds() []event.Kind
	Handle(ctx context.Context, self domain.AgentID, msg event.BusMessage, out Emitter) error
}

type AgentListener interface {
	OnAgentConnected(info domain.AgentInfo)
	OnAgentDisconnected(info domain.AgentInfo)
}

type IAgentBus interface {
	Connect(ctx context.Context, agent Agent, out Emitter) (domain.AgentInfo, error)
	Disconnect(id domain.AgentID) error
	Publish(ctx context.Context, msg event.BusMessage) int
	State(id domain.AgentID) domain.AgentState
	Agents() []domain.AgentInfo
}
