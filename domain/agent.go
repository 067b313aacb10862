package domain

import "time"

// AgentID is assigned by the agent bus when a worker connects.
type AgentID string

type Role string

const (
	RoleWorker      Role = "worker"
	RoleHumanBridge Role = "human-bridge"
)

// AgentState follows Disconnected -> Connecting -> Connected -> Disconnected.
// Disconnected after Connected is terminal: a reconnecting worker gets a new id.
type AgentState int

const (
	AgentDisconnected AgentState = iota
	AgentConnecting
	AgentConnected
)

func (s AgentState) String() string {
	switch s {
	case AgentConnecting:
		return "connecting"
	case AgentConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// AgentInfo is the identity of an agent as seen by the rest of the relay.
type AgentInfo struct {
	ID          AgentID
	Name        string
	Role        Role
	ConnectedAt time.Time
}
