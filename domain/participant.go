// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// UnknownName labels a participant that never announced a display name.
const UnknownName = "Unknown"

// SessionID is the opaque connection id generated by the transport layer.
type SessionID string

// Session is a live connection representing one human participant.
// An empty Name means set_username has not been received yet.
type Session struct {
	ID   SessionID
	Name string
}

// DisplayName returns the announced name or UnknownName.
func (s Session) DisplayName() string {
	if s.Name == "" {
		return UnknownName
	}
	return s.Name
}

// Named reports whether the session announced a display name.
func (s Session) Named() bool {
	return s.Name != ""
}
