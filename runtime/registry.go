package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"sync"
)

var _ contract.IRegistry = (*Registry)(nil)

// closer is implemented by sinks that must refuse deliveries once their session is gone.
type closer interface {
	Close()
}

type entry struct {
	session domain.Session
	sink    contract.EventSink
}

// Registry is the session table plus the display-name map shared with agents.
// It owns sessions exclusively; rooms only reference session ids.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	rooms    contract.IRooms
	sessions map[domain.SessionID]entry
	agents   map[domain.AgentID]string
}

func NewRegistry(log *slog.Logger, rooms contract.IRooms) *Registry {
	return &Registry{
		log:      log,
		rooms:    rooms,
		sessions: make(map[domain.SessionID]entry),
		agents:   make(map[domain.AgentID]string),
	}
}

// Register inserts a session without display name.
// The transport guarantees unique ids, a duplicate is an invariant violation.
func (r *Registry) Register(id domain.SessionID, sink contract.EventSink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		r.log.Error("Duplicate connect", "session", id)
		return fmt.Errorf("%w: %s", errors.ErrDuplicateSession, id)
	}
	r.sessions[id] = entry{session: domain.Session{ID: id}, sink: sink}
	return nil
}

// SetName is a no-op for an unknown session: a disconnect may have won the race.
func (r *Registry) SetName(id domain.SessionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		r.log.Debug("Name set on unknown session", "session", id)
		return
	}
	e.session.Name = name
	r.sessions[id] = e
}

// Unregister removes the session, closes its sink and removes it from every room.
// All of it happens under the registry lock, so a dispatch resolving sinks
// afterwards can't see the session anymore.
func (r *Registry) Unregister(id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return
	}
	delete(r.sessions, id)
	if c, ok := e.sink.(closer); ok {
		c.Close()
	}
	r.rooms.RemoveSessionEverywhere(id)
}

func (r *Registry) NameOf(id domain.SessionID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	if !ok {
		return domain.UnknownName
	}
	return e.session.DisplayName()
}

func (r *Registry) Lookup(id domain.SessionID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	return e.session, ok
}

// Sessions returns a snapshot of the registered sessions.
func (r *Registry) Sessions() []domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.Session, 0, len(r.sessions))
	for _, e := range r.sessions {
		res = append(res, e.session)
	}
	return res
}

func (r *Registry) AllSinks() map[domain.SessionID]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(map[domain.SessionID]contract.EventSink, len(r.sessions))
	for id, e := range r.sessions {
		res[id] = e.sink
	}
	return res
}

// Sinks resolves ids into sinks, silently skipping the ones already gone.
func (r *Registry) Sinks(ids []domain.SessionID) map[domain.SessionID]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(map[domain.SessionID]contract.EventSink, len(ids))
	for _, id := range ids {
		if e, ok := r.sessions[id]; ok {
			res[id] = e.sink
		}
	}
	return res
}

func (r *Registry) RegisterAgent(id domain.AgentID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[id] = name
}

func (r *Registry) UnregisterAgent(id domain.AgentID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, id)
}

func (r *Registry) AgentName(id domain.AgentID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.agents[id]
	if !ok || name == "" {
		return domain.UnknownName
	}
	return name
}
