package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"log/slog"
	"slices"
	"sync"
)

var _ contract.IRooms = (*Rooms)(nil)

// Rooms owns the canonical membership set of every room.
// Empty rooms are retained unless pruneEmpty is set.
type Rooms struct {
	mu         sync.RWMutex
	log        *slog.Logger
	pruneEmpty bool
	members    map[domain.RoomName]domain.Set
}

func NewRooms(log *slog.Logger, pruneEmpty bool) *Rooms {
	return &Rooms{
		log:        log,
		pruneEmpty: pruneEmpty,
		members:    make(map[domain.RoomName]domain.Set),
	}
}

// Join adds the session to the room, creating the room on the fly,
// and returns the updated members.
func (r *Rooms) Join(room domain.RoomName, id domain.SessionID) []domain.SessionID {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.members[room]
	if !ok {
		members = make(domain.Set)
		r.members[room] = members
		r.log.Debug("Room created", "room", room)
	}
	members.Add(id)
	return members.Slice()
}

// Leave is a no-op when the session is not a member or the room doesn't exist.
func (r *Rooms) Leave(room domain.RoomName, id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(room, id)
}

// RemoveSessionEverywhere scans every room. Room count is small.
func (r *Rooms) RemoveSessionEverywhere(id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room := range r.members {
		r.remove(room, id)
	}
}

func (r *Rooms) remove(room domain.RoomName, id domain.SessionID) {
	members, ok := r.members[room]
	if !ok {
		return
	}
	members.Remove(id)
	if r.pruneEmpty && len(members) == 0 {
		delete(r.members, room)
		r.log.Debug("Empty room pruned", "room", room)
	}
}

// MembersOf is recomputed on every call, never cached.
// An unknown room has no members.
func (r *Rooms) MembersOf(room domain.RoomName) []domain.SessionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.members[room]
	if !ok {
		return nil
	}
	return members.Slice()
}

func (r *Rooms) IsMember(room domain.RoomName, id domain.SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.members[room].Contains(id)
}

func (r *Rooms) RoomsOf(id domain.SessionID) []domain.RoomName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []domain.RoomName
	for room, members := range r.members {
		if members.Contains(id) {
			res = append(res, room)
		}
	}
	slices.Sort(res)
	return res
}

// Rooms returns every known room name, sorted.
func (r *Rooms) Rooms() []domain.RoomName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.RoomName, 0, len(r.members))
	for room := range r.members {
		res = append(res, room)
	}
	slices.Sort(res)
	return res
}
