package domain

// RoomName identifies a room. Rooms are created implicitly on first join.
type RoomName string

// Set is a membership set of session ids.
type Set map[SessionID]struct{}

func (s Set) Add(id SessionID) {
	s[id] = struct{}{}
}

func (s Set) Remove(id SessionID) {
	delete(s, id)
}

func (s Set) Contains(id SessionID) bool {
	_, ok := s[id]
	return ok
}

// Slice returns a copy of the members. Order is not significant.
func (s Set) Slice() []SessionID {
	res := make([]SessionID, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	return res
}
