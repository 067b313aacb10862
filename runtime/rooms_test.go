package runtime

import (
	"chat-relay/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRooms_Join_Creates_Room(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms(testLog(), false)

	// Given no room exists
	req.Nil(rooms.MembersOf("r1"))

	// When two sessions join
	req.Equal([]domain.SessionID{"a"}, rooms.Join("r1", "a"))
	members := rooms.Join("r1", "b")

	// Then both are members
	req.ElementsMatch([]domain.SessionID{"a", "b"}, members)
	req.True(rooms.IsMember("r1", "a"))
	req.Equal([]domain.RoomName{"r1"}, rooms.Rooms())

	// And joining twice changes nothing
	req.Len(rooms.Join("r1", "a"), 2)
}

func TestRooms_MembersOf_Is_A_Snapshot(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms(testLog(), false)
	rooms.Join("r1", "a")

	members := rooms.MembersOf("r1")
	members[0] = "mallory"
	rooms.Join("r1", "b")

	req.Equal([]domain.SessionID{"mallory"}, members)
	req.ElementsMatch([]domain.SessionID{"a", "b"}, rooms.MembersOf("r1"))
}

func TestRooms_Leave(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms(testLog(), false)
	rooms.Join("r1", "a")

	// Leaving a room we are not in, or an unknown room, is a no-op
	rooms.Leave("r1", "b")
	rooms.Leave("nowhere", "a")
	req.Equal([]domain.SessionID{"a"}, rooms.MembersOf("r1"))

	// Empty rooms are retained by default
	rooms.Leave("r1", "a")
	req.Empty(rooms.MembersOf("r1"))
	req.Equal([]domain.RoomName{"r1"}, rooms.Rooms())
}

func TestRooms_Prune_Empty(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms(testLog(), true)
	rooms.Join("r1", "a")
	rooms.Join("r2", "a")
	rooms.Join("r2", "b")

	rooms.RemoveSessionEverywhere("a")

	req.Equal([]domain.RoomName{"r2"}, rooms.Rooms())
	req.Nil(rooms.MembersOf("r1"))
}

func TestRooms_RoomsOf_Sorted(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms(testLog(), false)
	rooms.Join("zeta", "a")
	rooms.Join("alpha", "a")
	rooms.Join("mid", "b")

	req.Equal([]domain.RoomName{"alpha", "zeta"}, rooms.RoomsOf("a"))
	req.Nil(rooms.RoomsOf("c"))
}
