package domain

// Roster is a point-in-time view of who is on the relay.
type Roster struct {
	Sessions []RosterSession `json:"sessions"`
	Agents   []RosterAgent   `json:"agents"`
	Rooms    []RosterRoom    `json:"rooms"`
}

type RosterSession struct {
	ID    SessionID  `json:"id"`
	Name  string     `json:"name"`
	Rooms []RoomName `json:"rooms"`
}

type RosterAgent struct {
	ID   AgentID `json:"id"`
	Name string  `json:"name"`
	Role Role    `json:"role"`
}

type RosterRoom struct {
	Name    RoomName `json:"name"`
	Members int      `json:"members"`
}
