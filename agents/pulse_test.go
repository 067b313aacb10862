package agents

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedCensus struct{ sessions, agents, rooms int }

func (c fixedCensus) Counts() (int, int, int) { return c.sessions, c.agents, c.rooms }

func TestPulse_Stats_Command(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	out := mocks.NewMockEmitter(ctrl)
	pulse := NewPulse(log, "!", fixedCensus{sessions: 2, agents: 4, rooms: 1})

	room := domain.RoomName("r1")
	cmd := event.NewBusMessage(event.KindCommand, "Alice", "  !stats ")
	cmd.Room = &room

	var reply event.BusMessage
	out.EXPECT().BroadcastToAgents(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg event.BusMessage) int {
			reply = msg
			return 1
		}).Times(1)

	// When stats are asked, then a lookalike command is sent
	req.NoError(pulse.Handle(ctx, "pulse", cmd, out))
	req.NoError(pulse.Handle(ctx, "pulse", event.NewBusMessage(event.KindCommand, "Alice", "!statsx"), out))

	// Then a single reply carries the counts, in the asking room
	req.Equal(domain.AgentID("pulse"), reply.From)
	req.Contains(reply.Content, "sessions=2 agents=4 rooms=1")
	req.Equal(&room, reply.Room)
}
