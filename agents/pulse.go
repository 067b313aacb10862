package agents

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shirou/gopsutil/process"
)

const PulseName = "Pulse"

// Census counts what the relay currently holds.
type Census interface {
	Counts() (sessions, agents, rooms int)
}

// Pulse answers "stats" commands with the relay's population and process footprint.
type Pulse struct {
	log    *slog.Logger
	prefix string
	census Census
}

func NewPulse(log *slog.Logger, prefix string, census Census) *Pulse {
	return &Pulse{log: log, prefix: prefix, census: census}
}

func (p *Pulse) Name() string        { return PulseName }
func (p *Pulse) Role() domain.Role   { return domain.RoleWorker }
func (p *Pulse) Kinds() []event.Kind { return []event.Kind{event.KindCommand} }

func (p *Pulse) Handle(ctx context.Context, self domain.AgentID, msg event.BusMessage, out contract.Emitter) error {
	if _, ok := parseCommand(p.prefix, "stats", msg.Content); !ok {
		return nil
	}
	sessions, agents, rooms := p.census.Counts()
	content := fmt.Sprintf("sessions=%d agents=%d rooms=%d", sessions, agents, rooms)

	rss, cpu, err := selfStats()
	if err != nil {
		p.log.Error("Failed to collect self stats", "error", err)
	} else {
		content = fmt.Sprintf("%s rss=%.1fMiB cpu=%.1f%%", content, float64(rss)/(1<<20), cpu)
	}

	reply := event.NewBusMessage(event.KindReply, PulseName, content).FromAgent(self)
	reply.Room = msg.Room
	out.BroadcastToAgents(ctx, reply)
	return nil
}

// selfStats retrieves the resident memory and CPU usage of the relay process.
func selfStats() (uint64, float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
