package agents

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"chat-relay/moderation"
	"fmt"
	"log/slog"
	"strings"
)

// Deps gathers what the agents of a roster may need.
type Deps struct {
	Log           *slog.Logger
	Names         contract.NameResolver
	Census        Census
	Moderator     moderation.Moderator
	CommandPrefix string
	MinConfidence float64
}

// NewRoster builds agents from their lowercase names, in order.
func NewRoster(names []string, deps Deps) ([]contract.Agent, error) {
	roster := make([]contract.Agent, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
			continue
		case "bridge":
			roster = append(roster, NewBridge(deps.Log, deps.Names))
		case "moderator":
			roster = append(roster, NewModerator(deps.Log, deps.Moderator))
		case "linguist":
			roster = append(roster, NewLinguist(deps.Log, deps.CommandPrefix, deps.MinConfidence))
		case "pulse":
			roster = append(roster, NewPulse(deps.Log, deps.CommandPrefix, deps.Census))
		default:
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownAgentType, name)
		}
	}
	return roster, nil
}
