package agents

import (
	"chat-relay/errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	req := require.New(t)
	deps := Deps{
		Log:           logs.GetLoggerFromLevel(slog.LevelDebug),
		Census:        fixedCensus{},
		CommandPrefix: "!",
	}

	roster, err := NewRoster([]string{"bridge", " Pulse ", "", "linguist"}, deps)
	req.NoError(err)
	req.Len(roster, 3)
	req.Equal(BridgeName, roster[0].Name())
	req.Equal(PulseName, roster[1].Name())
	req.Equal(LinguistName, roster[2].Name())

	_, err = NewRoster([]string{"bridge", "oracle"}, deps)
	req.ErrorIs(err, errors.ErrUnknownAgentType)
}
