package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=3000"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BufferSize           int           `env:"BUFFER_SIZE,default=256"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MailboxSize          int           `env:"MAILBOX_SIZE,default=64"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=500ms"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=5s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`

	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	PongTimeout  time.Duration `env:"PONG_TIMEOUT,default=60s"`
	MaxFrameSize int           `env:"MAX_FRAME_SIZE,default=8192"`

	MaxContentLength  int     `env:"MAX_CONTENT_LENGTH,default=2000"`
	CommandPrefix     string  `env:"COMMAND_PREFIX,default=!"`
	CharReplacement   string  `env:"CHARACTER_REPLACEMENT,default=*"`
	ForwardToAgents   bool    `env:"FORWARD_TO_AGENTS,default=true"`
	MinLangConfidence float64 `env:"MIN_LANG_CONFIDENCE,default=0.5"`
	RoomPruneEmpty    bool    `env:"ROOM_PRUNE_EMPTY,default=false"`

	// Comma separated lists. Tag defaults cannot hold commas, nil means default.
	AgentRoster        *string `env:"AGENT_ROSTER"`
	CorsAllowedOrigins *string `env:"CORS_ALLOWED_ORIGINS"`
}

const (
	DefaultAgentRoster    = "bridge,moderator,linguist,pulse"
	DefaultAllowedOrigins = "http://localhost:3000"
)

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Agents returns the agent names of AGENT_ROSTER. An empty roster is allowed.
func (c Config) Agents() []string {
	return splitList(lo.FromPtrOr(c.AgentRoster, DefaultAgentRoster))
}

func (c Config) AllowedOrigins() []string {
	return splitList(lo.FromPtrOr(c.CorsAllowedOrigins, DefaultAllowedOrigins))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

func splitList(s string) []string {
	items := lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(items)
}
