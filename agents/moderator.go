package agents

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/moderation"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const ModeratorName = "Moderator"

// Moderator watches chat lines and answers with a warning when censored words show up.
// The warning quotes the line with the censored words masked.
type Moderator struct {
	log       *slog.Logger
	moderator moderation.Moderator
}

func NewModerator(log *slog.Logger, moderator moderation.Moderator) *Moderator {
	return &Moderator{log: log, moderator: moderator}
}

func (m *Moderator) Name() string        { return ModeratorName }
func (m *Moderator) Role() domain.Role   { return domain.RoleWorker }
func (m *Moderator) Kinds() []event.Kind { return []event.Kind{event.KindChat} }

func (m *Moderator) Handle(ctx context.Context, self domain.AgentID, msg event.BusMessage, out contract.Emitter) error {
	censored, words := m.moderator.Censor(msg.Content)
	if len(words) == 0 {
		return nil
	}
	words = lo.Uniq(words)
	m.log.Warn("Censored words detected", "author", msg.Author, "words", words)

	reply := event.NewBusMessage(event.KindReply, ModeratorName,
		fmt.Sprintf("%s, please mind your language: %q (%s)", msg.Author, censored, strings.Join(words, ", "))).
		FromAgent(self)
	reply.Room = msg.Room
	out.BroadcastToAgents(ctx, reply)
	return nil
}
