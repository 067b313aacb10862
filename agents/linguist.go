package agents

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const LinguistName = "Linguist"

// Linguist remembers the language each author last wrote in and answers "lang" commands.
//
//	!lang          the language of every author seen so far
//	!lang <text>   the language of text
type Linguist struct {
	log           *slog.Logger
	prefix        string
	minConfidence float64
	// Handle is never called concurrently, no lock needed.
	languages map[string]string
}

func NewLinguist(log *slog.Logger, prefix string, minConfidence float64) *Linguist {
	return &Linguist{
		log:           log,
		prefix:        prefix,
		minConfidence: minConfidence,
		languages:     make(map[string]string),
	}
}

func (l *Linguist) Name() string      { return LinguistName }
func (l *Linguist) Role() domain.Role { return domain.RoleWorker }
func (l *Linguist) Kinds() []event.Kind {
	return []event.Kind{event.KindChat, event.KindCommand}
}

func (l *Linguist) Handle(ctx context.Context, self domain.AgentID, msg event.BusMessage, out contract.Emitter) error {
	switch msg.Kind {
	case event.KindChat:
		if lang, ok := l.detect(msg.Content); ok {
			l.languages[msg.Author] = lang
		}
	case event.KindCommand:
		args, ok := parseCommand(l.prefix, "lang", msg.Content)
		if !ok {
			return nil
		}
		reply := event.NewBusMessage(event.KindReply, LinguistName, l.answer(args)).FromAgent(self)
		reply.Room = msg.Room
		out.BroadcastToAgents(ctx, reply)
	}
	return nil
}

func (l *Linguist) answer(args string) string {
	if args != "" {
		lang, ok := l.detect(args)
		if !ok {
			return "I am not sure about that one"
		}
		return fmt.Sprintf("that looks like %s", lang)
	}
	if len(l.languages) == 0 {
		return "nobody has spoken yet"
	}
	return strings.Join(sortedPairs(l.languages), ", ")
}

func (l *Linguist) detect(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	if info.Confidence < l.minConfidence {
		l.log.Debug("Language confidence too low", "lang", info.Lang.String(), "confidence", info.Confidence)
		return "", false
	}
	return info.Lang.String(), true
}
