package test

import (
	"chat-relay/agents"
	ws "chat-relay/infrastructure/websocket"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type client struct {
	t    *testing.T
	conn *websocket.Conn
}

func dial(t *testing.T, srv *httptest.Server, name string) *client {
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	c := &client{t: t, conn: conn}
	c.send(ws.SetUsernameEvent, name)
	return c
}

func (c *client) send(name string, payload any) {
	raw, err := ws.NewFrame(name, payload)
	require.NoError(c.t, err)
	require.NoError(c.t, c.conn.WriteMessage(websocket.TextMessage, raw))
}

// expect skips frames until one named event satisfies match.
func (c *client) expect(name string, match func(data map[string]any) bool) map[string]any {
	deadline := time.Now().Add(3 * time.Second)
	for {
		require.NoError(c.t, c.conn.SetReadDeadline(deadline))
		_, raw, err := c.conn.ReadMessage()
		require.NoError(c.t, err, "never received %s", name)
		var frame ws.Frame
		require.NoError(c.t, json.Unmarshal(raw, &frame))
		if frame.Event != name {
			continue
		}
		var data map[string]any
		require.NoError(c.t, json.Unmarshal(frame.Data, &data))
		if match(data) {
			return data
		}
	}
}

func field(key, value string) func(map[string]any) bool {
	return func(data map[string]any) bool { return data[key] == value }
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registerer := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registerer)

	// 1. Runtime with the full agent roster
	censored, err := moderation.NewCensoredLoader(moderation.Dictionary).LoadAll(moderation.DictionaryDir)
	req.NoError(err)
	censor, err := moderation.NewModerator(censored.Words, '*', log)
	req.NoError(err)

	rooms := runtime.NewRooms(log, false)
	registry := runtime.NewRegistry(log, rooms)
	supervisor := workers.NewSupervisor(log, metrics, 100*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, rooms, metrics, runtime.Settings{
		BufferSize:       64,
		MailboxSize:      16,
		SinkTimeout:      time.Second,
		MetricInterval:   100 * time.Millisecond,
		MaxContentLength: 500,
		ForwardToAgents:  true,
		CommandPrefix:    "!",
	})
	roster, err := agents.NewRoster([]string{"bridge", "moderator", "linguist", "pulse"}, agents.Deps{
		Log:           log,
		Names:         registry,
		Census:        orchestrator,
		Moderator:     censor,
		CommandPrefix: "!",
		MinConfidence: 0.3,
	})
	req.NoError(err)
	orchestrator.Enroll(roster...)

	done := make(chan struct{})
	go func() {
		_ = orchestrator.Start(context.Background())
		close(done)
	}()
	t.Cleanup(func() {
		orchestrator.Stop()
		<-done
	})
	<-orchestrator.Ready()

	// 2. Transport
	chatService := services.NewChatService(orchestrator)
	server := ws.NewChatServer(log, chatService, ws.Settings{
		ConnectionBufferSize: 32,
		WriteTimeout:         time.Second,
		PongTimeout:          10 * time.Second,
		CloseTimeout:         time.Second,
		MaxFrameSize:         4096,
		AllowedOrigins:       []string{"http://localhost:3000"},
	})
	srv := httptest.NewServer(ws.NewRouter(server, chatService, registerer))
	t.Cleanup(srv.Close)

	// 3. Alice and Bob meet
	alice := dial(t, srv, "Alice")
	alice.expect("user_joined", field("username", "Alice"))
	bob := dial(t, srv, "Bob")
	alice.expect("user_joined", field("username", "Bob"))
	bob.expect("user_joined", field("username", "Bob"))

	alice.send(ws.MessageEvent, "hi Bob")
	bob.expect("response", func(data map[string]any) bool {
		return data["username"] == "Alice" && data["message"] == "hi Bob"
	})

	// 4. A room only reaches its members
	alice.send(ws.JoinRoomEvent, "r1")
	alice.expect("room_joined", field("username", "Alice"))
	alice.send(ws.RoomMessageEvent, ws.RoomMessagePayload{Room: "r1", Message: "alone in r1"})
	alice.expect("response", field("message", "alone in r1"))

	bob.send(ws.JoinRoomEvent, "r1")
	alice.expect("room_joined", field("username", "Bob"))
	bob.send(ws.RoomMessageEvent, ws.RoomMessagePayload{Room: "r1", Message: "now two"})
	alice.expect("response", func(data map[string]any) bool {
		return data["room"] == "r1" && data["message"] == "now two"
	})

	// 5. Agents react through the bridge
	alice.send(ws.MessageEvent, "!stats")
	stats := bob.expect("response", field("username", agents.PulseName))
	req.Contains(stats["message"], "sessions=2 agents=4 rooms=1")

	bob.send(ws.MessageEvent, "what a scam")
	warning := alice.expect("response", field("username", agents.ModeratorName))
	req.Equal(`Bob, please mind your language: "what a ****" (scam)`, warning["message"])

	// 6. Bob leaves, Alice is told
	req.NoError(bob.conn.Close())
	alice.expect("user_left", field("username", "Bob"))
	req.Eventually(func() bool {
		return len(orchestrator.Roster().Sessions) == 1
	}, 2*time.Second, 20*time.Millisecond)
}
