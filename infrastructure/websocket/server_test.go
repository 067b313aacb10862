package websocket

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// echoService answers every chat line with a response sent back to the same connection.
type echoService struct {
	mu     sync.Mutex
	sink   contract.EventSink
	closed chan domain.SessionID
}

func (s *echoService) Open(_ context.Context, sink contract.EventSink) (domain.SessionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
	return "s1", nil
}

func (s *echoService) Close(_ context.Context, id domain.SessionID) error {
	s.closed <- id
	return nil
}

func (s *echoService) Submit(ctx context.Context, cmd chat.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg, ok := cmd.(chat.PostMessage); ok {
		return s.sink.Consume(ctx, event.Response{Username: "echo", Message: msg.Text})
	}
	return nil
}

func (s *echoService) Roster() domain.Roster {
	return domain.Roster{Rooms: []domain.RosterRoom{{Name: "r1", Members: 1}}}
}

func newTestServer(t *testing.T) (*httptest.Server, *echoService) {
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := &echoService{closed: make(chan domain.SessionID, 1)}
	server := NewChatServer(log, service, Settings{
		ConnectionBufferSize: 8,
		WriteTimeout:         time.Second,
		PongTimeout:          5 * time.Second,
		CloseTimeout:         time.Second,
		MaxFrameSize:         4096,
		AllowedOrigins:       []string{"http://localhost:3000"},
	})
	srv := httptest.NewServer(NewRouter(server, service, prometheus.NewRegistry()))
	t.Cleanup(srv.Close)
	return srv, service
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	req := require.New(t)
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, raw, err := conn.ReadMessage()
	req.NoError(err)
	var frame Frame
	req.NoError(json.Unmarshal(raw, &frame))
	return frame
}

func TestChatServer_Round_Trip(t *testing.T) {
	req := require.New(t)
	srv, service := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	req.NoError(err)

	// When a chat line is sent
	raw, err := NewFrame(MessageEvent, "hello")
	req.NoError(err)
	req.NoError(conn.WriteMessage(websocket.TextMessage, raw))

	// Then the response frame comes back
	frame := readFrame(t, conn)
	req.Equal("response", frame.Event)
	req.JSONEq(`{"username":"echo","message":"hello"}`, string(frame.Data))

	// When a garbage frame is sent
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"dance"}`)))

	// Then only this connection gets an error event
	frame = readFrame(t, conn)
	req.Equal("error", frame.Event)
	req.Contains(string(frame.Data), "unknown event")

	// When the client leaves, the session is closed
	req.NoError(conn.Close())
	select {
	case id := <-service.closed:
		req.Equal(domain.SessionID("s1"), id)
	case <-time.After(2 * time.Second):
		req.Fail("session was not closed")
	}
}

func TestChatServer_Rejects_Foreign_Origin(t *testing.T) {
	req := require.New(t)
	srv, _ := newTestServer(t)

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)

	req.Error(err)
	req.NotNil(resp)
	req.Equal(http.StatusForbidden, resp.StatusCode)
}

func TestRouter_Http_Endpoints(t *testing.T) {
	req := require.New(t)
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/roster")
	req.NoError(err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	req.NoError(err)
	req.JSONEq(`{"sessions":null,"agents":null,"rooms":[{"name":"r1","members":1}]}`, string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}
