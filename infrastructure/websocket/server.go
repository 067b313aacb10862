package websocket

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/services"
	"chat-relay/sink"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

// Settings tunes every connection of a ChatServer.
type Settings struct {
	ConnectionBufferSize int
	WriteTimeout         time.Duration
	PongTimeout          time.Duration
	CloseTimeout         time.Duration
	MaxFrameSize         int64
	AllowedOrigins       []string
}

// ChatServer upgrades HTTP requests and runs one read loop and one write loop per connection.
// The read loop turns frames into commands, the write loop drains the session sink.
type ChatServer struct {
	log         *slog.Logger
	chatService services.IChatService
	settings    Settings
	upgrader    websocket.Upgrader
}

func NewChatServer(log *slog.Logger, chatService services.IChatService, settings Settings) *ChatServer {
	s := &ChatServer{log: log, chatService: chatService, settings: settings}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// checkOrigin accepts clients without Origin header, browsers must come from an allowed origin.
func (s *ChatServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || lo.Contains(s.settings.AllowedOrigins, "*") || lo.Contains(s.settings.AllowedOrigins, origin)
}

func (s *ChatServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.serve(r.Context(), conn)
}

// serve blocks until the client goes away or the session sink is closed.
// Cleanup always unregisters the session, even when ctx is already cancelled.
func (s *ChatServer) serve(ctx context.Context, conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	sessionSink := sink.NewSessionSink(s.settings.ConnectionBufferSize)
	id, err := s.chatService.Open(ctx, sessionSink)
	if err != nil {
		s.log.Error("Failed to open session", "error", err)
		s.writeClose(conn, websocket.CloseTryAgainLater, "relay unavailable")
		return
	}
	s.log.Debug("Connection opened", "session", id, "remote", conn.RemoteAddr().String())

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.settings.CloseTimeout)
		defer cancel()
		if err := s.chatService.Close(closeCtx, id); err != nil {
			s.log.Warn("Failed to close session", "session", id, "error", err)
		}
	}()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop(conn, id, sessionSink, stop)
	}()

	s.readLoop(ctx, conn, id, sessionSink)
	close(stop)
	wg.Wait()
}

func (s *ChatServer) readLoop(ctx context.Context, conn *websocket.Conn, id domain.SessionID, sessionSink *sink.SessionSink) {
	conn.SetReadLimit(s.settings.MaxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(s.settings.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.settings.PongTimeout))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("Connection lost", "session", id, "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(s.settings.PongTimeout))

		cmd, err := Decode(id, raw)
		if err != nil {
			s.log.Debug("Rejected frame", "session", id, "error", err)
			if err := sessionSink.Consume(ctx, event.Error{Message: err.Error()}); err != nil {
				s.log.Warn("Failed to report frame error", "session", id, "error", err)
			}
			continue
		}
		if err := s.chatService.Submit(ctx, cmd); err != nil {
			s.log.Warn("Command rejected, closing connection", "session", id, "error", err)
			return
		}
	}
}

// writeLoop is the only writer of conn. It keeps sending until stop,
// a write failure, or the closing of the sink.
func (s *ChatServer) writeLoop(conn *websocket.Conn, id domain.SessionID, sessionSink *sink.SessionSink, stop <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case e := <-sessionSink.Events():
			if err := s.write(conn, e); err != nil {
				s.log.Warn("Failed to push event", "session", id, "event", e.EventName(), "error", err)
				_ = conn.Close()
				return
			}
		case <-sessionSink.Done():
			s.flush(conn, sessionSink)
			s.writeClose(conn, websocket.CloseNormalClosure, "")
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.settings.WriteTimeout)); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}

// flush writes what was buffered before the sink closed.
func (s *ChatServer) flush(conn *websocket.Conn, sessionSink *sink.SessionSink) {
	for {
		select {
		case e := <-sessionSink.Events():
			if err := s.write(conn, e); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (s *ChatServer) write(conn *websocket.Conn, e event.Outbound) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (s *ChatServer) writeClose(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.settings.WriteTimeout))
}

// pingInterval must stay below the pong timeout so a healthy client never hits the read deadline.
func (s *ChatServer) pingInterval() time.Duration {
	return s.settings.PongTimeout * 9 / 10
}
