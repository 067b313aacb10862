package main

import (
	"bufio"
	"chat-relay/domain"
	ws "chat-relay/infrastructure/websocket"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"RELAY_ADDR,default=localhost:3000"`
	Username      string `env:"RELAY_USERNAME,required=true"`
	LogLevel      string `env:"LOG_LEVEL,default=WARN"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the relay, prints incoming events and sends what is typed on stdin.
//
//	/join <room>           join a room
//	/leave <room>          leave a room
//	/room <room> <text>    talk inside a room
//	anything else          talk to everyone
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect and announce ourselves.
	u := url.URL{Scheme: "ws", Host: config.ServerAddress, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to relay at %s: %w", u.String(), err)
	}
	defer func() {
		log.Info("Closing connection...")
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	if err := send(conn, ws.SetUsernameEvent, config.Username); err != nil {
		return exitRuntime, err
	}
	color.Greenf(">>> Connected to %s as %s (Ctrl+C to quit)\n", config.ServerAddress, config.Username)

	// 4. Reception loop.
	received := make(chan error, 1)
	go func() {
		received <- receive(conn)
	}()

	// 5. Typing loop.
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return exitOK, nil
		case err := <-received:
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("connection lost: %w", err)
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if err := sendLine(conn, line); err != nil {
				return exitRuntime, err
			}
		}
	}
}

func sendLine(conn *websocket.Conn, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	command, rest, _ := strings.Cut(line, " ")
	switch command {
	case "/join":
		return send(conn, ws.JoinRoomEvent, strings.TrimSpace(rest))
	case "/leave":
		return send(conn, ws.LeaveRoomEvent, strings.TrimSpace(rest))
	case "/room":
		room, text, _ := strings.Cut(strings.TrimSpace(rest), " ")
		return send(conn, ws.RoomMessageEvent, ws.RoomMessagePayload{Room: domain.RoomName(room), Message: text})
	default:
		return send(conn, ws.MessageEvent, line)
	}
}

func send(conn *websocket.Conn, name string, payload any) error {
	raw, err := ws.NewFrame(name, payload)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, raw)
}

func receive(conn *websocket.Conn) error {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var frame ws.Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			color.Redf("unreadable frame: %s\n", raw)
			continue
		}
		display(frame)
	}
}

type payload struct {
	Username string  `json:"username"`
	Message  string  `json:"message"`
	Room     *string `json:"room"`
}

func display(frame ws.Frame) {
	var p payload
	_ = json.Unmarshal(frame.Data, &p)
	at := time.Now().Format(time.TimeOnly)

	switch frame.Event {
	case "response":
		if p.Room != nil {
			color.Cyanf("[%s] #%s %s: %s\n", at, *p.Room, p.Username, p.Message)
			return
		}
		fmt.Printf("[%s] %s: %s\n", at, color.Bold.Render(p.Username), p.Message)
	case "user_joined":
		color.Greenf("[%s] %s joined\n", at, p.Username)
	case "user_left":
		color.Yellowf("[%s] %s left\n", at, p.Username)
	case "room_joined":
		color.Greenf("[%s] %s joined #%s\n", at, p.Username, lo.FromPtr(p.Room))
	case "room_left":
		color.Yellowf("[%s] %s left #%s\n", at, p.Username, lo.FromPtr(p.Room))
	case "error":
		color.Redf("[%s] error: %s\n", at, p.Message)
	default:
		fmt.Printf("[%s] %s %s\n", at, frame.Event, frame.Data)
	}
}
