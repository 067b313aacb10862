package e2e

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	ws "chat-relay/infrastructure/websocket"
)

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayAddr == "" {
		s.T().Skip("RELAY_ADDR is not set, no relay to talk to")
	}
}

// Client is one websocket connection to the relay.
type Client struct {
	s    *BaseWsSuite
	name string
	conn *websocket.Conn
}

// Dial opens a connection and names it.
func (s *BaseWsSuite) Dial(name string) *Client {
	header := fmt.Sprintf("  ====== %s connects ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	u := url.URL{Scheme: "ws", Host: s.Config.RelayAddr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	s.Require().NoError(err, "Failed to connect to relay at "+u.String())
	c := &Client{s: s, name: name, conn: conn}
	c.Send(ws.SetUsernameEvent, name)
	return c
}

func (c *Client) Send(event string, payload any) {
	raw, err := ws.NewFrame(event, payload)
	c.s.Require().NoError(err)
	c.s.Require().NoError(c.conn.WriteMessage(websocket.TextMessage, raw))
}

// Expect reads frames until one named event satisfies match, skipping the others.
func (c *Client) Expect(event string, match func(data map[string]any) bool) map[string]any {
	deadline := time.Now().Add(5 * time.Second)
	for {
		c.s.Require().NoError(c.conn.SetReadDeadline(deadline))
		_, raw, err := c.conn.ReadMessage()
		c.s.Require().NoError(err, "%s never received %s", c.name, event)

		var frame ws.Frame
		c.s.Require().NoError(json.Unmarshal(raw, &frame))
		if c.s.Config.DebugJSON {
			c.s.T().Logf("%s <- %s", c.name, raw)
		}
		if frame.Event != event {
			continue
		}
		var data map[string]any
		c.s.Require().NoError(json.Unmarshal(frame.Data, &data))
		if match == nil || match(data) {
			return data
		}
	}
}

func (c *Client) Close() {
	_ = c.conn.Close()
}
