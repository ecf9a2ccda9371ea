package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"card-battle-server/game"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client is a middleman between one websocket connection and the session
// it is attached to.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	Session   *game.Session
	SessionID string
	Seat      int
}

// ReadPump pumps inbound messages from the websocket connection into the
// session's action channel. It runs in its own goroutine per connection.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read error", "tag", "ws", "err", err)
			}
			break
		}
		if !c.handleMessage(message) {
			break
		}
	}
}

// WritePump pumps messages from the send channel to the websocket
// connection. It runs in its own goroutine per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage decodes one inbound payload and forwards it to the
// session loop. A malformed payload gets an error reply and never reaches
// the session. Returns false when the connection should be torn down.
func (c *Client) handleMessage(data []byte) (keepOpen bool) {
	// Best-effort safety net: an unexpected fault closes this connection
	// with the fault text instead of crashing the process.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unhandled fault in message handler",
				"tag", "ws", "session", c.SessionID, "seat", c.Seat, "fault", r)
			closePolicyViolation(c.Conn, fmt.Sprint(r))
			keepOpen = false
		}
	}()

	mv, err := game.DecodeMove(data)
	if err != nil {
		c.sendError(game.WireError(err))
		return true
	}

	select {
	case c.Session.Actions <- game.Action{Type: game.ActionMove, Seat: c.Seat, Move: mv}:
	case <-c.Session.Done:
	}
	return true
}

func (c *Client) sendError(message string) {
	data, _ := json.Marshal(map[string]string{"error": message})
	select {
	case c.Send <- data:
	default:
	}
}
