package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"card-battle-server/config"
	"card-battle-server/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development; restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SessionJoiner defines what the Hub needs from the session registry.
type SessionJoiner interface {
	Join(id string, seat int, send chan []byte) (*game.Session, error)
	Leave(id string, seat int)
}

// Hub maintains the set of active clients and detaches them from their
// sessions when their connections drop.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Sessions   SessionJoiner
	Config     *config.Config
}

// NewHub creates a new Hub.
func NewHub(cfg *config.Config, sessions SessionJoiner) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Sessions:   sessions,
		Config:     cfg,
	}
}

// Run starts the hub's main loop. Should be run as a goroutine. When ctx
// is cancelled (e.g. on server shutdown), Run returns and no longer
// accepts new registrations.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutdown signal received, stopping", "tag", "ws")
			return
		case client := <-h.Register:
			h.Clients[client] = true
			slog.Info("client connected", "tag", "ws",
				"session", client.SessionID, "seat", client.Seat, "total", len(h.Clients))

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				// Detaching is an asynchronous event to the session loop;
				// the registry deletes the session once both seats are gone.
				h.Sessions.Leave(client.SessionID, client.Seat)
				slog.Info("client disconnected", "tag", "ws",
					"session", client.SessionID, "seat", client.Seat, "total", len(h.Clients))
			}
		}
	}
}

// ServeWS handles WebSocket upgrade requests on
// /game/{sessionID}/{participantID} and attaches the connection to the
// named seat. A participant id other than 0/1 and an already occupied
// seat both close the socket with a policy-violation code.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionID"]
	seat, seatErr := strconv.Atoi(vars["participantID"])

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "tag", "ws", "err", err)
		return
	}

	if seatErr != nil || (seat != 0 && seat != 1) {
		closePolicyViolation(conn, game.ErrBadSeat.Error())
		conn.Close()
		return
	}

	send := make(chan []byte, 256)
	sess, err := h.Sessions.Join(sessionID, seat, send)
	if err != nil {
		closePolicyViolation(conn, err.Error())
		conn.Close()
		return
	}

	client := &Client{
		Hub:       h,
		Conn:      conn,
		Send:      send,
		Session:   sess,
		SessionID: sessionID,
		Seat:      seat,
	}

	h.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

func closePolicyViolation(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		slog.Warn("writing close frame", "tag", "ws", "err", err)
	}
}
