package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"card-battle-server/ability"
	"card-battle-server/config"
	"card-battle-server/game"
	"card-battle-server/session"
	"card-battle-server/ws"
)

// setupTestServer creates a test HTTP server with the full game server stack.
func setupTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	cfg := config.Defaults()

	abilities := ability.NewRegistry()
	ability.RegisterAll(abilities)

	sessions := session.NewRegistry(cfg, abilities, nil)

	hub := ws.NewHub(cfg, sessions)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := mux.NewRouter()
	router.HandleFunc("/game/{sessionID}/{participantID}", hub.ServeWS)

	server := httptest.NewServer(router)
	cleanup := func() {
		server.Close()
		cancel()
	}
	return server, cleanup
}

func dialSeat(t *testing.T, server *httptest.Server, sessionID string, seat int) *websocket.Conn {
	t.Helper()
	conn, err := dialSeatErr(server, sessionID, seat)
	if err != nil {
		t.Fatalf("dialing %s seat %d: %v", sessionID, seat, err)
	}
	return conn
}

func dialSeatErr(server *httptest.Server, sessionID string, seat int) (*websocket.Conn, error) {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + fmt.Sprintf("/game/%s/%d", sessionID, seat)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	return conn, err
}

// readState reads messages until a full state frame arrives, skipping
// side-channel messages such as peek notes.
func readState(t *testing.T, conn *websocket.Conn) game.StateMsg {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("reading state: %v", err)
		}
		if !bytes.Contains(data, []byte(`"board"`)) {
			continue
		}
		var state game.StateMsg
		if err := json.Unmarshal(data, &state); err != nil {
			t.Fatalf("unmarshaling state: %v", err)
		}
		return state
	}
	t.Fatal("no state frame received")
	return game.StateMsg{}
}

func boardTotal(state game.StateMsg) int {
	n := 0
	for _, lane := range state.Board {
		n += len(lane)
	}
	return n
}

func TestPlayCardBroadcastsToBothParticipants(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s1", 0)
	defer conn0.Close()
	conn1 := dialSeat(t, server, "s1", 1)
	defer conn1.Close()

	snapshot0 := readState(t, conn0)
	readState(t, conn1)

	hand := snapshot0.Hands[0]
	if len(hand) != 6 {
		t.Fatalf("expected a 6-card opening hand, got %d", len(hand))
	}

	// Prefer an ability-free card so the play lands where it was sent.
	card := hand[0]
	for _, c := range hand {
		if c.Ability == game.AbilityNone {
			card = c
			break
		}
	}

	move := map[string]any{"action": "play_card", "card": card, "theater": "Air"}
	if err := conn0.WriteJSON(move); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	state0 := readState(t, conn0)
	state1 := readState(t, conn1)

	if !reflect.DeepEqual(state0, state1) {
		t.Errorf("participants received different broadcasts:\n%+v\n%+v", state0, state1)
	}
	if state0.Turn != 1 {
		t.Errorf("expected turn 1 after the play, got %d", state0.Turn)
	}
	if len(state0.Hands[0]) != 5 {
		t.Errorf("expected a 5-card hand for participant 0, got %d", len(state0.Hands[0]))
	}
	if got := boardTotal(state0); got != 1 {
		t.Errorf("expected 1 card on the board, got %d", got)
	}
	if card.Ability == game.AbilityNone {
		air := state0.Board[game.TheaterAir]
		if len(air) != 1 || air[0].Name != card.Name || air[0].Owner != 0 {
			t.Errorf("expected %q owned by 0 in Air, got %+v", card.Name, air)
		}
	}
}

func TestMalformedMoveRepliesWithoutBroadcast(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s2", 0)
	defer conn0.Close()
	conn1 := dialSeat(t, server, "s2", 1)
	defer conn1.Close()
	readState(t, conn0)
	readState(t, conn1)

	if err := conn0.WriteMessage(websocket.TextMessage, []byte("{{{not json")); err != nil {
		t.Fatalf("sending malformed payload: %v", err)
	}

	conn0.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn0.ReadMessage()
	if err != nil {
		t.Fatalf("reading error reply: %v", err)
	}
	var reply map[string]string
	if err := json.Unmarshal(data, &reply); err != nil {
		t.Fatalf("unmarshaling error reply: %v", err)
	}
	if reply["error"] != "Invalid move format" {
		t.Errorf("expected %q, got %q", "Invalid move format", reply["error"])
	}

	// The opponent sees nothing: no broadcast on a rejected payload.
	conn1.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := conn1.ReadMessage(); err == nil {
		t.Error("opponent received a message for a malformed payload")
	}
}

func TestCardNotInHandReply(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s3", 0)
	defer conn0.Close()
	readState(t, conn0)

	ghost := game.Card{Name: "Ghost Ship", Strength: 9, Theater: game.TheaterSea}
	move := map[string]any{"action": "play_card", "card": ghost, "theater": "Sea"}
	if err := conn0.WriteJSON(move); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	conn0.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn0.ReadMessage()
	if err != nil {
		t.Fatalf("reading error reply: %v", err)
	}
	var reply map[string]string
	if err := json.Unmarshal(data, &reply); err != nil {
		t.Fatalf("unmarshaling error reply: %v", err)
	}
	if reply["error"] != "Card not in hand" {
		t.Errorf("expected %q, got %q", "Card not in hand", reply["error"])
	}
}

func TestOccupiedSeatClosedWithPolicyViolation(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s4", 0)
	defer conn0.Close()
	readState(t, conn0)

	dup, err := dialSeatErr(server, "s4", 0)
	if err != nil {
		t.Fatalf("dialing occupied seat: %v", err)
	}
	defer dup.Close()

	dup.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = dup.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("expected policy violation close, got %v", err)
	}
}

func TestBadParticipantIDClosedWithPolicyViolation(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn, err := dialSeatErr(server, "s5", 7)
	if err != nil {
		t.Fatalf("dialing with bad participant id: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("expected policy violation close, got %v", err)
	}
}

func TestWithdrawEndsRound(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s6", 0)
	defer conn0.Close()
	conn1 := dialSeat(t, server, "s6", 1)
	defer conn1.Close()
	readState(t, conn0)
	readState(t, conn1)

	if err := conn1.WriteJSON(map[string]any{"action": "withdraw"}); err != nil {
		t.Fatalf("sending withdraw: %v", err)
	}

	state := readState(t, conn0)
	// Empty board at withdraw time: the opponent gains the full 6 points.
	if state.Scores[0] != 6 {
		t.Errorf("expected 6 points for participant 0, got %d", state.Scores[0])
	}
	if state.Scores[1] != 0 {
		t.Errorf("expected 0 points for participant 1, got %d", state.Scores[1])
	}
	if boardTotal(state) != 0 {
		t.Error("board not cleared after withdraw")
	}
	if len(state.Hands[0]) != 0 || len(state.Hands[1]) != 0 {
		t.Error("hands not emptied after withdraw")
	}
}

func TestSessionRemovedWhenBothDisconnect(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	conn0 := dialSeat(t, server, "s7", 0)
	conn1 := dialSeat(t, server, "s7", 1)
	readState(t, conn0)
	readState(t, conn1)

	// End the round so the live session is distinguishable from a fresh one.
	if err := conn1.WriteJSON(map[string]any{"action": "withdraw"}); err != nil {
		t.Fatalf("sending withdraw: %v", err)
	}
	readState(t, conn0)

	conn0.Close()
	conn1.Close()

	// The registry processes disconnects asynchronously; poll until a new
	// connection lands in a freshly dealt session.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := dialSeatErr(server, "s7", 0)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			continue
		}
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			time.Sleep(50 * time.Millisecond)
			continue
		}
		var state game.StateMsg
		if jsonErr := json.Unmarshal(data, &state); jsonErr == nil && len(state.Hands[0]) == 6 {
			conn.Close()
			return
		}
		conn.Close()
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("session was not recreated fresh after both participants disconnected")
}
