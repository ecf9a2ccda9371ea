package game

import (
	"log/slog"

	"card-battle-server/config"
	"card-battle-server/wsutil"
)

// ActionType enumerates the kinds of actions a session loop can process.
type ActionType int

const (
	ActionMove   ActionType = iota // a decoded play_card or withdraw
	ActionAttach                   // connection attaching to a seat
	ActionDetach                   // connection leaving a seat
)

// Action is one unit of work for the session loop.
type Action struct {
	Type ActionType
	Seat int
	Move Move

	// Send is the connection's outbound channel (ActionAttach).
	Send chan []byte
	// Err receives the attach decision (ActionAttach).
	Err chan error
	// Gone receives the remaining attached count (ActionDetach).
	Gone chan int
}

// ScoreSink records score awards for later retrieval. Optional; may be nil.
type ScoreSink interface {
	RecordWithdraw(sessionID string, bySeat, toSeat, points, boardCards int)
	RecordControlAward(sessionID string, toSeat, points, boardCards int)
}

// Session is the aggregate for one two-participant match. All mutation
// flows through the Actions channel and is applied by Run, so an accepted
// action's full effect (state change + broadcast) is one atomic unit with
// respect to the other participant's connection.
type Session struct {
	ID      string
	Board   Board
	Players [2]*Player
	Turn    int

	// Scores is fed only by withdraw forfeits; VictoryPoints only by
	// lane-control majorities. The two pools are never reconciled.
	Scores        [2]int
	VictoryPoints [2]int

	Config    *config.Config
	Abilities AbilityProvider
	Sink      ScoreSink

	Actions chan Action
	Done    chan struct{}

	attached int
}

// NewSession deals the opening hands and creates the aggregate. The
// caller starts the loop with go s.Run().
func NewSession(id string, cfg *config.Config, abilities AbilityProvider, sink ScoreSink) *Session {
	h0, h1 := Deal(cfg.HandSize)
	return &Session{
		ID:        id,
		Board:     NewBoard(),
		Players:   [2]*Player{NewPlayer(0, h0), NewPlayer(1, h1)},
		Turn:      0,
		Config:    cfg,
		Abilities: abilities,
		Sink:      sink,
		Actions:   make(chan Action, 16),
		Done:      make(chan struct{}),
	}
}

// Run processes the session's actions sequentially. It should be run as a
// goroutine; it returns when the last participant detaches.
func (s *Session) Run() {
	defer close(s.Done)

	for action := range s.Actions {
		switch action.Type {
		case ActionAttach:
			action.Err <- s.handleAttach(action.Seat, action.Send)
		case ActionDetach:
			remaining := s.handleDetach(action.Seat)
			if action.Gone != nil {
				action.Gone <- remaining
			}
			if remaining == 0 {
				slog.Info("session empty, shutting down", "tag", "game", "session", s.ID)
				return
			}
		case ActionMove:
			s.safeHandleMove(action.Seat, action.Move)
		}
	}
}

func (s *Session) handleAttach(seat int, send chan []byte) error {
	if seat != 0 && seat != 1 {
		return ErrBadSeat
	}
	p := s.Players[seat]
	if p.Send != nil {
		return ErrSeatTaken
	}
	p.Send = send
	s.attached++
	// Snapshot so a joining (or rejoining) participant sees current state.
	wsutil.SendJSON(send, s.buildStateFor(seat))
	return nil
}

func (s *Session) handleDetach(seat int) int {
	if seat != 0 && seat != 1 {
		return s.attached
	}
	p := s.Players[seat]
	if p.Send == nil {
		return s.attached
	}
	p.Send = nil
	s.attached--
	return s.attached
}

// safeHandleMove isolates a fault in move processing to the offending
// sender instead of taking the whole session loop down.
func (s *Session) safeHandleMove(seat int, mv Move) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unhandled fault processing move",
				"tag", "game", "session", s.ID, "seat", seat, "fault", r)
			s.sendFault(seat, r)
		}
	}()
	s.handleMove(seat, mv)
}

func (s *Session) handleMove(seat int, mv Move) {
	if err := Validate(s, mv, seat); err != nil {
		s.sendError(seat, err)
		return
	}
	switch mv.Action {
	case MovePlayCard:
		s.applyPlay(seat, *mv.Card, mv.Theater)
	case MoveWithdraw:
		s.applyWithdraw(seat)
	}
	s.awardLaneControl()
	s.broadcastState()
}

// applyPlay moves the card from hand to board, resolves its ability and
// toggles the turn. Validation has already accepted the move, so the
// state mutation cannot half-fail.
func (s *Session) applyPlay(seat int, card Card, theater Theater) {
	if !s.Players[seat].RemoveFromHand(card) {
		// Validate guarantees presence; reaching here is a bug.
		slog.Error("accepted card missing from hand",
			"tag", "game", "session", s.ID, "seat", seat, "card", card.Name)
		return
	}
	s.Board.Push(theater, PlayedCard{Card: card, Owner: seat})

	if card.Ability != AbilityNone && s.Abilities != nil {
		if def, ok := s.Abilities.Get(card.Ability); ok {
			note, err := def.Apply(s, theater, seat, card)
			if err != nil {
				slog.Warn("ability resolution failed",
					"tag", "game", "session", s.ID, "ability", string(card.Ability), "err", err)
			}
			if note != nil {
				s.sendNote(seat, note)
			}
		} else {
			slog.Warn("unknown ability on played card",
				"tag", "game", "session", s.ID, "ability", string(card.Ability))
		}
	}

	s.Turn = 1 - s.Turn
}

func (s *Session) sendError(seat int, err error) {
	p := s.Players[seat]
	if p == nil || p.Send == nil {
		return
	}
	wsutil.SendJSON(p.Send, map[string]string{"error": WireError(err)})
}

func (s *Session) sendFault(seat int, fault any) {
	p := s.Players[seat]
	if p == nil || p.Send == nil {
		return
	}
	wsutil.SendJSON(p.Send, map[string]any{"error": "Internal error", "detail": fault})
}

// sendNote delivers an ability's private note to the acting participant
// only; it is never part of the broadcast.
func (s *Session) sendNote(seat int, note *Note) {
	p := s.Players[seat]
	if p == nil || p.Send == nil {
		return
	}
	wsutil.SendJSON(p.Send, note)
}

func (s *Session) broadcastState() {
	for seat := 0; seat < 2; seat++ {
		p := s.Players[seat]
		if p == nil || p.Send == nil {
			continue
		}
		wsutil.SendJSON(p.Send, s.buildStateFor(seat))
	}
}
