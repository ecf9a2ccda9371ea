package game

import (
	"encoding/json"
	"fmt"
)

// Move kinds accepted on the wire.
const (
	MovePlayCard = "play_card"
	MoveWithdraw = "withdraw"
)

// Move is the decoded inbound action, a tagged union over Action:
// play_card carries a card and target theater, withdraw carries nothing.
type Move struct {
	Action  string  `json:"action"`
	Card    *Card   `json:"card,omitempty"`
	Theater Theater `json:"theater,omitempty"`
}

// DecodeMove parses raw JSON into a Move. Unparseable payloads, unknown
// action kinds and a play_card without a card all fail with
// ErrMalformedAction.
func DecodeMove(data []byte) (Move, error) {
	var mv Move
	if err := json.Unmarshal(data, &mv); err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrMalformedAction, err)
	}
	switch mv.Action {
	case MovePlayCard:
		if mv.Card == nil {
			return Move{}, fmt.Errorf("%w: play_card without card", ErrMalformedAction)
		}
	case MoveWithdraw:
	default:
		return Move{}, fmt.Errorf("%w: unknown action %q", ErrMalformedAction, mv.Action)
	}
	return mv, nil
}
