package game

// Validate classifies a proposed move for the acting seat. It never
// mutates the session, so a rejected move leaves the state untouched.
//
// Out-of-turn plays are only rejected when StrictTurns is configured;
// by default the engine is permissive about turn order.
func Validate(s *Session, mv Move, seat int) error {
	if seat != 0 && seat != 1 {
		return ErrBadSeat
	}
	switch mv.Action {
	case MoveWithdraw:
		return nil
	case MovePlayCard:
		if mv.Card == nil {
			return ErrMalformedAction
		}
		if s.Config.StrictTurns && seat != s.Turn {
			return ErrOutOfTurn
		}
		if !s.Players[seat].HandContains(*mv.Card) {
			return ErrCardNotInHand
		}
		if !ValidTheater(mv.Theater) {
			return ErrInvalidTheater
		}
		return nil
	default:
		return ErrMalformedAction
	}
}
