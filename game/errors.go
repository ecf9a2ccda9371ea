package game

import "errors"

// Rejection and attach sentinel errors. Shared with the ws and session
// packages so wire replies and close reasons can be chosen with errors.Is.
var (
	ErrMalformedAction = errors.New("invalid move format")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrInvalidTheater  = errors.New("invalid theater")
	ErrOutOfTurn       = errors.New("not your turn")
	ErrBadSeat         = errors.New("participant id must be 0 or 1")
	ErrSeatTaken       = errors.New("seat already taken")
	ErrSessionClosed   = errors.New("session closed")
)

// WireError maps a move rejection to the client-facing error string.
func WireError(err error) string {
	switch {
	case errors.Is(err, ErrMalformedAction):
		return "Invalid move format"
	case errors.Is(err, ErrCardNotInHand):
		return "Card not in hand"
	default:
		return "Invalid move"
	}
}
