package game

// Player is one seat in a session.
type Player struct {
	Seat int
	Hand []Card

	// Send is the attached connection's outbound channel; nil while the
	// seat is vacant.
	Send chan []byte
}

// NewPlayer creates a seat holding the given opening hand.
func NewPlayer(seat int, hand []Card) *Player {
	return &Player{Seat: seat, Hand: hand}
}

// HandContains reports whether the hand holds a card equal to the given
// template (full field-wise equality).
func (p *Player) HandContains(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveFromHand removes the first hand card equal to the given template
// and reports whether one was found.
func (p *Player) RemoveFromHand(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
