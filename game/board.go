package game

// Board maps each theater to its ordered stack of played cards,
// oldest first. Ability resolution depends on insertion order
// ("most recently played" is the last element).
type Board map[Theater][]PlayedCard

// NewBoard creates an empty board with all three theaters present.
func NewBoard() Board {
	return Board{
		TheaterAir:  {},
		TheaterLand: {},
		TheaterSea:  {},
	}
}

// Push appends a played card to the given theater.
func (b Board) Push(t Theater, pc PlayedCard) {
	b[t] = append(b[t], pc)
}

// Top returns a pointer to the most recently played card in t, or nil
// if the theater is empty.
func (b Board) Top(t Theater) *PlayedCard {
	lane := b[t]
	if len(lane) == 0 {
		return nil
	}
	return &lane[len(lane)-1]
}

// PopTop removes and returns the most recently played card in t.
func (b Board) PopTop(t Theater) (PlayedCard, bool) {
	lane := b[t]
	if len(lane) == 0 {
		return PlayedCard{}, false
	}
	pc := lane[len(lane)-1]
	b[t] = lane[:len(lane)-1]
	return pc, true
}

// TopNotOwnedBy returns a pointer to the most recently played card in t
// that does not belong to owner, scanning from the most recent backward.
// Nil if no such card exists.
func (b Board) TopNotOwnedBy(t Theater, owner int) *PlayedCard {
	lane := b[t]
	for i := len(lane) - 1; i >= 0; i-- {
		if lane[i].Owner != owner {
			return &lane[i]
		}
	}
	return nil
}

// TotalCards returns the number of cards across all theaters.
func (b Board) TotalCards() int {
	n := 0
	for _, lane := range b {
		n += len(lane)
	}
	return n
}

// StrengthByOwner sums the strengths of the cards in t per seat.
func (b Board) StrengthByOwner(t Theater) (seat0, seat1 int) {
	for _, pc := range b[t] {
		if pc.Owner == 0 {
			seat0 += pc.Strength
		} else {
			seat1 += pc.Strength
		}
	}
	return seat0, seat1
}
