package game

import "math/rand"

// Deal shuffles the catalog and deals the two opening hands.
// The hands are disjoint: the first handSize cards go to seat 0,
// the next handSize to seat 1, the rest stay out of play.
func Deal(handSize int) ([]Card, []Card) {
	deck := Catalog()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	h0 := append([]Card(nil), deck[:handSize]...)
	h1 := append([]Card(nil), deck[handSize:2*handSize]...)
	return h0, h1
}
