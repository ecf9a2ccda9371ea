package ability

import (
	"math/rand"

	"card-battle-server/game"
)

// Move removes the most recently played card from the target theater
// (immediately after a play, the just-played card itself) and appends it
// to a uniformly random theater, possibly the same one.
type Move struct{}

func (m *Move) ID() game.Ability { return game.AbilityMove }
func (m *Move) Name() string     { return "Move" }
func (m *Move) Description() string {
	return "Relocates the most recently played card in this theater to a random theater."
}

func (m *Move) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	pc, ok := s.Board.PopTop(theater)
	if !ok {
		return nil, nil
	}
	dest := game.Theaters[rand.Intn(len(game.Theaters))]
	s.Board.Push(dest, pc)
	return nil, nil
}
