package ability

import (
	"card-battle-server/game"
)

// Flip zeroes the strength of the most recently played card in the target
// theater that does not belong to the actor. No-op if no such card exists.
type Flip struct{}

func (f *Flip) ID() game.Ability { return game.AbilityFlip }
func (f *Flip) Name() string     { return "Flip" }
func (f *Flip) Description() string {
	return "Sets the strength of the opponent's most recently played card in this theater to 0."
}

func (f *Flip) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	target := s.Board.TopNotOwnedBy(theater, seat)
	if target == nil {
		return nil, nil
	}
	target.Strength = 0
	return nil, nil
}
