package ability

import (
	"card-battle-server/game"
)

// Weaken reduces the strength of the most recently played card in the
// target theater by 2, floored at 0.
type Weaken struct{}

func (w *Weaken) ID() game.Ability { return game.AbilityWeaken }
func (w *Weaken) Name() string     { return "Weaken" }
func (w *Weaken) Description() string {
	return "Reduces the strength of the most recently played card in this theater by 2 (minimum 0)."
}

func (w *Weaken) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	target := s.Board.Top(theater)
	if target == nil {
		return nil, nil
	}
	target.Strength -= 2
	if target.Strength < 0 {
		target.Strength = 0
	}
	return nil, nil
}
