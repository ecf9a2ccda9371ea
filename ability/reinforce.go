package ability

import (
	"card-battle-server/game"
)

// Reinforce increases the strength of the most recently played card in
// the target theater by 2. There is no ceiling.
type Reinforce struct{}

func (r *Reinforce) ID() game.Ability { return game.AbilityReinforce }
func (r *Reinforce) Name() string     { return "Reinforce" }
func (r *Reinforce) Description() string {
	return "Increases the strength of the most recently played card in this theater by 2."
}

func (r *Reinforce) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	target := s.Board.Top(theater)
	if target == nil {
		return nil, nil
	}
	target.Strength += 2
	return nil, nil
}
