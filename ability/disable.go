package ability

import (
	"card-battle-server/game"
)

// Disable nulls the ability of every opponent-hand card matching the
// played card's template (name, strength, theater, ability); strength,
// name and theater are preserved. With a duplicate-free catalog and
// disjoint hands the match can never fire, but the structural-match
// targeting is kept as-is rather than reinterpreted.
type Disable struct{}

func (d *Disable) ID() game.Ability { return game.AbilityDisable }
func (d *Disable) Name() string     { return "Disable" }
func (d *Disable) Description() string {
	return "Neutralizes the ability of matching cards in the opponent's hand."
}

func (d *Disable) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	opponent := s.Players[1-seat]
	for i := range opponent.Hand {
		if opponent.Hand[i] == played {
			opponent.Hand[i].Ability = game.AbilityNone
		}
	}
	return nil, nil
}
