package ability

import (
	"card-battle-server/game"
)

// Peek produces a private note naming the opponent's first hand card and
// its strength. The note goes to the acting participant only and no state
// is mutated.
type Peek struct{}

func (p *Peek) ID() game.Ability { return game.AbilityPeek }
func (p *Peek) Name() string     { return "Peek" }
func (p *Peek) Description() string {
	return "Reveals the opponent's first hand card to you."
}

func (p *Peek) Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error) {
	opponent := s.Players[1-seat]
	if len(opponent.Hand) == 0 {
		return nil, nil
	}
	first := opponent.Hand[0]
	return &game.Note{Peek: &game.PeekInfo{Name: first.Name, Strength: first.Strength}}, nil
}
