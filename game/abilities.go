package game

// AbilityDef holds the definition of a card ability as seen by the game
// package. Apply runs after the played card has moved from hand to board;
// it may mutate the board or the opponent's hand, never the scores. The
// returned note, if any, goes to the acting participant only.
type AbilityDef struct {
	ID          Ability
	Name        string
	Description string
	Apply       func(s *Session, theater Theater, seat int, played Card) (*Note, error)
}

// AbilityProvider abstracts the ability registry so the game package does
// not import the ability package directly (avoids circular deps).
type AbilityProvider interface {
	Get(id Ability) (AbilityDef, bool)
	All() []AbilityDef
}

// Note is a private side-channel message produced by an ability for the
// acting participant. It is never broadcast to the opponent.
type Note struct {
	Peek *PeekInfo `json:"peek,omitempty"`
}

// PeekInfo names the opponent's first hand card and its strength.
type PeekInfo struct {
	Name     string `json:"name"`
	Strength int    `json:"strength"`
}
