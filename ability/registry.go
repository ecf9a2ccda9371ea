package ability

import (
	"card-battle-server/game"
)

// CardAbility defines the interface that all card abilities implement.
type CardAbility interface {
	ID() game.Ability
	Name() string
	Description() string
	Apply(s *game.Session, theater game.Theater, seat int, played game.Card) (*game.Note, error)
}

// Registry holds all registered abilities indexed by their ID.
type Registry struct {
	abilities map[game.Ability]CardAbility
	order     []game.Ability // registration order for deterministic All()
}

// NewRegistry creates a new empty ability registry.
func NewRegistry() *Registry {
	return &Registry{
		abilities: make(map[game.Ability]CardAbility),
	}
}

// Register adds an ability to the registry.
func (r *Registry) Register(a CardAbility) {
	id := a.ID()
	if _, exists := r.abilities[id]; !exists {
		r.order = append(r.order, id)
	}
	r.abilities[id] = a
}

// Get returns the ability definition for the game package.
// It satisfies the game.AbilityProvider interface.
func (r *Registry) Get(id game.Ability) (game.AbilityDef, bool) {
	a, ok := r.abilities[id]
	if !ok {
		return game.AbilityDef{}, false
	}
	return def(a), true
}

// All returns every registered ability in registration order.
// It satisfies the game.AbilityProvider interface.
func (r *Registry) All() []game.AbilityDef {
	defs := make([]game.AbilityDef, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, def(r.abilities[id]))
	}
	return defs
}

func def(a CardAbility) game.AbilityDef {
	return game.AbilityDef{
		ID:          a.ID(),
		Name:        a.Name(),
		Description: a.Description(),
		Apply:       a.Apply,
	}
}

// RegisterAll registers all built-in abilities on the registry. Call this
// from main (or server setup) so adding an ability only requires
// registering it here.
func RegisterAll(r *Registry) {
	r.Register(&Flip{})
	r.Register(&Move{})
	r.Register(&Weaken{})
	r.Register(&Reinforce{})
	r.Register(&Disable{})
	r.Register(&Peek{})
}
