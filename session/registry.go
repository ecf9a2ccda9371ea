package session

import (
	"log/slog"
	"sync"

	"card-battle-server/config"
	"card-battle-server/game"
)

// Registry owns every live session keyed by id. A session is created the
// first time either participant references its id and deleted the moment
// its last participant detaches; while alive, the same id always yields
// the same aggregate.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*game.Session

	config    *config.Config
	abilities game.AbilityProvider
	sink      game.ScoreSink
}

// NewRegistry creates a registry that builds sessions with the given
// config, ability provider and optional score sink.
func NewRegistry(cfg *config.Config, abilities game.AbilityProvider, sink game.ScoreSink) *Registry {
	return &Registry{
		sessions:  make(map[string]*game.Session),
		config:    cfg,
		abilities: abilities,
		sink:      sink,
	}
}

// Join returns the session for id, creating it (dealing hands and
// starting its loop) on first reference, and attaches the participant's
// send channel to the given seat. Fails with game.ErrBadSeat or
// game.ErrSeatTaken.
func (r *Registry) Join(id string, seat int, send chan []byte) (*game.Session, error) {
	if seat != 0 && seat != 1 {
		return nil, game.ErrBadSeat
	}

	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = game.NewSession(id, r.config, r.abilities, r.sink)
		r.sessions[id] = s
		go s.Run()
		slog.Info("session created", "tag", "session", "session", id)
	}
	r.mu.Unlock()

	reply := make(chan error, 1)
	select {
	case s.Actions <- game.Action{Type: game.ActionAttach, Seat: seat, Send: send, Err: reply}:
	case <-s.Done:
		return nil, game.ErrSessionClosed
	}
	select {
	case err := <-reply:
		if err != nil {
			return nil, err
		}
	case <-s.Done:
		return nil, game.ErrSessionClosed
	}
	return s, nil
}

// Leave detaches the participant from the session. When no participants
// remain attached, the session loop stops and the aggregate is removed
// from the registry.
func (r *Registry) Leave(id string, seat int) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return
	}

	gone := make(chan int, 1)
	select {
	case s.Actions <- game.Action{Type: game.ActionDetach, Seat: seat, Gone: gone}:
	case <-s.Done:
		r.remove(id, s)
		return
	}
	select {
	case remaining := <-gone:
		if remaining == 0 {
			r.remove(id, s)
			slog.Info("session removed", "tag", "session", "session", id)
		}
	case <-s.Done:
		r.remove(id, s)
	}
}

// remove deletes the entry only if it still maps to the same aggregate,
// so a freshly recreated session under the same id is left alone.
func (r *Registry) remove(id string, s *game.Session) {
	r.mu.Lock()
	if cur, ok := r.sessions[id]; ok && cur == s {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
