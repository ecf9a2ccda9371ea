package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-battle-server/ability"
	"card-battle-server/config"
	"card-battle-server/game"
)

func newTestRegistry() *Registry {
	abilities := ability.NewRegistry()
	ability.RegisterAll(abilities)
	return NewRegistry(config.Defaults(), abilities, nil)
}

func TestJoinCreatesOnFirstReference(t *testing.T) {
	r := newTestRegistry()

	s0, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)
	require.NotNil(t, s0)
	assert.Equal(t, "s1", s0.ID)
	assert.Equal(t, 1, r.Len())

	// Same identifier yields the same aggregate.
	s1, err := r.Join("s1", 1, make(chan []byte, 16))
	require.NoError(t, err)
	assert.Same(t, s0, s1)
	assert.Equal(t, 1, r.Len())
}

func TestJoinRejectsOccupiedSeat(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)

	_, err = r.Join("s1", 0, make(chan []byte, 16))
	assert.ErrorIs(t, err, game.ErrSeatTaken)
}

func TestJoinRejectsBadSeat(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Join("s1", 2, make(chan []byte, 16))
	assert.ErrorIs(t, err, game.ErrBadSeat)
	_, err = r.Join("s1", -1, make(chan []byte, 16))
	assert.ErrorIs(t, err, game.ErrBadSeat)
	assert.Equal(t, 0, r.Len())
}

func TestLeaveLastParticipantRemovesSession(t *testing.T) {
	r := newTestRegistry()

	s0, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)
	_, err = r.Join("s1", 1, make(chan []byte, 16))
	require.NoError(t, err)

	r.Leave("s1", 0)
	assert.Equal(t, 1, r.Len(), "session must survive while one participant remains")

	r.Leave("s1", 1)
	assert.Equal(t, 0, r.Len())

	// The next reference yields a fresh aggregate with a fresh deal.
	fresh, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)
	assert.NotSame(t, s0, fresh)
	assert.Len(t, fresh.Players[0].Hand, 6)
}

func TestRejoinVacatedSeat(t *testing.T) {
	r := newTestRegistry()

	s0, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)
	_, err = r.Join("s1", 1, make(chan []byte, 16))
	require.NoError(t, err)

	// Seat 0 drops and reconnects to the same live session.
	r.Leave("s1", 0)
	again, err := r.Join("s1", 0, make(chan []byte, 16))
	require.NoError(t, err)
	assert.Same(t, s0, again)
}
