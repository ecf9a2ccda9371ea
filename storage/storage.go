package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS score_awards (
	id UUID PRIMARY KEY,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	session_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	by_seat SMALLINT,
	to_seat SMALLINT NOT NULL,
	points INT NOT NULL,
	board_cards INT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_score_awards_session ON score_awards(session_id);
CREATE INDEX IF NOT EXISTS idx_score_awards_recorded_at ON score_awards(recorded_at DESC);
`

const (
	kindWithdraw    = "withdraw"
	kindLaneControl = "lane_control"
)

// writeTimeout bounds fire-and-forget writes from the session loop.
const writeTimeout = 5 * time.Second

// Store persists per-session score awards in Postgres. It implements
// game.ScoreSink. Optional: when no DATABASE_URL is configured the server
// runs without one.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to Postgres and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// RecordWithdraw records a withdraw forfeit award. Fire-and-forget:
// failures are logged, never surfaced to the session loop.
func (s *Store) RecordWithdraw(sessionID string, bySeat, toSeat, points, boardCards int) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO score_awards (id, session_id, kind, by_seat, to_seat, points, board_cards)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), sessionID, kindWithdraw, bySeat, toSeat, points, boardCards)
	if err != nil {
		slog.Error("recording withdraw award", "tag", "storage", "session", sessionID, "err", err)
	}
}

// RecordControlAward records a lane-control majority award.
func (s *Store) RecordControlAward(sessionID string, toSeat, points, boardCards int) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO score_awards (id, session_id, kind, to_seat, points, board_cards)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), sessionID, kindLaneControl, toSeat, points, boardCards)
	if err != nil {
		slog.Error("recording control award", "tag", "storage", "session", sessionID, "err", err)
	}
}

// ScoreAward is one recorded award, as returned by the history API.
type ScoreAward struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	SessionID  string    `json:"session_id"`
	Kind       string    `json:"kind"`
	BySeat     *int      `json:"by_seat,omitempty"`
	ToSeat     int       `json:"to_seat"`
	Points     int       `json:"points"`
	BoardCards int       `json:"board_cards"`
}

// ListBySession returns the recorded awards for a session, oldest first.
func (s *Store) ListBySession(ctx context.Context, sessionID string) ([]ScoreAward, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, recorded_at, session_id, kind, by_seat, to_seat, points, board_cards
		 FROM score_awards WHERE session_id = $1 ORDER BY recorded_at ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying score awards: %w", err)
	}
	defer rows.Close()

	awards := []ScoreAward{}
	for rows.Next() {
		var a ScoreAward
		if err := rows.Scan(&a.ID, &a.RecordedAt, &a.SessionID, &a.Kind, &a.BySeat, &a.ToSeat, &a.Points, &a.BoardCards); err != nil {
			return nil, fmt.Errorf("scanning score award: %w", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading score awards: %w", err)
	}
	return awards, nil
}
