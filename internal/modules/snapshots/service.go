// Package snapshots stores full game-state saves as msgpack blobs in the
// game database. The autosave job and the save/load API both go through it.
package snapshots

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
)

// ErrNotFound is returned when no snapshot has the requested id.
var ErrNotFound = errors.New("snapshot not found")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    day INTEGER NOT NULL,
    phase INTEGER NOT NULL,
    net_worth REAL NOT NULL,
    created_at TEXT NOT NULL,
    data BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at DESC);
`

// Meta describes a stored snapshot without its payload.
type Meta struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Day       int       `json:"day"`
	Phase     int       `json:"phase"`
	NetWorth  float64   `json:"net_worth"`
	CreatedAt time.Time `json:"created_at"`
}

// Service owns snapshot persistence.
type Service struct {
	db  *database.DB
	log zerolog.Logger
}

// New creates the service and applies its schema.
func New(db *database.DB, log zerolog.Logger) (*Service, error) {
	if err := db.Migrate(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshots schema: %w", err)
	}
	return &Service{
		db:  db,
		log: log.With().Str("component", "snapshots").Logger(),
	}, nil
}

// Save encodes the state and stores it under a fresh id.
func (s *Service) Save(state *domain.GameState, label string) (*Meta, error) {
	blob, err := msgpack.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	meta := &Meta{
		ID:        uuid.NewString(),
		Label:     label,
		Day:       state.Day,
		Phase:     state.GamePhase,
		NetWorth:  state.NetWorth(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.Exec(`
		INSERT INTO snapshots (id, label, day, phase, net_worth, created_at, data)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Label, meta.Day, meta.Phase, meta.NetWorth,
		meta.CreatedAt.Format(time.RFC3339Nano), blob); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.log.Info().Str("id", meta.ID).Str("label", label).Int("day", meta.Day).Msg("snapshot saved")
	return meta, nil
}

// Load decodes the snapshot with the given id.
func (s *Service) Load(id string) (*domain.GameState, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE id = ?", id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state domain.GameState
	if err := msgpack.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

// List returns snapshot metadata, newest first.
func (s *Service) List() ([]Meta, error) {
	rows, err := s.db.Query(`
		SELECT id, label, day, phase, net_worth, created_at
		FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var created string
		if err := rows.Scan(&m.ID, &m.Label, &m.Day, &m.Phase, &m.NetWorth, &created); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Delete removes a snapshot.
func (s *Service) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Prune keeps only the newest keep snapshots with the given label. The
// autosave job uses it to bound retention.
func (s *Service) Prune(label string, keep int) error {
	if keep < 1 {
		keep = 1
	}
	if _, err := s.db.Exec(`
		DELETE FROM snapshots WHERE label = ? AND id NOT IN (
		    SELECT id FROM snapshots WHERE label = ?
		    ORDER BY created_at DESC LIMIT ?
		)`, label, label, keep); err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}
