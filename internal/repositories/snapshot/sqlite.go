package snapshot

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/clock"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS snapshots (
	slot     TEXT PRIMARY KEY,
	data     TEXT NOT NULL,
	saved_at INTEGER NOT NULL
)`

// SQLiteRepository keeps saves as rows in a SQLite database
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite snapshot repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// NewSQLite opens (creating if needed) the database at Path
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	path := filepath.Clean(strings.TrimSpace(cfg.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create directory for %s", path)
	}

	dsn := path + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create snapshots table")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Save upserts the slot's row
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	snap := *input.Snapshot
	snap.SavedAt = r.clock.Now()

	data, err := Encode(&snap)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (slot, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		input.Slot, string(data), snap.SavedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save slot %s", input.Slot)
	}

	slog.DebugContext(ctx, "snapshot saved",
		"backend", "sqlite",
		"slot", input.Slot)

	return &SaveOutput{SavedAt: snap.SavedAt}, nil
}

// Load reads the slot's row
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE slot = ?`, input.Slot).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, missingError(input.Slot)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to load slot %s", input.Slot)
	}

	snap, err := Decode(input.Slot, []byte(data))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "snapshot loaded",
		"backend", "sqlite",
		"slot", input.Slot)

	return &LoadOutput{Snapshot: snap}, nil
}

var _ Repository = (*SQLiteRepository)(nil)
