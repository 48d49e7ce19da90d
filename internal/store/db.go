// Package store provides SQLite-backed persistence: a piece-template
// source loading catalog definitions from tables, and saves of growth
// session results for later inspection.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/cityforge/internal/growth"
)

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		category INTEGER NOT NULL,
		weight REAL NOT NULL,
		biome_min INTEGER NOT NULL,
		biome_max INTEGER NOT NULL,
		occupants INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attachments (
		template_id TEXT NOT NULL,
		ord INTEGER NOT NULL,
		px REAL NOT NULL, py REAL NOT NULL, pz REAL NOT NULL,
		dx REAL NOT NULL, dy REAL NOT NULL, dz REAL NOT NULL,
		types INTEGER NOT NULL,
		sizes INTEGER NOT NULL,
		plug INTEGER NOT NULL,
		socket INTEGER NOT NULL,
		rotation INTEGER NOT NULL,
		skip_overlap INTEGER NOT NULL,
		PRIMARY KEY (template_id, ord)
	);

	CREATE TABLE IF NOT EXISTS parts (
		template_id TEXT NOT NULL,
		ord INTEGER NOT NULL,
		min_x REAL NOT NULL, min_y REAL NOT NULL, min_z REAL NOT NULL,
		max_x REAL NOT NULL, max_y REAL NOT NULL, max_z REAL NOT NULL,
		PRIMARY KEY (template_id, ord)
	);

	CREATE TABLE IF NOT EXISTS placements (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL,
		yaw REAL NOT NULL,
		depth INTEGER NOT NULL,
		parent_index INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		stats_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attachments_template ON attachments(template_id);
	CREATE INDEX IF NOT EXISTS idx_parts_template ON parts(template_id);
	CREATE INDEX IF NOT EXISTS idx_placements_template ON placements(template_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SavePlacements writes a session's accepted instances (full replace).
func (db *DB) SavePlacements(placed []*growth.PlacedInstance) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM placements"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO placements
		(id, template_id, x, y, z, yaw, depth, parent_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range placed {
		_, err := stmt.Exec(
			p.ID.String(), p.Template.ID,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Yaw, p.Depth, p.ParentIndex,
		)
		if err != nil {
			return fmt.Errorf("insert placement %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// PlacementRow is one persisted placement.
type PlacementRow struct {
	ID          string  `db:"id"`
	TemplateID  string  `db:"template_id"`
	X           float64 `db:"x"`
	Y           float64 `db:"y"`
	Z           float64 `db:"z"`
	Yaw         float64 `db:"yaw"`
	Depth       int     `db:"depth"`
	ParentIndex int     `db:"parent_index"`
}

// LoadPlacements returns every persisted placement in insertion order.
func (db *DB) LoadPlacements() ([]PlacementRow, error) {
	var rows []PlacementRow
	err := db.conn.Select(&rows, "SELECT * FROM placements ORDER BY rowid")
	return rows, err
}

// SaveStats appends a session's statistics as a new sessions row.
func (db *DB) SaveStats(stats growth.Stats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = db.conn.Exec("INSERT INTO sessions (stats_json) VALUES (?)", string(blob))
	if err != nil {
		return err
	}
	slog.Info("session statistics saved", "blocks_placed", stats.BlocksPlaced)
	return nil
}

// LastStats returns the most recently saved session statistics.
func (db *DB) LastStats() (growth.Stats, error) {
	var blob string
	if err := db.conn.Get(&blob, "SELECT stats_json FROM sessions ORDER BY id DESC LIMIT 1"); err != nil {
		return growth.Stats{}, err
	}
	var stats growth.Stats
	if err := json.Unmarshal([]byte(blob), &stats); err != nil {
		return growth.Stats{}, fmt.Errorf("unmarshal stats: %w", err)
	}
	return stats, nil
}
