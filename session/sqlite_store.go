package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wellcoach/core"
	_ "modernc.org/sqlite"
)

var (
	_ core.SnapshotStore  = (*SQLiteStore)(nil)
	_ core.SnapshotLister = (*SQLiteStore)(nil)
)

// ErrNotFound is returned when no snapshot exists under a name.
var ErrNotFound = errors.New("session not found")

// SQLiteStore keeps snapshots in a SQLite database, one row per name.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (and creates if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db, now: time.Now}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		name TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		payload TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_saved ON sessions(saved_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Save upserts snap under name (generated from the clock when empty).
func (s *SQLiteStore) Save(ctx context.Context, name string, snap *core.Snapshot) (string, error) {
	now := s.now()
	if name == "" {
		name = strings.TrimSuffix(DefaultName(now), ".json")
	}
	out := *snap
	if out.SessionID == "" {
		out.SessionID = uuid.NewString()
	}
	out.Normalize()
	payload, err := json.Marshal(&out)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (name, session_id, payload, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			session_id = excluded.session_id,
			payload = excluded.payload,
			saved_at = excluded.saved_at`,
		name, out.SessionID, string(payload), now.Unix())
	if err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return name, nil
}

// Load returns the snapshot stored under name.
func (s *SQLiteStore) Load(ctx context.Context, name string) (*core.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSnapshot([]byte(payload))
}

// List returns stored session names, most recently saved first.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sessions ORDER BY saved_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
