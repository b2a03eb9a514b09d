package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// localSchema backs the registration fallback store. The secondary indexes
// mirror the lookups the admin dashboard runs: per event, per email, per
// status and by date.
const localSchema = `
CREATE TABLE IF NOT EXISTS event_registrations (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL,
    event_title TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    registration_date DATETIME NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    confirmation_code TEXT NOT NULL,
    checked_in INTEGER NOT NULL DEFAULT 0,
    checked_in_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_registrations_event ON event_registrations(event_id);
CREATE INDEX IF NOT EXISTS idx_registrations_email ON event_registrations(email);
CREATE INDEX IF NOT EXISTS idx_registrations_status ON event_registrations(status);
CREATE INDEX IF NOT EXISTS idx_registrations_date ON event_registrations(registration_date);
`

// OpenLocal opens (creating if needed) the embedded fallback database under
// dataDir.
func OpenLocal(dataDir string) (*sql.DB, error) {
	if dataDir == "" {
		dataDir = "./data"
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ufa-local.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to local database: %w", err)
	}

	if _, err := db.Exec(localSchema); err != nil {
		return nil, fmt.Errorf("failed to create local schema: %w", err)
	}

	return db, nil
}
