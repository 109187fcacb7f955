package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// driverName is the database/sql name registered by go-sqlite3.
const driverName = "sqlite3"

// connParams are go-sqlite3 DSN parameters. The driver applies them to
// every new connection, so a reconnect never loses foreign key checks.
var connParams = url.Values{
	"_journal_mode": {"WAL"},
	"_synchronous":  {"NORMAL"},
	"_busy_timeout": {"5000"},
	"_foreign_keys": {"1"},
}

// migration upgrades the schema to version.
type migration struct {
	version int
	name    string
	stmt    string
}

// migrations run in order against PRAGMA user_version.
// Version 0 is the bare schema.sql.
var migrations = []migration{
	{1, "index runs by digest", `CREATE INDEX IF NOT EXISTS idx_runs_digest ON runs(digest)`},
}

// currentSchemaVersion is the user_version after all migrations.
var currentSchemaVersion = migrations[len(migrations)-1].version

// Store archives completed mining runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the archive at path and brings its schema up to date.
// Opening an existing archive again is a no-op.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path+"?"+connParams.Encode())
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// One writer at a time; a single connection also keeps WAL reads
	// consistent with the last write.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database %s: %w", path, err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare schema in %s: %w", path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the connection. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrate applies schema.sql and every migration newer than user_version.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	version, err := schemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		if _, err := db.Exec(m.stmt); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			return fmt.Errorf("migration %d: set user_version: %w", m.version, err)
		}
	}
	return nil
}

func schemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

// pragma reads a pragma value as text. Used by tests.
func (s *Store) pragma(name string) (string, error) {
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return "", fmt.Errorf("read pragma %s: %w", name, err)
	}
	return value, nil
}
