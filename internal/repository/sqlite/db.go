package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sqlite3 "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// Open opens or creates the SQLite database at the given path and
// applies the connection pragmas. The caller owns the returned handle
// and must Close it on shutdown.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return db, nil
}

// EnsureSchema creates the five tables if absent. It is idempotent and
// safe to call on every startup; failure means the store is unusable
// and must abort startup.
func EnsureSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		username TEXT UNIQUE,
		password_hash TEXT
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		date TEXT,
		day_name TEXT,
		exercise TEXT,
		sets INTEGER,
		reps INTEGER,
		weight REAL,
		duration INTEGER,
		intensity TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS nutrition (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		date TEXT,
		meal_type TEXT,
		meal_time TEXT,
		protein REAL,
		carbs REAL,
		fat REAL,
		notes TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS body_measurements (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		date TEXT,
		weight REAL,
		chest REAL,
		waist REAL,
		hips REAL,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS progress_photos (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		date TEXT,
		image BLOB,
		object_key TEXT,
		notes TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	return errors.As(err, &se) && se.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE
}
