package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
)

// Store implements storage.Store using SQLite via Turso/libSQL.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "caldiary.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			date       TEXT PRIMARY KEY,
			content    TEXT NOT NULL CHECK(length(trim(content)) > 0),
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load retrieves the entry for date.
func (s *Store) Load(date day.Date) (string, error) {
	if err := storage.ValidateDate(date); err != nil {
		return "", err
	}
	var content string
	err := s.db.QueryRow("SELECT content FROM entries WHERE date = ?", date.String()).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("%w: querying entry: %v", storage.ErrStorage, err)
	}
	return content, nil
}

// Save upserts the entry for date.
func (s *Store) Save(date day.Date, content string) error {
	if err := storage.Validate(date, content); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO entries (date, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		date.String(),
		content,
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: saving entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// Delete removes the entry for date.
func (s *Store) Delete(date day.Date) error {
	if err := storage.ValidateDate(date); err != nil {
		return err
	}
	result, err := s.db.Exec("DELETE FROM entries WHERE date = ?", date.String())
	if err != nil {
		return fmt.Errorf("%w: deleting entry: %v", storage.ErrStorage, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking rows affected: %v", storage.ErrStorage, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Scan returns every date with an entry, oldest first.
func (s *Store) Scan() ([]day.Date, error) {
	rows, err := s.db.Query("SELECT date FROM entries ORDER BY date ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: listing dates: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	var dates []day.Date
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		date, err := day.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing date: %v", storage.ErrStorage, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", storage.ErrStorage, err)
	}
	return dates, nil
}
