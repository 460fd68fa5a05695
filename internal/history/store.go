// Package history keeps a local record of completed downloads.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Record is one completed download.
type Record struct {
	ID         string
	URL        string
	Title      string
	Quality    string
	Path       string
	Size       int64
	FinishedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database at %q: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.initTable(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history table: %w", err)
	}
	return s, nil
}

func (s *Store) initTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS downloads (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT,
		quality TEXT,
		path TEXT,
		size INTEGER,
		finished_at TIMESTAMP NOT NULL
	)`)
	return err
}

// Add inserts one completed download.
func (s *Store) Add(rec Record) error {
	query := squirrel.Insert("downloads").
		Columns("id", "url", "title", "quality", "path", "size", "finished_at").
		Values(rec.ID, rec.URL, rec.Title, rec.Quality, rec.Path, rec.Size, rec.FinishedAt).
		RunWith(s.db)
	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to record download %q: %w", rec.URL, err)
	}
	return nil
}

// Recent returns up to limit downloads, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	query := squirrel.Select("id", "url", "title", "quality", "path", "size", "finished_at").
		From("downloads").
		OrderBy("finished_at DESC").
		Limit(uint64(limit)).
		RunWith(s.db)
	rows, err := query.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Quality, &rec.Path, &rec.Size, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
