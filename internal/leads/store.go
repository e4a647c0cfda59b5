// Package leads persists contact-form submissions in SQLite so no inquiry is
// lost even when forwarding to the form backend fails.
package leads

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested lead does not exist.
var ErrNotFound = sql.ErrNoRows

// Lead is one received contact-form submission.
type Lead struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Subject      string
	Message      string
	CreatedAt    time.Time
	Forwarded    bool
	ForwardError string
}

// Store wraps a SQLite database holding received leads.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent reads while a submission is being written; busy
	// timeout so writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    subject TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    created_at TEXT NOT NULL,
    forwarded INTEGER NOT NULL DEFAULT 0,
    forward_error TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// Save inserts a lead and returns its assigned ID.
func (s *Store) Save(l Lead) (int64, error) {
	forwarded := 0
	if l.Forwarded {
		forwarded = 1
	}
	created := l.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO leads (name, email, phone, subject, message, created_at, forwarded, forward_error) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Name, l.Email, l.Phone, l.Subject, l.Message, created.Format(time.RFC3339), forwarded, l.ForwardError)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all leads, newest first.
func (s *Store) List() ([]Lead, error) {
	rows, err := s.db.Query(`SELECT id, name, email, phone, subject, message, created_at, forwarded, forward_error FROM leads ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		var created string
		var forwarded int
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Subject, &l.Message, &created, &forwarded, &l.ForwardError); err != nil {
			return nil, err
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339, created)
		l.Forwarded = forwarded == 1
		out = append(out, l)
	}
	return out, rows.Err()
}

// Get returns a single lead by ID.
func (s *Store) Get(id int64) (Lead, error) {
	var l Lead
	var created string
	var forwarded int
	err := s.db.QueryRow(`SELECT id, name, email, phone, subject, message, created_at, forwarded, forward_error FROM leads WHERE id = ?`, id).
		Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Subject, &l.Message, &created, &forwarded, &l.ForwardError)
	if err != nil {
		return Lead{}, err
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, created)
	l.Forwarded = forwarded == 1
	return l, nil
}

// Delete removes a lead by ID. Returns ErrNotFound if no such lead exists.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
