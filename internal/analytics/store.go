package analytics

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the analytics SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
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
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ip_hash TEXT NOT NULL,
    path TEXT NOT NULL,
    referrer TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// GetSetting reads a settings value, returning "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting upserts a settings value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// RecordVisit inserts a page view.
func (s *Store) RecordVisit(v Visit) error {
	ts := v.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO visits (ip_hash, path, referrer, timestamp) VALUES (?, ?, ?, ?)`,
		v.IPHash, v.Path, v.Referrer, ts.Format(time.RFC3339))
	return err
}

// GetStats aggregates views over the last days days.
func (s *Store) GetStats(days int) (Stats, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	var stats Stats

	err := s.db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT ip_hash) FROM visits WHERE timestamp >= ?`, cutoff).
		Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return Stats{}, err
	}

	rows, err := s.db.Query(`SELECT path, COUNT(*) AS views FROM visits WHERE timestamp >= ? GROUP BY path ORDER BY views DESC LIMIT 10`, cutoff)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var ps PageStat
		if err := rows.Scan(&ps.Path, &ps.Views); err != nil {
			return Stats{}, err
		}
		stats.TopPages = append(stats.TopPages, ps)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	daily, err := s.db.Query(`SELECT substr(timestamp, 1, 10) AS day, COUNT(*) FROM visits WHERE timestamp >= ? GROUP BY day ORDER BY day`, cutoff)
	if err != nil {
		return Stats{}, err
	}
	defer daily.Close()
	for daily.Next() {
		var dv DailyView
		if err := daily.Scan(&dv.Date, &dv.Views); err != nil {
			return Stats{}, err
		}
		stats.DailyViews = append(stats.DailyViews, dv)
	}
	return stats, daily.Err()
}

// DeleteOlderThan removes visits older than the given number of days.
func (s *Store) DeleteOlderThan(days int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	_, err := s.db.Exec(`DELETE FROM visits WHERE timestamp < ?`, cutoff)
	return err
}

// StartCleanupScheduler deletes visits older than retentionDays every
// interval. The returned func stops the scheduler.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = s.DeleteOlderThan(retentionDays)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
