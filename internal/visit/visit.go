// Package visit is the directory-visit registry: every tracked cd lands
// here, and searches rank the registry with the fuzzy scorer running
// inside SQLite.
package visit

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rnwolfe/hop/internal/fuzzy"
)

var ErrNotTracked = errors.New("path not tracked")

// Visit is one tracked directory.
type Visit struct {
	Path        string
	Count       int
	LastVisited time.Time
}

// FilterValue implements tui.Item.
func (v Visit) FilterValue() string { return v.Path }

// Title implements tui.Item.
func (v Visit) Title() string { return v.Path }

// Description implements tui.Item.
func (v Visit) Description() string {
	if v.Count <= 1 {
		return ""
	}
	return fmt.Sprintf("%d visits", v.Count)
}

// Ranked pairs a visit with its rank for a query. Lower is better.
type Ranked struct {
	Visit
	Rank int64
}

// Store owns visit persistence and search.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record upserts a visit for path, bumping its count and timestamps.
// The path is resolved to an absolute directory; tracking a file or a
// path that does not exist is an error.
func (s *Store) Record(path string) (*Visit, error) {
	abs, err := resolveDir(path)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec(
		`INSERT INTO visits (path, visit_count, last_visited, created_at)
		 VALUES (?, 1, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			visit_count = visit_count + 1,
			last_visited = excluded.last_visited`,
		abs, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}

	return s.Get(abs)
}

// Get returns the visit for an exact (absolute) path.
func (s *Store) Get(path string) (*Visit, error) {
	var v Visit
	var last sql.NullString
	err := s.db.QueryRow(
		`SELECT path, visit_count, last_visited FROM visits WHERE path = ?`,
		path,
	).Scan(&v.Path, &v.Count, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotTracked, path)
		}
		return nil, fmt.Errorf("load visit: %w", err)
	}
	if last.Valid {
		v.LastVisited = parseTime(last.String)
	}
	return &v, nil
}

// Search ranks every tracked path against query and returns up to limit
// results, best first. The ranking runs inside SQLite: fuzzy_score is a
// deterministic scalar function, so the engine evaluates it once per row
// in a single pass. Paths the query cannot match at all are filtered by
// the WHERE clause on the no-match sentinel.
func (s *Store) Search(query string, limit int) ([]Ranked, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT path, visit_count, last_visited, fuzzy_score(?1, path) AS rank
		 FROM visits
		 WHERE fuzzy_score(?1, path) < ?2
		 ORDER BY rank ASC, last_visited DESC
		 LIMIT ?3`,
		query, int64(fuzzy.RankNoMatch), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search visits: %w", err)
	}
	defer rows.Close()

	var ranked []Ranked
	for rows.Next() {
		var r Ranked
		var last sql.NullString
		if err := rows.Scan(&r.Path, &r.Count, &last, &r.Rank); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		if last.Valid {
			r.LastVisited = parseTime(last.String)
		}
		ranked = append(ranked, r)
	}
	return ranked, rows.Err()
}

// Best returns the single best match for query, or ErrNotTracked when
// nothing matches.
func (s *Store) Best(query string) (*Ranked, error) {
	ranked, err := s.Search(query, 1)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, fmt.Errorf("%w: no match for %q", ErrNotTracked, query)
	}
	return &ranked[0], nil
}

// List returns all visits, most recently visited first.
func (s *Store) List() ([]Visit, error) {
	rows, err := s.db.Query(
		`SELECT path, visit_count, last_visited FROM visits
		 ORDER BY last_visited DESC, path ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var last sql.NullString
		if err := rows.Scan(&v.Path, &v.Count, &last); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		if last.Valid {
			v.LastVisited = parseTime(last.String)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Remove drops a path from the registry.
func (s *Store) Remove(path string) error {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	res, err := s.db.Exec(`DELETE FROM visits WHERE path = ?`, abs)
	if err != nil {
		return fmt.Errorf("remove visit: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotTracked, abs)
	}
	return nil
}

// Prune drops every tracked path whose directory no longer exists and
// returns the removed paths.
func (s *Store) Prune() ([]string, error) {
	visits, err := s.List()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, v := range visits {
		info, err := os.Stat(v.Path)
		if err == nil && info.IsDir() {
			continue
		}
		if _, err := s.db.Exec(`DELETE FROM visits WHERE path = ?`, v.Path); err != nil {
			return removed, fmt.Errorf("prune %s: %w", v.Path, err)
		}
		removed = append(removed, v.Path)
	}
	return removed, nil
}

// MarkCurrent records path as the current directory and shifts the old
// current into the "previous" slot, for `hop -`.
func (s *Store) MarkCurrent(path string) error {
	current, _ := s.getKV("hop.current")
	if current != "" && current != path {
		if err := s.setKV("hop.previous", current); err != nil {
			return err
		}
	}
	return s.setKV("hop.current", path)
}

// Previous returns the previously visited directory, or "" when none is
// tracked yet.
func (s *Store) Previous() (string, error) {
	return s.getKV("hop.previous")
}

func (s *Store) getKV(key string) (string, error) {
	var value sql.NullString
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read state %q: %w", key, err)
	}
	if !value.Valid {
		return "", nil
	}
	return value.String, nil
}

func (s *Store) setKV(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("save state %q: %w", key, err)
	}
	return nil
}

func resolveDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve cwd: %w", err)
		}
		path = cwd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func parseTime(raw string) time.Time {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
