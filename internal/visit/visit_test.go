package visit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/visit"
)

func openTestStore(t *testing.T) *visit.Store {
	t.Helper()
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return visit.NewStore(db.Conn())
}

// seededStore inserts paths directly; Search never stats the file
// system, so the paths don't need to exist.
func seededStore(t *testing.T, paths ...string) *visit.Store {
	t.Helper()
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, p := range paths {
		if _, err := db.Conn().Exec(
			`INSERT INTO visits (path, visit_count, last_visited, created_at)
			 VALUES (?, 1, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
			p,
		); err != nil {
			t.Fatalf("seed %s: %v", p, err)
		}
	}
	return visit.NewStore(db.Conn())
}

func TestRecordAndGet(t *testing.T) {
	s := openTestStore(t)
	dir := t.TempDir()

	v, err := s.Record(dir)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if v.Count != 1 {
		t.Fatalf("first visit should have count 1, got %d", v.Count)
	}
	if v.LastVisited.IsZero() {
		t.Fatal("last visited should be stamped")
	}

	// Recording again bumps the count, not the row count.
	v, err = s.Record(dir)
	if err != nil {
		t.Fatalf("second Record failed: %v", err)
	}
	if v.Count != 2 {
		t.Fatalf("second visit should have count 2, got %d", v.Count)
	}
}

func TestRecordRejectsFiles(t *testing.T) {
	s := openTestStore(t)

	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Record(file); err == nil {
		t.Fatal("recording a file should fail")
	}
}

func TestRecordRejectsMissingPath(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Record(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("recording a missing path should fail")
	}
}

func TestGetNotTracked(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("/nowhere")
	if !errors.Is(err, visit.ErrNotTracked) {
		t.Fatalf("want ErrNotTracked, got %v", err)
	}
}

func TestSearchRanksBestFirst(t *testing.T) {
	s := seededStore(t,
		"/home/dev/Projects/neovim",
		"/home/dev/Projects/config/nvim",
		"/home/dev/Android/Sdk/platform-tools",
	)

	ranked, err := s.Search("convim", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(ranked) == 0 {
		t.Fatal("expected matches")
	}
	if ranked[0].Path != "/home/dev/Projects/config/nvim" {
		t.Fatalf("wrong best match: %s", ranked[0].Path)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Rank > ranked[i].Rank {
			t.Fatalf("results not sorted ascending: %v", ranked)
		}
	}
}

func TestSearchFiltersNoMatch(t *testing.T) {
	s := seededStore(t, "/home/dev/Projects/neovim")

	ranked, err := s.Search("zzz", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("no-match rows should be filtered, got %v", ranked)
	}
}

func TestSearchHonorsLimit(t *testing.T) {
	s := seededStore(t,
		"/a/dev", "/b/dev", "/c/dev", "/d/dev",
	)

	ranked, err := s.Search("dev", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("want 2 results, got %d", len(ranked))
	}
}

func TestBest(t *testing.T) {
	s := seededStore(t,
		"/home/dev/services",
		"/home/dev/gateways",
	)

	best, err := s.Best("gate")
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best.Path != "/home/dev/gateways" {
		t.Fatalf("wrong best: %s", best.Path)
	}

	if _, err := s.Best("zzz"); !errors.Is(err, visit.ErrNotTracked) {
		t.Fatalf("want ErrNotTracked for unmatched query, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)
	dir := t.TempDir()

	if _, err := s.Record(dir); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(dir); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(dir); !errors.Is(err, visit.ErrNotTracked) {
		t.Fatalf("second Remove should report untracked, got %v", err)
	}
}

func TestPruneDropsMissingDirs(t *testing.T) {
	s := openTestStore(t)

	keep := t.TempDir()
	gone := filepath.Join(t.TempDir(), "doomed")
	if err := os.Mkdir(gone, 0o755); err != nil {
		t.Fatal(err)
	}

	for _, d := range []string{keep, gone} {
		if _, err := s.Record(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Prune()
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if len(removed) != 1 || removed[0] != gone {
		t.Fatalf("want [%s], got %v", gone, removed)
	}

	visits, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(visits) != 1 || visits[0].Path != keep {
		t.Fatalf("surviving visit should be %s, got %v", keep, visits)
	}
}

func TestPreviousTracking(t *testing.T) {
	s := openTestStore(t)

	if prev, err := s.Previous(); err != nil || prev != "" {
		t.Fatalf("fresh store should have no previous, got %q, %v", prev, err)
	}

	if err := s.MarkCurrent("/first"); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkCurrent("/second"); err != nil {
		t.Fatal(err)
	}

	prev, err := s.Previous()
	if err != nil {
		t.Fatal(err)
	}
	if prev != "/first" {
		t.Fatalf("want /first, got %q", prev)
	}

	// Re-marking the same directory must not clobber previous.
	if err := s.MarkCurrent("/second"); err != nil {
		t.Fatal(err)
	}
	prev, err = s.Previous()
	if err != nil {
		t.Fatal(err)
	}
	if prev != "/first" {
		t.Fatalf("previous should survive a repeat visit, got %q", prev)
	}
}
