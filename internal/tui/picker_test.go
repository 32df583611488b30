package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// testItem implements Item for testing.
type testItem struct {
	name string
	desc string
}

func (t testItem) FilterValue() string { return t.name }
func (t testItem) Title() string       { return t.name }
func (t testItem) Description() string { return t.desc }

func items(names ...string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = testItem{name: n}
	}
	return out
}

func TestNewPicker_Defaults(t *testing.T) {
	p := NewPicker(items("a", "b", "c"))
	if p.prompt != "> " {
		t.Fatalf("default prompt should be '> ', got %q", p.prompt)
	}
	if len(p.filtered) != 3 {
		t.Fatalf("all items should be visible initially, got %d", len(p.filtered))
	}
}

func TestNewPicker_Options(t *testing.T) {
	p := NewPicker(items("a"), WithTitle("Pick"), WithPrompt("? "), WithHeight(5))
	if p.title != "Pick" {
		t.Fatalf("title should be 'Pick', got %q", p.title)
	}
	if p.prompt != "? " {
		t.Fatalf("prompt should be '? ', got %q", p.prompt)
	}
	if p.height != 5 {
		t.Fatalf("height should be 5, got %d", p.height)
	}
}

func TestNewPicker_PrefilledQuery(t *testing.T) {
	p := NewPicker(items("Projects/neovim", "Documents"), WithQuery("neo"))
	if p.query != "neo" {
		t.Fatalf("query should be pre-filled, got %q", p.query)
	}
	if len(p.filtered) != 1 || p.filtered[0].item.Title() != "Projects/neovim" {
		t.Fatalf("pre-filled query should filter immediately, got %v", p.filtered)
	}
}

func TestPicker_FilteringDropsNoMatch(t *testing.T) {
	p := NewPicker(items("Projects/neovim", "Projects/config/nvim", "Downloads"))

	p.query = "nvim"
	p.applyFilter()
	if len(p.filtered) != 2 {
		names := make([]string, len(p.filtered))
		for i, s := range p.filtered {
			names[i] = s.item.Title()
		}
		t.Fatalf("query 'nvim' should match 2 items, got %v", names)
	}

	// Clear query — all items should reappear.
	p.query = ""
	p.applyFilter()
	if len(p.filtered) != 3 {
		t.Fatalf("empty query should show all items, got %d", len(p.filtered))
	}
}

func TestPicker_FilterSortsAscending(t *testing.T) {
	// Lower rank is better: the list must sort ascending.
	p := NewPicker(items(
		"bin/google-cloud-sdk/lib/surface/monitoring/snoozes/",
		"Projects/neo-api-rs/",
		"Projects/neovim/",
	))

	p.query = "neo"
	p.applyFilter()

	if len(p.filtered) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(p.filtered))
	}
	if p.filtered[0].item.Title() != "Projects/neovim/" {
		t.Fatalf("best match should sort first, got %q", p.filtered[0].item.Title())
	}
	for i := 1; i < len(p.filtered); i++ {
		if p.filtered[i-1].rank > p.filtered[i].rank {
			t.Fatal("filtered items should sort ascending by rank")
		}
	}
}

func TestPicker_Navigation(t *testing.T) {
	p := NewPicker(items("a1", "a2", "a3"))
	p.query = "a"
	p.applyFilter()

	down := tea.KeyMsg{Type: tea.KeyDown}
	p.Update(down)
	if p.cursor != 1 {
		t.Fatalf("cursor should move down to 1, got %d", p.cursor)
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	p.Update(up)
	if p.cursor != 0 {
		t.Fatalf("cursor should move back to 0, got %d", p.cursor)
	}

	// Cursor must not go above the first row.
	p.Update(up)
	if p.cursor != 0 {
		t.Fatalf("cursor should stay at 0, got %d", p.cursor)
	}
}

func TestPicker_SelectAndCancel(t *testing.T) {
	p := NewPicker(items("alpha", "beta"))

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	m, _ := p.Update(enter)
	chosen := m.(*Picker).chosen
	if chosen == nil || chosen.Title() != "alpha" {
		t.Fatalf("enter should choose the cursor row, got %v", chosen)
	}

	p2 := NewPicker(items("alpha"))
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	m2, _ := p2.Update(esc)
	if !m2.(*Picker).canceled {
		t.Fatal("esc should cancel")
	}
}

func TestPicker_ViewShowsNoMatches(t *testing.T) {
	p := NewPicker(items("alpha"))
	p.query = "zzz"
	p.applyFilter()

	if !strings.Contains(p.View(), "No matches") {
		t.Fatal("view should say 'No matches' for an unmatched query")
	}
}
