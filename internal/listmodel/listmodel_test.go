package listmodel

import (
	"testing"
	"time"
)

func itemCells(names ...string) []Cell {
	cells := make([]Cell, len(names))
	for i, n := range names {
		cells[i] = Cell{Item: n}
	}
	return cells
}

func TestMoveDownSkipsHeaders(t *testing.T) {
	m := New()
	m.Rebuild([]Cell{
		{IsHeader: true, Header: "Scripts"},
		{Item: "a"},
		{IsHeader: true, Header: "Agents"},
		{Item: "b"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1 (first item)", m.Selected)
	}
	m.MoveDown()
	if m.Selected != 3 {
		t.Fatalf("selection after MoveDown = %d, want 3", m.Selected)
	}
	m.MoveDown()
	if m.Selected != 3 {
		t.Fatalf("MoveDown at boundary should be idempotent, got %d", m.Selected)
	}
}

func TestMoveUpIdempotentAtStart(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b"))
	m.MoveUp()
	if m.Selected != 0 {
		t.Fatalf("selection = %d, want 0", m.Selected)
	}
}

func TestEnsureVisibleNoOpWhenUnchanged(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b", "c"))

	req := m.EnsureVisible()
	if req == nil {
		t.Fatalf("expected a scroll request on first call")
	}
	if req2 := m.EnsureVisible(); req2 != nil {
		t.Fatalf("expected no-op on repeated call with unchanged selection, got %+v", req2)
	}

	m.MoveDown()
	if req3 := m.EnsureVisible(); req3 == nil {
		t.Fatalf("expected a scroll request after selection changed")
	}
}

func TestTriggerActivityFadesOut(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b"))
	m.MoveDown()
	if !m.IsScrollingNow(time.Now()) {
		t.Fatalf("expected IsScrolling immediately after a move")
	}
	later := time.Now().Add(2 * time.Second)
	if m.IsScrollingNow(later) {
		t.Fatalf("expected fade-out after activityFadeWindow elapsed")
	}
}

func TestRebuildClampsSelectionOffHeader(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b", "c"))
	m.Selected = 2

	m.Rebuild([]Cell{
		{Item: "a"},
		{IsHeader: true, Header: "X"},
	})
	if m.Grouped[m.Selected].IsHeader {
		t.Fatalf("selection landed on a header after rebuild")
	}
}

func TestRebuildEmptyResetsSelection(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b"))
	m.Selected = 1
	m.Rebuild(nil)
	if m.Selected != 0 {
		t.Fatalf("selected = %d, want 0 on empty rebuild", m.Selected)
	}
}

func TestSelectedItemReturnsPayload(t *testing.T) {
	m := New()
	m.Rebuild(itemCells("a", "b"))
	m.MoveDown()
	if got := m.SelectedItem(); got != "b" {
		t.Fatalf("SelectedItem() = %v, want b", got)
	}
}
