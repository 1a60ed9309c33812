// Package listmodel implements the virtualized list's pure state and
// operations (§4.4): no rendering, just selection/scroll/grouping, so it
// can be unit-tested without a terminal.
package listmodel

import "time"

// activityFadeWindow is how long after the last scroll/move the list is
// still considered "scrolling" (used to fade a scrollbar back out).
const activityFadeWindow = 1000 * time.Millisecond

// Cell is one row of a grouped list: either a selectable Item or a
// non-selectable SectionHeader.
type Cell struct {
	IsHeader bool
	Item     interface{} // opaque payload (e.g. fuzzy.ScoredEntry); nil for headers
	Header   string

	// MatchRanges carries L3's fuzzy.MatchRange highlight indices (into
	// the item's display name) through to the row renderer, so a query
	// like "sc" can bold the matched characters instead of just ordering
	// by score. Empty for non-fuzzy rows (headers, picker/clipboard rows).
	MatchRanges []MatchRange
}

// MatchRange is a half-open [Start, End) rune range to highlight in a
// cell's display name; mirrors fuzzy.MatchRange so listmodel stays
// independent of internal/fuzzy.
type MatchRange struct {
	Start int
	End   int
}

// ScrollRequest describes a requested scroll-to-item, emitted by
// EnsureVisible for the renderer/viewport to honor.
type ScrollRequest struct {
	Index    int
	Strategy Strategy
}

// Strategy is a scroll-to-item positioning strategy.
type Strategy int

const (
	StrategyNearest Strategy = iota
	StrategyTop
	StrategyCenter
)

// Model is the list's pure state. Zero value is a usable empty list.
type Model struct {
	Filter       string
	Selected     int
	LastScrolled *int
	Grouped      []Cell
	IsScrolling  bool
	lastScrollAt time.Time
}

// New returns an empty Model.
func New() *Model {
	return &Model{Selected: 0}
}

// Rebuild replaces the grouped cells atomically and clamps Selected to
// remain on a non-header Item (§4.4 "rebuild(groups)").
func (m *Model) Rebuild(groups []Cell) {
	m.Grouped = groups
	m.clampSelected()
}

// MoveUp steps the selection back by one, skipping SectionHeader cells;
// it's a no-op at the first Item.
func (m *Model) MoveUp() {
	m.move(-1)
}

// MoveDown steps the selection forward by one, skipping SectionHeader
// cells; it's a no-op at the last Item.
func (m *Model) MoveDown() {
	m.move(1)
}

func (m *Model) move(delta int) {
	if len(m.Grouped) == 0 {
		return
	}
	idx := m.Selected
	for {
		next := idx + delta
		if next < 0 || next >= len(m.Grouped) {
			break // boundary reached: idempotent, selection unchanged
		}
		idx = next
		if !m.Grouped[idx].IsHeader {
			m.Selected = idx
			m.triggerActivity()
			return
		}
	}
}

// EnsureVisible requests a scroll-to-item only when Selected has moved
// since the last scroll (§4.4 "ensure_visible()").
func (m *Model) EnsureVisible() *ScrollRequest {
	if m.LastScrolled != nil && *m.LastScrolled == m.Selected {
		return nil
	}
	sel := m.Selected
	m.LastScrolled = &sel
	return &ScrollRequest{Index: m.Selected, Strategy: StrategyNearest}
}

// triggerActivity marks the list as actively scrolling; callers should
// poll IsScrollingNow() (or rely on a timer) to detect the fade-out.
func (m *Model) triggerActivity() {
	m.IsScrolling = true
	m.lastScrollAt = time.Now()
}

// TriggerActivity is the exported form, used when a caller scrolls the
// list directly (mouse wheel) without going through MoveUp/MoveDown.
func (m *Model) TriggerActivity() {
	m.triggerActivity()
}

// IsScrollingNow reports whether the list is still within its
// post-activity fade window, given the current time.
func (m *Model) IsScrollingNow(now time.Time) bool {
	if !m.IsScrolling {
		return false
	}
	if now.Sub(m.lastScrollAt) >= activityFadeWindow {
		m.IsScrolling = false
		return false
	}
	return true
}

// SelectedItem returns the payload of the selected cell, or nil if the
// list is empty or the selection somehow lands on a header.
func (m *Model) SelectedItem() interface{} {
	if m.Selected < 0 || m.Selected >= len(m.Grouped) {
		return nil
	}
	cell := m.Grouped[m.Selected]
	if cell.IsHeader {
		return nil
	}
	return cell.Item
}

// clampSelected moves Selected onto the nearest non-header Item after a
// Rebuild, preserving the invariant that Selected always points at an
// Item when the list contains at least one.
func (m *Model) clampSelected() {
	if len(m.Grouped) == 0 {
		m.Selected = 0
		m.LastScrolled = nil
		return
	}
	if m.Selected >= len(m.Grouped) {
		m.Selected = len(m.Grouped) - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
	if !m.Grouped[m.Selected].IsHeader {
		return
	}
	// Scan forward first, then backward, for the nearest Item.
	for i := m.Selected; i < len(m.Grouped); i++ {
		if !m.Grouped[i].IsHeader {
			m.Selected = i
			return
		}
	}
	for i := m.Selected; i >= 0; i-- {
		if !m.Grouped[i].IsHeader {
			m.Selected = i
			return
		}
	}
	// Every cell is a header (degenerate); leave Selected as-is.
}
