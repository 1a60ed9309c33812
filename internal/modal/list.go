package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/scriptkit/launcher/internal/styles"
)

// ListItem represents an item in a list section.
type ListItem struct {
	ID    string // Unique identifier for this item
	Label string // Display text
	Data  any    // Optional associated data
}

// ListOption is a functional option for List sections.
type ListOption func(*listSection)

// listSection renders a scrollable list of items.
type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int // Pointer to allow external control
	maxVisible   int  // Maximum number of visible items
	scrollOffset int  // Current scroll position
	singleFocus  bool // If true, register as single focusable (Tab skips between sections, j/k changes selection)
}

// List creates a list section with selectable items.
// selectedIdx is a pointer to the currently selected index (can be nil for no selection).
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  5,    // Default
		singleFocus: true, // Default: Tab skips between sections, j/k changes selection
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxVisible sets the maximum number of visible items.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

// WithSingleFocus makes the list register as a single focusable unit for Tab navigation.
// When focused, j/k or up/down change selection within the list without Tab-cycling through each item.
// This is useful for lists that are part of a larger form where Tab should skip between sections.
// Note: This is now the default behavior. This option is kept for backward compatibility.
func WithSingleFocus() ListOption {
	return func(s *listSection) {
		s.singleFocus = true
	}
}

// WithPerItemFocus makes the list register each item as a separate focusable for Tab navigation.
// This overrides the default single-focus behavior when you want Tab to cycle through individual items.
func WithPerItemFocus() ListOption {
	return func(s *listSection) {
		s.singleFocus = false
	}
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: styles.Muted.Render("(no items)")}
	}

	// Determine visible range
	visibleCount := min(s.maxVisible, len(s.items))
	selectedIdx := 0
	if s.selectedIdx != nil {
		selectedIdx = *s.selectedIdx
	}

	// Adjust scroll to keep selection visible
	if selectedIdx < s.scrollOffset {
		s.scrollOffset = selectedIdx
	} else if selectedIdx >= s.scrollOffset+visibleCount {
		s.scrollOffset = selectedIdx - visibleCount + 1
	}

	// Clamp scroll offset
	maxScroll := max(0, len(s.items)-visibleCount)
	s.scrollOffset = clamp(s.scrollOffset, 0, maxScroll)

	// In singleFocus mode, check if the list itself has focus
	listHasFocus := s.singleFocus && focusID == s.id

	var sb strings.Builder
	focusables := make([]FocusableInfo, 0, visibleCount)

	for i := 0; i < visibleCount; i++ {
		itemIdx := s.scrollOffset + i
		if itemIdx >= len(s.items) {
			break
		}

		item := s.items[itemIdx]
		isSelected := s.selectedIdx != nil && *s.selectedIdx == itemIdx
		isHovered := item.ID == hoverID

		// Determine style
		var style lipgloss.Style
		if isSelected {
			style = styles.ListItemFocused
		} else if isHovered {
			style = styles.ListItemSelected
		} else {
			style = styles.ListItemNormal
		}

		// Render cursor - show when selected, or when list has focus and this is selected item
		cursor := "  "
		if isSelected {
			if listHasFocus {
				cursor = styles.ListCursor.Render("➤ ") // Filled cursor when list has focus
			} else {
				cursor = styles.ListCursor.Render("› ")
			}
		}

		// Render item
		line := cursor + style.Render(item.Label)
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line)

		// Register focusable - in singleFocus mode, only register the list itself (once)
		if !s.singleFocus {
			focusables = append(focusables, FocusableInfo{
				ID:      item.ID,
				OffsetX: 0,
				OffsetY: i,
				Width:   ansi.StringWidth(line),
				Height:  1,
			})
		}
	}

	// In singleFocus mode, register the list as a single focusable
	if s.singleFocus && len(focusables) == 0 {
		focusables = append(focusables, FocusableInfo{
			ID:      s.id,
			OffsetX: 0,
			OffsetY: 0,
			Width:   contentWidth,
			Height:  visibleCount,
		})
	}

	// Show scroll indicators if needed
	content := sb.String()
	hasTopIndicator := s.scrollOffset > 0
	if hasTopIndicator {
		content = styles.Muted.Render("\u25b2 "+scrollHint(s.scrollOffset)) + "\n" + content
		// Adjust focusable offsets since we prepended a line
		for i := range focusables {
			focusables[i].OffsetY++
		}
	}
	if remaining := len(s.items) - (s.scrollOffset + visibleCount); remaining > 0 {
		content = content + "\n" + styles.Muted.Render("\u25bc "+scrollHint(remaining))
	}

	return RenderedSection{
		Content:    content,
		Focusables: focusables,
	}
}

// scrollHint renders the "N more" suffix for a scroll indicator.
func scrollHint(n int) string {
	if n == 1 {
		return "1 more"
	}
	return strings.TrimSpace(strings.Join([]string{itoa(n), "more"}, " "))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	// Check if the list or any of its items are focused
	isFocused := false
	if s.singleFocus {
		// In singleFocus mode, ONLY check if list ID matches (don't respond to individual item IDs)
		isFocused = focusID == s.id
	} else {
		// Otherwise, check if any item is focused
		for _, item := range s.items {
			if item.ID == focusID {
				isFocused = true
				break
			}
		}
	}
	if !isFocused {
		return "", nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	if s.selectedIdx == nil {
		return "", nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
		return "", nil

	case "down", "j":
		if *s.selectedIdx < len(s.items)-1 {
			*s.selectedIdx++
		}
		return "", nil

	case "enter":
		// Return the selected item's ID as the action
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
		return "", nil

	case "home":
		*s.selectedIdx = 0
		return "", nil

	case "end":
		*s.selectedIdx = len(s.items) - 1
		return "", nil
	}

	return "", nil
}

