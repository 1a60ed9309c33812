// Package render implements the renderer glue (C5): composing L4/L5/L7
// into the current AppView, a pre-computed per-frame color palette,
// terminal cell-run batching, and hover/click invalidation coalescing
// (§4.14). Grounded on the teacher's internal/app/view.go top-level
// View() layout method and internal/styles for the color tokens it
// reads once per frame rather than recomputing per row.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/scriptkit/launcher/internal/styles"
	"github.com/scriptkit/launcher/internal/theme"
)

// Palette is the small, copy-friendly set of rendered styles computed
// once per frame and passed down to row renderers, instead of calling
// lipgloss.NewStyle() per row (§4.14 "do not recompute per row").
type Palette struct {
	Normal       lipgloss.Style
	Selected     lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Border       lipgloss.Style
	BorderActive lipgloss.Style
	Match        lipgloss.Style
}

// BuildPalette resolves the current theme into a Palette. Called once at
// the top of Frame construction, never per row.
func BuildPalette(resolved theme.ResolvedTheme) Palette {
	theme.ApplyResolved(resolved)
	return Palette{
		Normal:       lipgloss.NewStyle().Foreground(styles.TextPrimary),
		Selected:     lipgloss.NewStyle().Foreground(styles.TextPrimary).Background(styles.BgTertiary).Bold(true),
		Header:       lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(styles.TextMuted),
		Border:       lipgloss.NewStyle().Foreground(styles.BorderNormal),
		BorderActive: lipgloss.NewStyle().Foreground(styles.BorderActive),
		Match:        styles.QueryMatch,
	}
}
