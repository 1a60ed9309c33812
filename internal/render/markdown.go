package render

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
)

// minMarkdownWidth below which MarkdownRenderer falls back to plain word
// wrapping - matching the Div prompt's fallback for narrow windows.
const minMarkdownWidth = 30

// MaxMarkdownCacheEntries bounds MarkdownRenderer's rendered-output cache.
const MaxMarkdownCacheEntries = 100

// MarkdownRenderer renders a Div prompt's HTML/markdown body to styled
// terminal lines via glamour, caching by (content, width) since the
// same div is re-rendered every frame while a prompt is on screen.
type MarkdownRenderer struct {
	mu        sync.RWMutex
	renderer  *glamour.TermRenderer
	lastWidth int
	cache     map[uint64][]string
}

// NewMarkdownRenderer returns a ready MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: make(map[uint64][]string)}
}

// Render renders content at width, returning one string per output line.
func (r *MarkdownRenderer) Render(content string, width int) []string {
	if width < minMarkdownWidth {
		return wrapPlainText(content, width)
	}
	if content == "" {
		return nil
	}

	key := r.cacheKey(content, width)

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := r.getOrCreateRenderer(width)
	if err != nil {
		return wrapPlainText(content, width)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return wrapPlainText(content, width)
	}

	rendered = strings.TrimRight(rendered, "\n\r\t ")
	lines := strings.Split(rendered, "\n")

	if len(r.cache) >= MaxMarkdownCacheEntries {
		r.cache = make(map[uint64][]string)
	}
	r.cache[key] = lines
	return lines
}

func (r *MarkdownRenderer) cacheKey(content string, width int) uint64 {
	h := xxhash.New()
	h.WriteString(content)
	h.Write([]byte{byte(width >> 8), byte(width)})
	return h.Sum64()
}

func (r *MarkdownRenderer) getOrCreateRenderer(width int) (*glamour.TermRenderer, error) {
	if r.renderer != nil && r.lastWidth == width {
		return r.renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderer = renderer
	r.lastWidth = width
	r.cache = make(map[uint64][]string)
	return renderer, nil
}

func wrapPlainText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	text = strings.ReplaceAll(text, "\n", " ")
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= maxWidth {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return lines
}
