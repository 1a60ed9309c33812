// Package highlight implements the syntax highlighter (§4.5): a pure
// function from (path, content, line range) to styled lines, backed by a
// bounded cache so re-rendering an unchanged preview is free.
package highlight

import (
	"container/list"
	"strconv"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromalexers "github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/cespare/xxhash/v2"
)

// DefaultPreviewLines is the default scope used when no explicit range
// is requested (§4.5 "first 15 lines for preview by default").
const DefaultPreviewLines = 15

// maxCacheEntries is the LRU bound; §4.5 recommends at least 5.
const maxCacheEntries = 64

// ThemeName is the chroma style registered once per process and reused
// for every highlight call.
const ThemeName = "monokai"

// LineRange selects a half-open [Start, End) slice of content lines. A
// zero-value LineRange means the first DefaultPreviewLines lines.
type LineRange struct {
	Start int
	End   int
}

// Segment is one styled run of text within a highlighted line.
type Segment struct {
	Text   string
	Color  string // hex, e.g. "#f92672"; empty means the terminal default
	Bold   bool
	Italic bool
}

// Line is one highlighted source line, already split into styled runs.
type Line struct {
	Number   int
	Segments []Segment
}

// Highlighter holds the process-wide lexer/style registry (initialized
// lazily, once) plus a bounded LRU cache of previously rendered ranges.
type Highlighter struct {
	once  sync.Once
	style *chroma.Style

	mu    sync.Mutex
	cache map[uint64]*list.Element
	order *list.List
}

type cacheEntry struct {
	key   uint64
	lines []Line
}

// New creates a Highlighter with an empty cache.
func New() *Highlighter {
	return &Highlighter{
		cache: make(map[uint64]*list.Element),
		order: list.New(),
	}
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.style = chromastyles.Get(ThemeName)
		if h.style == nil {
			h.style = chromastyles.Fallback
		}
	})
}

// Highlight tokenizes content with the lexer inferred from path's
// extension (falling back to plain text), restricts to lineRange, and
// returns styled lines. Results are cached by (path, range, scoped content).
func (h *Highlighter) Highlight(path, content string, lineRange LineRange) ([]Line, error) {
	h.init()

	lines := splitLines(content)
	start, end := clampRange(lineRange, len(lines))
	scoped := lines[start:end]
	scopedContent := joinLines(scoped)

	key := cacheKey(path, start, end, scopedContent)
	if cached, ok := h.get(key); ok {
		return cached, nil
	}

	lexer := chromalexers.Match(path)
	if lexer == nil {
		lexer = chromalexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, scopedContent)
	if err != nil {
		return nil, err
	}

	result := tokensToLines(iterator.Tokens(), h.style, start)
	h.put(key, result)
	return result, nil
}

func tokensToLines(tokens []chroma.Token, style *chroma.Style, lineOffset int) []Line {
	var out []Line
	cur := Line{Number: lineOffset + 1}
	for _, tok := range tokens {
		entry := style.Get(tok.Type)
		parts := splitKeepingLineBreaks(tok.Value)
		for i, part := range parts {
			if i > 0 {
				out = append(out, cur)
				cur = Line{Number: out[len(out)-1].Number + 1}
			}
			if part == "" {
				continue
			}
			cur.Segments = append(cur.Segments, Segment{
				Text:   part,
				Color:  colorHex(entry.Colour),
				Bold:   entry.Bold == chroma.Yes,
				Italic: entry.Italic == chroma.Yes,
			})
		}
	}
	if len(cur.Segments) > 0 || len(out) == 0 {
		out = append(out, cur)
	}
	return out
}

func colorHex(c chroma.Colour) string {
	if !c.IsSet() {
		return ""
	}
	return c.String()
}

// splitKeepingLineBreaks splits a token's raw value on "\n", keeping the
// distinction between "no newline" (len==1) and a trailing one.
func splitKeepingLineBreaks(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	lines = append(lines, content[start:])
	return lines
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func clampRange(r LineRange, total int) (int, int) {
	start, end := r.Start, r.End
	if start == 0 && end == 0 {
		end = DefaultPreviewLines
	}
	if start < 0 {
		start = 0
	}
	if end <= 0 || end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return start, end
}

func cacheKey(path string, start, end int, content string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(path)
	_, _ = h.WriteString("\x00" + strconv.Itoa(start) + ":" + strconv.Itoa(end) + "\x00")
	_, _ = h.WriteString(content)
	return h.Sum64()
}

func (h *Highlighter) get(key uint64) ([]Line, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.cache[key]
	if !ok {
		return nil, false
	}
	h.order.MoveToFront(el)
	return el.Value.(*cacheEntry).lines, true
}

func (h *Highlighter) put(key uint64, lines []Line) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if el, ok := h.cache[key]; ok {
		el.Value.(*cacheEntry).lines = lines
		h.order.MoveToFront(el)
		return
	}

	el := h.order.PushFront(&cacheEntry{key: key, lines: lines})
	h.cache[key] = el

	for h.order.Len() > maxCacheEntries {
		oldest := h.order.Back()
		if oldest == nil {
			break
		}
		h.order.Remove(oldest)
		delete(h.cache, oldest.Value.(*cacheEntry).key)
	}
}
