package highlight

import "testing"

func TestHighlightReturnsNonEmptyLines(t *testing.T) {
	h := New()
	lines, err := h.Highlight("main.go", "package main\n\nfunc main() {}\n", LineRange{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(lines) == 0 {
		t.Fatalf("expected at least one line")
	}
	if lines[0].Number != 1 {
		t.Errorf("first line number = %d, want 1", lines[0].Number)
	}
}

func TestHighlightDefaultsToFirst15Lines(t *testing.T) {
	h := New()
	var content string
	for i := 0; i < 30; i++ {
		content += "line\n"
	}
	lines, err := h.Highlight("file.txt", content, LineRange{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(lines) > DefaultPreviewLines {
		t.Errorf("got %d lines, want at most %d", len(lines), DefaultPreviewLines)
	}
}

func TestHighlightUnknownExtensionFallsBackToPlain(t *testing.T) {
	h := New()
	lines, err := h.Highlight("file.unknownext12345", "hello world\n", LineRange{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(lines) == 0 {
		t.Fatalf("expected fallback lexer to still produce lines")
	}
}

func TestHighlightCachesIdenticalCalls(t *testing.T) {
	h := New()
	content := "package main\n"
	first, err := h.Highlight("main.go", content, LineRange{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	second, err := h.Highlight("main.go", content, LineRange{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("cached result differs in length: %d vs %d", len(first), len(second))
	}
}

func TestHighlightEvictsBeyondCacheBound(t *testing.T) {
	h := New()
	for i := 0; i < maxCacheEntries+10; i++ {
		content := string(rune('a'+i%26)) + "\npackage main\n"
		if _, err := h.Highlight("main.go", content, LineRange{}); err != nil {
			t.Fatalf("Highlight: %v", err)
		}
	}
	if h.order.Len() > maxCacheEntries {
		t.Errorf("cache grew to %d entries, want at most %d", h.order.Len(), maxCacheEntries)
	}
}

func TestLineRangeRespected(t *testing.T) {
	h := New()
	content := "one\ntwo\nthree\nfour\nfive\n"
	lines, err := h.Highlight("file.txt", content, LineRange{Start: 1, End: 3})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 for range [1,3)", len(lines))
	}
	if lines[0].Number != 2 {
		t.Errorf("first line number = %d, want 2", lines[0].Number)
	}
}
