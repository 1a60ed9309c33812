package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/scriptkit/launcher/internal/listmodel"
)

func listWithN(n int) *listmodel.Model {
	m := listmodel.New()
	cells := make([]listmodel.Cell, n)
	for i := range cells {
		cells[i] = listmodel.Cell{Item: i}
	}
	m.Rebuild(cells)
	return m
}

func TestRenderListOnlyVisibleRange(t *testing.T) {
	m := listWithN(100)
	out := RenderList(m, 10, 3, func(c listmodel.Cell, idx int, selected bool) string {
		return "row"
	})
	wantLines := 3
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != wantLines {
		t.Fatalf("got %d lines, want %d", lines, wantLines)
	}
}

func TestRenderListClampsToTotalLength(t *testing.T) {
	m := listWithN(5)
	calls := 0
	RenderList(m, 3, 10, func(c listmodel.Cell, idx int, selected bool) string {
		calls++
		return ""
	})
	if calls != 2 {
		t.Fatalf("expected 2 calls (indices 3,4), got %d", calls)
	}
}

func TestViewportForScrollsToNearestEdgeWhenSelectionLeavesWindow(t *testing.T) {
	if got := ViewportFor(20, 0, 10, 100); got != 11 {
		t.Fatalf("ViewportFor = %d, want 11", got)
	}
	if got := ViewportFor(2, 5, 10, 100); got != 2 {
		t.Fatalf("ViewportFor = %d, want 2", got)
	}
	if got := ViewportFor(5, 5, 10, 100); got != 5 {
		t.Fatalf("ViewportFor = %d, want 5 (unchanged)", got)
	}
}

func TestRenderClipboardImageHalfblockFallbackProducesNonEmptyOutput(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 20, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	out, err := RenderClipboardImage(buf.Bytes(), ImageProtocolHalfblocks, 4, 2)
	if err != nil {
		t.Fatalf("RenderClipboardImage: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty halfblock render")
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatal("expected ANSI escapes in halfblock output")
	}
}

func TestInvalidationCoalescerDropsWithinWindow(t *testing.T) {
	c := NewInvalidationCoalescer()
	t0 := time.Now()
	if !c.Allow(t0) {
		t.Fatal("expected first Allow to succeed")
	}
	if c.Allow(t0.Add(5 * time.Millisecond)) {
		t.Fatal("expected a request within the coalescing window to be dropped")
	}
	if !c.Allow(t0.Add(20 * time.Millisecond)) {
		t.Fatal("expected a request after the window to be allowed")
	}
}
