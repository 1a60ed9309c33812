package clipboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "clipboard.sqlite"), 3)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreInsertAndList(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Insert(ContentText, "hello"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	entries, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "hello" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestStoreEvictsOldestUnpinnedBeyondCap(t *testing.T) {
	s := tempStore(t) // cap = 3
	for _, v := range []string{"a", "b", "c", "d"} {
		if _, err := s.Insert(ContentText, v); err != nil {
			t.Fatalf("Insert(%s): %v", v, err)
		}
	}
	entries, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected eviction down to cap 3, got %d", len(entries))
	}
	if entries[len(entries)-1].Content == "a" {
		t.Fatal("oldest unpinned entry should have been evicted")
	}
}

func TestStorePinnedEntrySurvivesEviction(t *testing.T) {
	s := tempStore(t)
	pinned, err := s.Insert(ContentText, "keep-me")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.SetPinned(pinned.ID, true); err != nil {
		t.Fatalf("SetPinned: %v", err)
	}
	for _, v := range []string{"b", "c", "d", "e"} {
		if _, err := s.Insert(ContentText, v); err != nil {
			t.Fatalf("Insert(%s): %v", v, err)
		}
	}
	entries, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.ID == pinned.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("pinned entry was evicted")
	}
}

type fakeReader struct {
	texts []string
	i     int
}

func (f *fakeReader) ReadText() (string, error) {
	if f.i >= len(f.texts) {
		return f.texts[len(f.texts)-1], nil
	}
	v := f.texts[f.i]
	f.i++
	return v, nil
}

func TestMonitorDedupesConsecutiveIdenticalPayloads(t *testing.T) {
	s := tempStore(t)
	reader := &fakeReader{texts: []string{"x", "x", "x", "y"}}
	m := NewMonitor(reader, s, 4, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var seen []Entry
	m.Run(ctx, func(e Entry) { seen = append(seen, e) })

	for _, e := range seen {
		if e.Content != "x" && e.Content != "y" {
			t.Fatalf("unexpected entry content %q", e.Content)
		}
	}
	entries, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	distinct := map[string]bool{}
	for _, e := range entries {
		distinct[e.Content] = true
	}
	if len(distinct) > 2 {
		t.Fatalf("expected dedupe to collapse repeats, got distinct=%v", distinct)
	}
}

func TestImageCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newImageCache(2)
	c.Put("a", []byte("A"))
	c.Put("b", []byte("B"))
	c.Put("a", []byte("A")) // touch a, making b the LRU
	c.Put("c", []byte("C")) // evicts b

	if _, ok := c.Get("b"); ok {
		t.Fatal("expected b to be evicted")
	}
	if v, ok := c.Get("a"); !ok || string(v) != "A" {
		t.Fatal("expected a to survive eviction")
	}
	if v, ok := c.Get("c"); !ok || string(v) != "C" {
		t.Fatal("expected c present")
	}
}
