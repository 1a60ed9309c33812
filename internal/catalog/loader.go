package catalog

import (
	"crypto/sha1"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

// Loader walks a kit root and builds Snapshots, caching parsed records by
// (path, mtime) so a reload only re-parses files that actually changed
// (§4.1 "Caching").
type Loader struct {
	mu         sync.Mutex
	cache      map[string]cachedEntry
	groupCache map[string]cachedGroupEntry
	log        *slog.Logger
}

type cachedEntry struct {
	modTime int64
	entry   Entry
}

// cachedGroupEntry caches a scriptlet file's whole command set under one
// synthetic key, since a single file yields a variable-length slice.
type cachedGroupEntry struct {
	modTime int64
	entries []Entry
}

// NewLoader creates a Loader with an empty cache. A nil logger falls
// back to slog.Default().
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		cache:      make(map[string]cachedEntry),
		groupCache: make(map[string]cachedGroupEntry),
		log:        log,
	}
}

// Load walks kitRoot's scripts/, extensions-or-scriptlets/, and agents/
// directories and returns a fresh immutable Snapshot. A single malformed
// file is logged and skipped; it never fails the whole load (§4.1
// "Failure model").
func (l *Loader) Load(kitRoot string) *Snapshot {
	var entries []Entry
	entries = append(entries, l.loadScripts(filepath.Join(kitRoot, "scripts"))...)
	entries = append(entries, l.loadScriptlets(ScriptletDir(kitRoot))...)
	entries = append(entries, l.loadAgents(filepath.Join(kitRoot, "agents"))...)
	return newSnapshot(entries)
}

// ScriptletDir resolves whichever of "extensions/" or "scriptlets/"
// exists under root, preferring "extensions/" when both are present.
func ScriptletDir(root string) string {
	ext := filepath.Join(root, "extensions")
	if info, err := os.Stat(ext); err == nil && info.IsDir() {
		return ext
	}
	return filepath.Join(root, "scriptlets")
}

func (l *Loader) loadScripts(dir string) []Entry {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		info, err := f.Info()
		if err != nil {
			l.log.Warn("catalog: stat failed", "path", path, "error", err)
			continue
		}

		if cached, ok := l.cached(path, info.ModTime().Unix()); ok {
			entries = append(entries, cached)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("catalog: read failed", "path", path, "error", err)
			continue
		}

		e := parseScriptHeader(strings.NewReader(string(data)))
		e.Path = path
		e.ModTime = info.ModTime().Unix()
		if e.Name == "" {
			e.Name = stripExt(f.Name())
		}
		e.ID = "script:" + hashID(path)
		l.finalize(&e)
		l.store(path, e)
		entries = append(entries, e)
	}
	return entries
}

func (l *Loader) loadScriptlets(dir string) []Entry {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		info, err := f.Info()
		if err != nil {
			l.log.Warn("catalog: stat failed", "path", path, "error", err)
			continue
		}

		modKey := path + "#*" // scriptlet files expand to N commands; cache the whole group under one synthetic per-file key
		if cached, ok := l.cachedGroup(modKey, info.ModTime().Unix()); ok {
			entries = append(entries, cached...)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("catalog: read failed", "path", path, "error", err)
			continue
		}

		manifest, rawCommands, err := parseScriptletMarkdown(data)
		if err != nil {
			l.log.Warn("catalog: parse failed", "path", path, "error", err)
			continue
		}

		extID := manifest.Name
		if extID == "" {
			extID = stripExt(f.Name())
		}

		var group []Entry
		for _, rc := range rawCommands {
			meta, err := decodeCommandMetadata(rc.metadataJSON)
			if err != nil {
				l.log.Warn("catalog: command metadata parse failed", "path", path, "command", rc.title, "error", err)
			}

			e := Entry{
				Kind:        KindScriptlet,
				Name:        rc.title,
				Description: meta.Description,
				Icon:        meta.Icon,
				Keywords:    meta.Keywords,
				Path:        path,
				ModTime:     info.ModTime().Unix(),
				ExtensionID: extID,
				Language:    rc.language,
				Body:        rc.body,
				Mode:        meta.Mode,
				Schedule:    meta.Schedule,
				Cron:        meta.Cron,
				Preferences: meta.Preferences,
				Disabled:    meta.DisabledByDefault,
				Inputs:      extractInputs(rc.body),
			}
			e.ID = "scriptlet:" + extID + ":" + hashID(path+"#"+rc.title)
			l.finalize(&e)
			group = append(group, e)
		}

		l.storeGroup(modKey, info.ModTime().Unix(), group)
		entries = append(entries, group...)
	}
	return entries
}

func (l *Loader) loadAgents(dir string) []Entry {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(dir, f.Name())
		info, err := f.Info()
		if err != nil {
			continue
		}

		if cached, ok := l.cached(path, info.ModTime().Unix()); ok {
			entries = append(entries, cached)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("catalog: read failed", "path", path, "error", err)
			continue
		}

		e := Entry{
			Kind:         KindAgent,
			Name:         stripExt(f.Name()),
			Path:         path,
			ModTime:      info.ModTime().Unix(),
			SystemPrompt: string(data),
		}
		e.ID = "agent:" + hashID(path)
		l.finalize(&e)
		l.store(path, e)
		entries = append(entries, e)
	}
	return entries
}

// finalize computes the content hash now that an entry's fields are set.
func (l *Loader) finalize(e *Entry) {
	h, err := hashstructure.Hash(*e, hashstructure.FormatV2, nil)
	if err != nil {
		l.log.Warn("catalog: hash failed", "path", e.Path, "error", err)
		return
	}
	e.ContentHash = h
}

func (l *Loader) cached(path string, modTime int64) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.cache[path]
	if !ok || c.modTime != modTime {
		return Entry{}, false
	}
	return c.entry, true
}

func (l *Loader) store(path string, e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[path] = cachedEntry{modTime: e.ModTime, entry: e}
}

// cachedGroup/storeGroup cache a scriptlet file's whole command set under
// one synthetic key, since a single file yields a variable-length slice.
func (l *Loader) cachedGroup(key string, modTime int64) ([]Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.groupCache[key]
	if !ok || c.modTime != modTime {
		return nil, false
	}
	return c.entries, true
}

func (l *Loader) storeGroup(key string, modTime int64, entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.groupCache[key] = cachedGroupEntry{modTime: modTime, entries: entries}
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func hashID(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
