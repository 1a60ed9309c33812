// Package catalog walks a kit root and produces immutable snapshots of
// every runnable/selectable item: scripts, scriptlet commands, agents,
// and built-ins. Apps/windows/clipboard entries are unioned in by the
// view layer at search time; this package only owns file-backed kinds.
package catalog

import "sort"

// Kind discriminates the entries a Snapshot can hold.
type Kind int

const (
	KindScript Kind = iota
	KindScriptlet
	KindBuiltIn
	KindAgent
)

func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindScriptlet:
		return "scriptlet"
	case KindBuiltIn:
		return "builtin"
	case KindAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// InputKind enumerates the typed inputs a scriptlet command's body
// `{{name}}` placeholders resolve to.
type InputKind int

const (
	InputText InputKind = iota
	InputPassword
	InputDropdown
)

// Input is one `{{name}}` placeholder found in a scriptlet command body.
// The loader does not read the `metadata` block into it, so every Input
// it produces is a plain InputText.
type Input struct {
	Name        string
	Kind        InputKind
	Placeholder string
	Required    bool
}

// Entry is one catalog item: a runnable script, a scriptlet command, a
// built-in, or an agent definition.
type Entry struct {
	ID          string
	Kind        Kind
	Name        string
	Description string
	Icon        string
	Shortcut    string
	Alias       string
	Tags        []string
	Keywords    []string

	// Path is the file this entry was parsed from; empty for built-ins.
	Path string `hash:"ignore"`
	// ContentHash identifies the parsed record's content, independent of
	// mtime. It is computed on every parse; reloads do not compare it.
	ContentHash uint64 `hash:"ignore"`
	ModTime     int64  `hash:"ignore"` // unix seconds, for reload caching

	// Script-only fields.
	Schedule   string
	Cron       string
	Background bool
	Watch      string
	Extra      map[string]string // unrecognized header keys, preserved verbatim

	// Scriptlet-only fields.
	ExtensionID string // parent extension's manifest name
	Language    string // bash/ts/js/open/applescript
	Body        string
	Mode        string // view/no-view/menu-bar
	Inputs      []Input
	Preferences map[string]string
	Disabled    bool

	// Agent-only field.
	SystemPrompt string
}

// ExtensionManifest is a scriptlet file's YAML frontmatter.
type ExtensionManifest struct {
	Name          string            `yaml:"name"`
	Title         string            `yaml:"title"`
	Description   string            `yaml:"description"`
	Icon          string            `yaml:"icon"`
	Author        string            `yaml:"author"`
	License       string            `yaml:"license"`
	Categories    []string          `yaml:"categories"`
	Platforms     []string          `yaml:"platforms"`
	Keywords      []string          `yaml:"keywords"`
	Contributors  []string          `yaml:"contributors"`
	Preferences   map[string]string `yaml:"preferences"`
	MinVersion    string            `yaml:"minVersion"`
}

// Snapshot is an immutable, ordered view of the catalog at a point in
// time. Consumers hold a shared *Snapshot reference; reloads swap it via
// an atomic pointer update, never mutate it in place.
type Snapshot struct {
	Entries []Entry
	ByID    map[string]*Entry
}

// newSnapshot sorts entries by display name within kind (§4.1 "Sort by
// display name within kind") and builds the ID index.
func newSnapshot(entries []Entry) *Snapshot {
	byKind := make(map[Kind][]Entry)
	var order []Kind
	seen := make(map[Kind]bool)
	for _, e := range entries {
		if !seen[e.Kind] {
			seen[e.Kind] = true
			order = append(order, e.Kind)
		}
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}

	sorted := make([]Entry, 0, len(entries))
	for _, k := range order {
		group := byKind[k]
		sortEntriesByName(group)
		sorted = append(sorted, group...)
	}

	index := make(map[string]*Entry, len(sorted))
	out := &Snapshot{Entries: sorted}
	for i := range out.Entries {
		index[out.Entries[i].ID] = &out.Entries[i]
	}
	out.ByID = index
	return out
}

func sortEntriesByName(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
