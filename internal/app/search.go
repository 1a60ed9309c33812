package app

import (
	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/fuzzy"
	"github.com/scriptkit/launcher/internal/listmodel"
)

// fuzzyEntries adapts every catalog.Entry in snap to fuzzy.Entry, the
// minimal shape internal/fuzzy scores against (§4.3).
func fuzzyEntries(snap *catalog.Snapshot) []fuzzy.Entry {
	if snap == nil {
		return nil
	}
	out := make([]fuzzy.Entry, len(snap.Entries))
	for i, e := range snap.Entries {
		out[i] = fuzzy.Entry{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Keywords:    e.Keywords,
			Alias:       e.Alias,
			Tags:        e.Tags,
			Body:        e.Body,
			IsBuiltIn:   e.Kind == catalog.KindBuiltIn,
		}
	}
	return out
}

// groupedCells builds listmodel.Cell rows from scored search results,
// grouping consecutively by the underlying catalog entry's Kind with a
// header row per group boundary, matching §4.1's "sort by display name
// within kind" grouping.
func groupedCells(snap *catalog.Snapshot, results []fuzzy.ScoredEntry) []listmodel.Cell {
	var cells []listmodel.Cell
	lastKind := catalog.Kind(-1)
	for _, r := range results {
		e, ok := snap.ByID[r.Entry.ID]
		if !ok {
			continue
		}
		if e.Kind != lastKind {
			cells = append(cells, listmodel.Cell{IsHeader: true, Header: groupHeader(e.Kind)})
			lastKind = e.Kind
		}
		cells = append(cells, listmodel.Cell{Item: *e, MatchRanges: matchRanges(r.Result.Ranges)})
	}
	return cells
}

// matchRanges adapts fuzzy's highlight ranges to listmodel's copy,
// keeping internal/listmodel free of an internal/fuzzy import.
func matchRanges(ranges []fuzzy.MatchRange) []listmodel.MatchRange {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]listmodel.MatchRange, len(ranges))
	for i, r := range ranges {
		out[i] = listmodel.MatchRange{Start: r.Start, End: r.End}
	}
	return out
}

func groupHeader(k catalog.Kind) string {
	switch k {
	case catalog.KindScript:
		return "Scripts"
	case catalog.KindScriptlet:
		return "Scriptlets"
	case catalog.KindAgent:
		return "Agents"
	case catalog.KindBuiltIn:
		return "Built-ins"
	default:
		return "Other"
	}
}

// rebuildScriptList re-scores the catalog against the ScriptList's
// current filter and rebuilds its ListState, preserving selection via
// Model.Rebuild's clamp.
func (m *Model) rebuildScriptList() {
	v := m.machine.Current()
	if v.List == nil {
		return
	}
	results := fuzzy.Search(v.List.Filter, fuzzyEntries(m.snapshot), m.frecencyLookup)
	v.List.Rebuild(groupedCells(m.snapshot, results))
}

func (m *Model) frecencyLookup(id string) float64 {
	return m.frecency.GetScore(id)
}
