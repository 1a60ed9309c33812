// Package fuzzy implements the scoring contract of §4.3: given a catalog
// entry's searchable fields and a query, compute a deterministic match
// score plus the character ranges to highlight. Weights are normative -
// they mirror spec.md exactly rather than any borrowed scoring curve.
package fuzzy

import (
	"sort"
	"strings"
)

// MatchRange is a half-open [Start, End) rune range into the field the
// match was found in, used by the renderer to bold matched characters.
type MatchRange struct {
	Start int
	End   int
}

// Entry is the minimal set of searchable fields a catalog entry exposes
// to the matcher; internal/app builds these from catalog.Entry.
type Entry struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
	Alias       string
	Tags        []string

	// App/Window-only fields (§4.3 "For apps/windows").
	BundleID string
	Title    string
	AppName  string

	// Scriptlet-only field (§4.3 "For scriptlet bodies").
	Body string

	IsBuiltIn bool
}

// Result is what Score returns: whether q matched at all, its additive
// score, and the ranges (into Name) to highlight.
type Result struct {
	Matched bool
	Score   int
	Ranges  []MatchRange
}

// Score computes (matched, score, ranges) for entry against query q,
// applying every additive rule in §4.3 that the entry's fields make
// eligible. An empty query always reports Matched=true with Score=0 (the
// caller is expected to sort by frecency/name for the empty-query case).
func Score(q string, e Entry) Result {
	if q == "" {
		return Result{Matched: true}
	}

	ql := strings.ToLower(q)
	var total int
	var ranges []MatchRange
	matched := false

	// Name tier: exactly one of prefix/substring/subsequence applies,
	// in descending strength - this is also where the teacher's
	// "consecutive match" and "word-start" signals end up folded in,
	// since a prefix match is maximally consecutive and always a word
	// start.
	nameLower := strings.ToLower(e.Name)
	switch {
	case strings.HasPrefix(nameLower, ql):
		total += 100
		ranges = append(ranges, MatchRange{Start: 0, End: len([]rune(q))})
		matched = true
	case strings.Contains(nameLower, ql):
		total += 75
		if idx := strings.Index(nameLower, ql); idx >= 0 {
			start := len([]rune(nameLower[:idx]))
			ranges = append(ranges, MatchRange{Start: start, End: start + len([]rune(q))})
		}
		matched = true
	default:
		if subMatched, subRanges := subsequence(nameLower, ql); subMatched {
			total += 50
			ranges = append(ranges, subRanges...)
			matched = true
		}
	}

	// Description/keywords substring.
	descLower := strings.ToLower(e.Description)
	if strings.Contains(descLower, ql) {
		total += 25
		matched = true
	}
	for _, kw := range e.Keywords {
		kwLower := strings.ToLower(kw)
		if kwLower == ql && e.IsBuiltIn {
			total += 75
			matched = true
		} else if strings.Contains(kwLower, ql) {
			total += 25
			matched = true
		}
	}

	// Alias substring.
	if e.Alias != "" && strings.Contains(strings.ToLower(e.Alias), ql) {
		total += 60
		matched = true
	}

	// App/Window weights: bundle id 10, title 25, app name 40.
	if e.BundleID != "" && strings.Contains(strings.ToLower(e.BundleID), ql) {
		total += 10
		matched = true
	}
	if e.Title != "" && strings.Contains(strings.ToLower(e.Title), ql) {
		total += 25
		matched = true
	}
	if e.AppName != "" && strings.Contains(strings.ToLower(e.AppName), ql) {
		total += 40
		matched = true
	}

	// Scriptlet body: +5 per distinct token hit, capping body-dominance.
	if e.Body != "" {
		bodyLower := strings.ToLower(e.Body)
		seen := make(map[string]bool)
		for _, tok := range strings.Fields(bodyLower) {
			if seen[tok] {
				continue
			}
			if strings.Contains(tok, ql) {
				seen[tok] = true
				total += 5
				matched = true
			}
		}
	}

	if !matched {
		return Result{}
	}
	return Result{Matched: true, Score: total, Ranges: ranges}
}

// subsequence reports whether query occurs as a (not necessarily
// contiguous) subsequence of haystack, and returns the matched rune
// ranges coalesced into runs of consecutive indices.
func subsequence(haystack, query string) (bool, []MatchRange) {
	h := []rune(haystack)
	q := []rune(query)
	if len(q) == 0 {
		return false, nil
	}

	var indices []int
	qi := 0
	for hi := 0; hi < len(h) && qi < len(q); hi++ {
		if h[hi] == q[qi] {
			indices = append(indices, hi)
			qi++
		}
	}
	if qi != len(q) {
		return false, nil
	}

	var ranges []MatchRange
	start := indices[0]
	prev := indices[0]
	for _, idx := range indices[1:] {
		if idx == prev+1 {
			prev = idx
			continue
		}
		ranges = append(ranges, MatchRange{Start: start, End: prev + 1})
		start = idx
		prev = idx
	}
	ranges = append(ranges, MatchRange{Start: start, End: prev + 1})
	return true, ranges
}

// FrecencyLookup resolves a catalog entry ID to its decayed frecency
// score, used for ranking and as the sole ordering key for empty queries.
type FrecencyLookup func(id string) float64

// Search scores every entry against q and returns them ordered per
// §4.3's tie-break rule: higher score first, then higher frecency, then
// alphabetical by name. An empty query skips scoring and sorts purely by
// frecency desc then name asc.
func Search(q string, entries []Entry, frecency FrecencyLookup) []ScoredEntry {
	if frecency == nil {
		frecency = func(string) float64 { return 0 }
	}

	results := make([]ScoredEntry, 0, len(entries))
	for _, e := range entries {
		res := Score(q, e)
		if !res.Matched {
			continue
		}
		results = append(results, ScoredEntry{
			Entry:  e,
			Result: res,
			Frec:   frecency(e.ID),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Result.Score != b.Result.Score {
			return a.Result.Score > b.Result.Score
		}
		if a.Frec != b.Frec {
			return a.Frec > b.Frec
		}
		return strings.ToLower(a.Entry.Name) < strings.ToLower(b.Entry.Name)
	})
	return results
}

// ScoredEntry pairs an Entry with its match result and frecency, the
// shape consumed by the renderer to build a GroupedList.
type ScoredEntry struct {
	Entry  Entry
	Result Result
	Frec   float64
}
