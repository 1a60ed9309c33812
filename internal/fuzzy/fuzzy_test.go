package fuzzy

import "testing"

func TestScoreEmptyQueryMatchesWithZeroScore(t *testing.T) {
	res := Score("", Entry{Name: "Open Terminal"})
	if !res.Matched || res.Score != 0 || res.Ranges != nil {
		t.Fatalf("got %+v, want matched with zero score and nil ranges", res)
	}
}

func TestScoreNoMatch(t *testing.T) {
	res := Score("zzz", Entry{Name: "Open Terminal", Description: "launch a shell"})
	if res.Matched {
		t.Fatalf("got %+v, want no match", res)
	}
}

func TestScorePrefixMatch(t *testing.T) {
	res := Score("open", Entry{Name: "Open Terminal"})
	if !res.Matched || res.Score != 100 {
		t.Fatalf("score = %d, want 100 (prefix)", res.Score)
	}
	if len(res.Ranges) != 1 || res.Ranges[0] != (MatchRange{Start: 0, End: 4}) {
		t.Errorf("ranges = %v, want [{0 4}]", res.Ranges)
	}
}

func TestScoreSubstringElsewhereInName(t *testing.T) {
	res := Score("term", Entry{Name: "Open Terminal"})
	if res.Score != 75 {
		t.Fatalf("score = %d, want 75 (substring elsewhere)", res.Score)
	}
}

func TestScoreSubsequenceMatch(t *testing.T) {
	res := Score("otm", Entry{Name: "Open Terminal"})
	if !res.Matched || res.Score != 50 {
		t.Fatalf("score = %d, want 50 (subsequence)", res.Score)
	}
}

func TestScoreDescriptionSubstringAdds25(t *testing.T) {
	res := Score("shell", Entry{Name: "Open Terminal", Description: "launch a shell session"})
	if res.Score != 25 {
		t.Fatalf("score = %d, want 25 (description only)", res.Score)
	}
}

func TestScoreKeywordExactAdds75(t *testing.T) {
	res := Score("term", Entry{Name: "Open Terminal", Keywords: []string{"term"}, IsBuiltIn: true})
	// name substring-elsewhere (75) + keyword exact (75) = 150
	if res.Score != 150 {
		t.Fatalf("score = %d, want 150 (name substring + keyword exact)", res.Score)
	}
}

func TestScoreKeywordSubstringAdds25(t *testing.T) {
	res := Score("erm", Entry{Name: "Launcher", Keywords: []string{"terminal"}})
	if res.Score != 25 {
		t.Fatalf("score = %d, want 25 (keyword substring)", res.Score)
	}
}

func TestScoreAliasSubstringAdds60(t *testing.T) {
	res := Score("gt", Entry{Name: "Launcher", Alias: "gt"})
	if res.Score != 60 {
		t.Fatalf("score = %d, want 60 (alias)", res.Score)
	}
}

func TestScoreAppWeights(t *testing.T) {
	bundle := Score("com.app", Entry{Name: "xyz", BundleID: "com.app.bundle"})
	if bundle.Score != 10 {
		t.Errorf("bundle id score = %d, want 10", bundle.Score)
	}
	title := Score("editor", Entry{Name: "xyz", Title: "My Editor Window"})
	if title.Score != 25 {
		t.Errorf("title score = %d, want 25", title.Score)
	}
	app := Score("code", Entry{Name: "xyz", AppName: "Visual Studio Code"})
	if app.Score != 40 {
		t.Errorf("app name score = %d, want 40", app.Score)
	}
}

func TestScoreScriptletBodyDistinctTokens(t *testing.T) {
	res := Score("git", Entry{Name: "xyz", Body: "git status\ngit commit\necho done"})
	// "git" appears as a distinct token once -> +5 (repeated occurrences of
	// the same token don't add again).
	if res.Score != 5 {
		t.Fatalf("score = %d, want 5 (one distinct token hit)", res.Score)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	res := Score("OPEN", Entry{Name: "open terminal"})
	if res.Score != 100 {
		t.Fatalf("score = %d, want 100 (case-insensitive prefix)", res.Score)
	}
}

func TestSubsequenceNoMatchWhenOutOfOrder(t *testing.T) {
	matched, _ := subsequence("terminal", "mt")
	if matched {
		t.Errorf("expected no match for out-of-order query")
	}
}

func TestSubsequenceCoalescesConsecutiveRuns(t *testing.T) {
	matched, ranges := subsequence("terminal", "term")
	if !matched {
		t.Fatalf("expected match")
	}
	if len(ranges) != 1 || ranges[0] != (MatchRange{Start: 0, End: 4}) {
		t.Errorf("ranges = %v, want single coalesced run [{0 4}]", ranges)
	}
}

func TestSearchOrdersByScoreThenFrecencyThenName(t *testing.T) {
	entries := []Entry{
		{ID: "b", Name: "Beta Terminal"},
		{ID: "a", Name: "Alpha Terminal"},
		{ID: "c", Name: "Gamma"},
	}
	frec := map[string]float64{"a": 1, "b": 5}
	results := Search("terminal", entries, func(id string) float64 { return frec[id] })

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (gamma should not match)", len(results))
	}
	if results[0].Entry.ID != "b" || results[1].Entry.ID != "a" {
		t.Errorf("order = [%s %s], want [b a] (tie broken by frecency)", results[0].Entry.ID, results[1].Entry.ID)
	}
}

func TestSearchEmptyQuerySortsByFrecencyThenName(t *testing.T) {
	entries := []Entry{
		{ID: "z", Name: "Zulu"},
		{ID: "a", Name: "Alpha"},
		{ID: "m", Name: "Mike"},
	}
	frec := map[string]float64{"a": 2, "m": 2}
	results := Search("", entries, func(id string) float64 { return frec[id] })

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (empty query matches all)", len(results))
	}
	if results[0].Entry.ID != "a" || results[1].Entry.ID != "m" || results[2].Entry.ID != "z" {
		t.Errorf("order = [%s %s %s], want [a m z]", results[0].Entry.ID, results[1].Entry.ID, results[2].Entry.ID)
	}
}
