package catalog

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// maxHeaderLines bounds how much of a script file is scanned for its
// metadata block (§4.1 "first 20 non-empty lines").
const maxHeaderLines = 20

var knownHeaderKeys = map[string]bool{
	"Name": true, "Description": true, "Shortcut": true, "Alias": true,
	"Icon": true, "Schedule": true, "Cron": true, "Background": true,
	"Watch": true,
}

// headerLineRE matches both recognized forms: a bare structured header
// line ("Name: Foo") and a comment-form line ("// Name: Foo"), each
// optionally prefixed by other single-line comment markers ("#", "--").
var headerLineRE = regexp.MustCompile(`^\s*(?://|#|--)?\s*([A-Za-z][A-Za-z0-9]*)\s*:\s*(.+?)\s*$`)

// parseScriptHeader reads up to maxHeaderLines non-empty lines from r and
// extracts the documented key set into a partially-populated Entry.
// Unknown keys are preserved verbatim in Extra. A file with no header
// lines at all still parses successfully (empty metadata).
func parseScriptHeader(r io.Reader) Entry {
	e := Entry{Kind: KindScript, Extra: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	seen := 0
	for scanner.Scan() && seen < maxHeaderLines {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		seen++

		m := headerLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, val := m[1], m[2]
		applyHeaderField(&e, key, val)
	}
	return e
}

func applyHeaderField(e *Entry, key, val string) {
	switch key {
	case "Name":
		e.Name = val
	case "Description":
		e.Description = val
	case "Shortcut":
		e.Shortcut = val
	case "Alias":
		e.Alias = val
	case "Icon":
		e.Icon = val
	case "Schedule":
		e.Schedule = val
	case "Cron":
		e.Cron = val
	case "Background":
		e.Background = parseBool(val)
	case "Watch":
		e.Watch = val
	default:
		e.Extra[key] = val
	}
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
