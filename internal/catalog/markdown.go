package catalog

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// frontmatterRE isolates a leading "---\n...\n---\n" YAML block.
var frontmatterRE = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n?`)

// varRE matches `{{name}}` placeholders in a command body.
var varRE = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// rawCommand is one `## Title` section parsed out of a scriptlet file,
// before its metadata JSON has been decoded into typed fields.
type rawCommand struct {
	title        string
	metadataJSON string
	language     string
	body         string
}

// commandMetadata is the JSON shape of a command's ```metadata``` block.
type commandMetadata struct {
	Description       string            `json:"description"`
	Subtitle          string            `json:"subtitle"`
	Icon              string            `json:"icon"`
	Keywords          []string          `json:"keywords"`
	Mode              string            `json:"mode"`
	Interval          string            `json:"interval"`
	Cron              string            `json:"cron"`
	Schedule          string            `json:"schedule"`
	Arguments         []string          `json:"arguments"`
	Preferences       map[string]string `json:"preferences"`
	DisabledByDefault bool              `json:"disabledByDefault"`
}

// runnableLanguages is the set of fence tags §4.1 recognizes as a
// command body (as opposed to its `metadata` block).
var runnableLanguages = map[string]bool{
	"bash": true, "sh": true, "ts": true, "typescript": true,
	"js": true, "javascript": true, "open": true, "applescript": true,
}

// splitFrontmatter separates a leading YAML frontmatter block from the
// rest of the document. A file with no frontmatter returns the whole
// input as body.
func splitFrontmatter(src []byte) (yamlBlock, body []byte) {
	m := frontmatterRE.FindSubmatchIndex(src)
	if m == nil {
		return nil, src
	}
	return src[m[2]:m[3]], src[m[1]:]
}

// parseScriptletMarkdown parses a scriptlet/extension file per §4.1: a
// YAML frontmatter manifest followed by one or more `## Title` command
// sections, each with an optional `metadata` fenced block and a runnable
// fenced body.
func parseScriptletMarkdown(src []byte) (ExtensionManifest, []rawCommand, error) {
	yamlBlock, body := splitFrontmatter(src)

	var manifest ExtensionManifest
	if len(yamlBlock) > 0 {
		if err := yaml.Unmarshal(yamlBlock, &manifest); err != nil {
			return manifest, nil, err
		}
	}

	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	var commands []rawCommand
	var current *rawCommand

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				continue
			}
			if current != nil {
				commands = append(commands, *current)
			}
			current = &rawCommand{title: nodeText(node, body)}
		case *ast.FencedCodeBlock:
			if current == nil {
				continue
			}
			lang := string(node.Language(body))
			content := nodeText(node, body)
			switch {
			case lang == "metadata" && current.metadataJSON == "":
				current.metadataJSON = content
			case runnableLanguages[lang] && current.language == "":
				current.language = lang
				current.body = content
			}
		}
	}
	if current != nil {
		commands = append(commands, *current)
	}
	return manifest, commands, nil
}

// nodeText renders a block node's raw source text by concatenating its
// line segments, used for both heading titles and fenced code content.
func nodeText(n ast.Node, source []byte) string {
	lines := n.Lines()
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// extractInputs finds every distinct `{{name}}` placeholder in body and
// returns it as an untyped text Input. Metadata Arguments are not applied:
// every Input keeps Kind InputText, no Placeholder and Required false.
func extractInputs(body string) []Input {
	seen := make(map[string]bool)
	var inputs []Input
	for _, m := range varRE.FindAllStringSubmatch(body, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		inputs = append(inputs, Input{Name: name, Kind: InputText})
	}
	return inputs
}

// decodeCommandMetadata parses a command's `metadata` fenced block. An
// empty block (no metadata present) decodes to the zero value.
func decodeCommandMetadata(raw string) (commandMetadata, error) {
	var meta commandMetadata
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return meta, nil
	}
	err := json.Unmarshal([]byte(raw), &meta)
	return meta, err
}
