package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TypeScript implements Service for TypeScript/JavaScript sources using
// tree-sitter. One instance analyzes files sequentially; it is not safe for
// concurrent use (the underlying parsers are stateful).
type TypeScript struct {
	config  Config
	host    Host
	index   *ExportIndex
	globals map[string]bool

	tsParser  *sitter.Parser
	tsxParser *sitter.Parser
	jsParser  *sitter.Parser
}

// NewTypeScript creates a service analyzing under the given compiler profile.
// The index backs auto-import completions; pass DefaultIndex() for the
// built-in package knowledge.
func NewTypeScript(config Config, host Host, index *ExportIndex) *TypeScript {
	ts := sitter.NewParser()
	ts.SetLanguage(typescript.GetLanguage())

	tsxP := sitter.NewParser()
	tsxP.SetLanguage(tsx.GetLanguage())

	js := sitter.NewParser()
	js.SetLanguage(javascript.GetLanguage())

	return &TypeScript{
		config:    config,
		host:      host,
		index:     index,
		globals:   config.ambientGlobals(),
		tsParser:  ts,
		tsxParser: tsxP,
		jsParser:  js,
	}
}

func (t *TypeScript) parserFor(path string) *sitter.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return t.tsParser
	case ".tsx":
		return t.tsxParser
	default:
		return t.jsParser
	}
}

func (t *TypeScript) parse(path string) (*sitter.Tree, []byte, error) {
	content, err := t.host.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tree, err := t.parserFor(path).ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return tree, content, nil
}

// SemanticDiagnostics reports one diagnostic per unresolved identifier
// occurrence: a name referenced in the file that is neither declared in it,
// imported by it, nor an ambient global of the configured libs.
func (t *TypeScript) SemanticDiagnostics(path string) ([]Diagnostic, error) {
	tree, content, err := t.parse(path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	scope := newFileScope(content, t.globals)
	scope.collectDeclared(tree.RootNode())
	scope.collectRefs(tree.RootNode())

	diags := make([]Diagnostic, 0, len(scope.unresolved))
	for _, ref := range scope.unresolved {
		code, message := classify(ref.name, scope.declared, t.globals)
		diags = append(diags, Diagnostic{
			Code:    code,
			Start:   ref.offset,
			File:    path,
			Message: message,
		})
	}
	return diags, nil
}

// CompletionsAt returns auto-import candidates for the identifier at the
// given byte offset. Cross-module entries are only produced when the options
// enable module-export completions, matching the language-service contract.
func (t *TypeScript) CompletionsAt(path string, offset int, opts CompletionOptions) ([]CompletionEntry, error) {
	if !opts.IncludeCompletionsForModuleExports {
		return nil, nil
	}

	tree, content, err := t.parse(path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	name := identifierAt(tree.RootNode(), content, offset)
	if name == "" {
		return nil, nil
	}

	exports := t.index.Lookup(name)
	entries := make([]CompletionEntry, 0, len(exports))
	for _, export := range exports {
		kind := export.Kind
		if export.IsDefault {
			kind = "module"
		}
		entries = append(entries, CompletionEntry{
			Name:      export.Name,
			Source:    export.Source,
			Kind:      kind,
			HasAction: true,
		})
	}
	return entries, nil
}

// identifierAt descends to the smallest named node covering offset and
// returns its text if it is an identifier-like node.
func identifierAt(node *sitter.Node, content []byte, offset int) string {
	if node == nil || offset < int(node.StartByte()) || offset >= int(node.EndByte()) {
		return ""
	}

	for {
		var next *sitter.Node
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if int(child.StartByte()) <= offset && offset < int(child.EndByte()) {
				next = child
				break
			}
		}
		if next == nil {
			break
		}
		node = next
	}

	switch node.Type() {
	case "identifier", "type_identifier", "shorthand_property_identifier",
		"property_identifier", "jsx_identifier":
		return node.Content(content)
	}
	return ""
}

func classify(name string, declared, globals map[string]bool) (int, string) {
	if umdGlobals[name] {
		return 2686, fmt.Sprintf("'%s' refers to a UMD global, but the current file is a module. Consider adding an import instead.", name)
	}
	if testRunnerGlobals[name] {
		return 2582, fmt.Sprintf("Cannot find name '%s'. Do you need to install type definitions for a test runner?", name)
	}
	if suggestion := nearestName(name, declared, globals); suggestion != "" {
		return 2552, fmt.Sprintf("Cannot find name '%s'. Did you mean '%s'?", name, suggestion)
	}
	return 2304, fmt.Sprintf("Cannot find name '%s'.", name)
}

// nearestName finds a declared or ambient name within edit distance 2,
// preferring the closest and breaking ties lexicographically for
// deterministic output.
func nearestName(name string, sets ...map[string]bool) string {
	if len(name) < 4 {
		return ""
	}

	best := ""
	bestDist := 3
	for _, set := range sets {
		for candidate := range set {
			dist := editDistance(name, candidate)
			if dist < bestDist || (dist == bestDist && best != "" && candidate < best) {
				best = candidate
				bestDist = dist
			}
		}
	}
	if bestDist > 2 {
		return ""
	}
	return best
}

func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
