package suggest

import "regexp"

var (
	defaultImportRe = regexp.MustCompile(`^import\s+([A-Za-z_$][A-Za-z0-9_$]*)\s+from\s+"([^"]+)";$`)
	namedImportRe   = regexp.MustCompile(`^import\s+\{\s*(.+?)\s*\}\s+from\s+"([^"]+)";$`)
)

// Group merges all suggested import statements by source module, in
// first-encountered module order. Each statement is matched against the
// default-import pattern first, then the named-import pattern; strings
// matching neither are dropped.
//
// A named clause is stored as one opaque string, not split into symbols, so
// two overlapping clauses for the same module (e.g. "a, b" and "b, c") do
// not merge symbol-by-symbol. Deliberate: grouping reproduces the analyzed
// tool's behavior rather than correcting it.
func Group(records []MissingImport) []GroupedImport {
	order := make([]string, 0)
	byModule := make(map[string]*GroupedImport)

	groupFor := func(module string) *GroupedImport {
		if g, ok := byModule[module]; ok {
			return g
		}
		g := &GroupedImport{Module: module}
		byModule[module] = g
		order = append(order, module)
		return g
	}

	for _, record := range records {
		for _, statement := range record.SuggestedImports {
			if m := defaultImportRe.FindStringSubmatch(statement); m != nil {
				g := groupFor(m[2])
				if !containsString(g.DefaultImports, m[1]) {
					g.DefaultImports = append(g.DefaultImports, m[1])
				}
				continue
			}
			if m := namedImportRe.FindStringSubmatch(statement); m != nil {
				g := groupFor(m[2])
				if !containsString(g.NamedImports, m[1]) {
					g.NamedImports = append(g.NamedImports, m[1])
				}
			}
		}
	}

	grouped := make([]GroupedImport, 0, len(order))
	for _, module := range order {
		grouped = append(grouped, *byModule[module])
	}
	return grouped
}
