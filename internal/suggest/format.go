package suggest

import (
	"fmt"
	"strings"
)

// ModuleKind is the completion kind marking a default-style export.
const ModuleKind = "module"

// FormatImport renders one suggested import statement. A "module" kind means
// a default import; every other kind renders as a named import.
func FormatImport(name, source, kind string) string {
	if kind == ModuleKind {
		return fmt.Sprintf("import %s from %q;", name, source)
	}
	return fmt.Sprintf("import { %s } from %q;", name, source)
}

// FormatGrouped renders a combined statement for one module, default names
// first, then the named clauses inside a single brace pair.
func FormatGrouped(group GroupedImport) string {
	parts := make([]string, 0, 2)
	if len(group.DefaultImports) > 0 {
		parts = append(parts, strings.Join(group.DefaultImports, ", "))
	}
	if len(group.NamedImports) > 0 {
		parts = append(parts, "{ "+strings.Join(group.NamedImports, ", ")+" }")
	}
	return fmt.Sprintf("import %s from %q;", strings.Join(parts, ", "), group.Module)
}
