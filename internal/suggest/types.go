// Package suggest turns unresolved-identifier diagnostics into import
// suggestions: it extracts the offending symbol, formats engine completions
// as import statements, and groups suggestions by source module.
package suggest

// MissingImport is the result for one unique unresolved symbol.
// SuggestedImports holds distinct formatted import statements in discovery
// order, capped by the processor.
type MissingImport struct {
	Symbol           string   `json:"symbol"`
	SuggestedImports []string `json:"suggestedImports"`
}

// GroupedImport combines every suggestion attributed to one module. Named
// clauses and default names keep first-occurrence order.
type GroupedImport struct {
	Module         string   `json:"module"`
	NamedImports   []string `json:"namedImports,omitempty"`
	DefaultImports []string `json:"defaultImports,omitempty"`
}
