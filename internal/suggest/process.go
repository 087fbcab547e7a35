package suggest

import (
	"github.com/tsimports-dev/tsimports/internal/engine"
)

// DefaultMaxSuggestions caps the suggestion list per symbol.
const DefaultMaxSuggestions = 5

// completionProfile is the fixed options set every completion query runs
// under: everything needed for auto-import candidates enabled.
var completionProfile = engine.CompletionOptions{
	IncludeCompletionsForModuleExports:    true,
	IncludeCompletionsWithInsertText:      true,
	IncludeCompletionsForImportStatements: true,
	IncludePackageJSONAutoImports:         "auto",
}

// Options configures a Processor. Zero values fall back to the defaults.
type Options struct {
	Fallback       Fallback
	MaxSuggestions int
}

// Processor converts diagnostics into MissingImport records. It carries the
// per-run seen-set, so each symbol is processed at most once; construct a
// fresh Processor per invocation.
type Processor struct {
	service  engine.Service
	fallback Fallback
	max      int
	seen     map[string]bool
}

func NewProcessor(service engine.Service, opts Options) *Processor {
	if opts.Fallback == nil {
		opts.Fallback = DefaultFallback()
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	return &Processor{
		service:  service,
		fallback: opts.Fallback,
		max:      opts.MaxSuggestions,
		seen:     make(map[string]bool),
	}
}

// Process turns one diagnostic into a MissingImport record, or nil when the
// symbol was already handled in this run. Completions qualify when their name
// matches the symbol exactly, they carry an import action, and they name a
// source module; qualifying entries are formatted, deduplicated in stable
// order, and capped. An empty result falls back to the pre-baked table.
func (p *Processor) Process(diag engine.Diagnostic) (*MissingImport, error) {
	symbol := ExtractSymbol(diag.Message)
	if p.seen[symbol] {
		return nil, nil
	}
	p.seen[symbol] = true

	entries, err := p.service.CompletionsAt(diag.File, diag.Start, completionProfile)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name != symbol || !entry.HasAction || entry.Source == "" {
			continue
		}
		statement := FormatImport(entry.Name, CleanSource(entry.Source), entry.Kind)
		if !containsString(suggestions, statement) {
			suggestions = append(suggestions, statement)
		}
	}
	if len(suggestions) > p.max {
		suggestions = suggestions[:p.max]
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, p.fallback[symbol]...)
	}

	return &MissingImport{Symbol: symbol, SuggestedImports: suggestions}, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
