// Package engine provides the semantic analysis backend for tsimports: it
// produces "cannot find name" diagnostics for a single TypeScript/JavaScript
// file and answers completion queries used to suggest imports.
//
// Diagnostic message phrasings ("Cannot find name 'X'.", "'X' refers to a UMD
// global, ...") are a contract of this package; the suggest package pattern
// matches them.
package engine

// Diagnostic is one semantic issue found in the analyzed file.
type Diagnostic struct {
	Code    int    // numeric classification, e.g. 2304
	Start   int    // byte offset of the offending identifier
	File    string // path the diagnostic belongs to
	Message string
}

// CompletionEntry is a candidate symbol at a source position. Source is the
// originating module (empty when the symbol needs no import), Kind is
// "module" for default-style exports, and HasAction reports whether accepting
// the entry implies adding an import statement.
type CompletionEntry struct {
	Name      string
	Source    string
	Kind      string
	HasAction bool
}

// CompletionOptions mirrors the language-service completion profile.
type CompletionOptions struct {
	IncludeCompletionsForModuleExports    bool
	IncludeCompletionsWithInsertText      bool
	IncludeCompletionsForImportStatements bool
	IncludePackageJSONAutoImports         string
}

// Config is the compiler profile the service analyzes under. Lib selects the
// ambient global tables; JSX "react-jsx" means JSX syntax resolves without an
// in-scope factory identifier.
type Config struct {
	Target                     string
	Module                     string
	Lib                        []string
	JSX                        string
	ModuleResolution           string
	Strict                     bool
	SkipLibCheck               bool
	NoFallthroughCasesInSwitch bool
}

// Service is the collaborator surface the orchestration layer depends on.
type Service interface {
	SemanticDiagnostics(path string) ([]Diagnostic, error)
	CompletionsAt(path string, offset int, opts CompletionOptions) ([]CompletionEntry, error)
}
