package engine

// Export is one symbol the engine knows how to auto-import. Source may be a
// bare module specifier or a node_modules path, exactly as a language service
// would report it; callers are expected to normalize.
type Export struct {
	Name      string
	Source    string
	Kind      string
	IsDefault bool
}

// ExportIndex is the module knowledge backing auto-import completions.
type ExportIndex struct {
	byName map[string][]Export
}

func NewExportIndex(exports ...Export) *ExportIndex {
	idx := &ExportIndex{byName: make(map[string][]Export, len(exports))}
	for _, export := range exports {
		idx.byName[export.Name] = append(idx.byName[export.Name], export)
	}
	return idx
}

// Lookup returns all known exports named name, in registration order.
func (x *ExportIndex) Lookup(name string) []Export {
	return x.byName[name]
}

// DefaultIndex covers the packages the engine ships awareness of. A few
// sources are node_modules paths on purpose: that is how a language service
// reports symbols resolved through dependency directories.
func DefaultIndex() *ExportIndex {
	return NewExportIndex(
		Export{Name: "useState", Source: "react", Kind: "function"},
		Export{Name: "useEffect", Source: "react", Kind: "function"},
		Export{Name: "useCallback", Source: "react", Kind: "function"},
		Export{Name: "useMemo", Source: "react", Kind: "function"},
		Export{Name: "useRef", Source: "react", Kind: "function"},
		Export{Name: "useContext", Source: "react", Kind: "function"},
		Export{Name: "useReducer", Source: "react", Kind: "function"},
		Export{Name: "Component", Source: "react", Kind: "class"},
		Export{Name: "Fragment", Source: "react", Kind: "const"},
		Export{Name: "React", Source: "node_modules/@types/react", Kind: "module", IsDefault: true},
		Export{Name: "createRoot", Source: "react-dom/client", Kind: "function"},
		Export{Name: "ReactDOM", Source: "node_modules/@types/react-dom", Kind: "module", IsDefault: true},
		Export{Name: "z", Source: "zod", Kind: "const"},
		Export{Name: "axios", Source: "node_modules/axios", Kind: "module", IsDefault: true},
		Export{Name: "clsx", Source: "clsx", Kind: "module", IsDefault: true},
		Export{Name: "_", Source: "node_modules/lodash", Kind: "module", IsDefault: true},
		Export{Name: "dayjs", Source: "dayjs", Kind: "module", IsDefault: true},
		Export{Name: "useQuery", Source: "@tanstack/react-query", Kind: "function"},
		Export{Name: "useMutation", Source: "@tanstack/react-query", Kind: "function"},
		Export{Name: "toast", Source: "react-hot-toast", Kind: "module", IsDefault: true},
		Export{Name: "toast", Source: "sonner", Kind: "const"},
		Export{Name: "Button", Source: "node_modules/@mui/material", Kind: "function"},
		Export{Name: "styled", Source: "styled-components", Kind: "module", IsDefault: true},
		Export{Name: "uuid", Source: "node_modules/@types/uuid", Kind: "function"},
	)
}
