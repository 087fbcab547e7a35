package engine

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

type reference struct {
	name   string
	offset int
}

// fileScope resolves names file-wide: any name declared or imported anywhere
// in the file satisfies a reference to it. Block-level shadowing is not
// modeled; for missing-import detection that only suppresses false positives.
type fileScope struct {
	content    []byte
	globals    map[string]bool
	declared   map[string]bool
	unresolved []reference
}

func newFileScope(content []byte, globals map[string]bool) *fileScope {
	return &fileScope{
		content:  content,
		globals:  globals,
		declared: make(map[string]bool),
	}
}

// collectDeclared is the first pass: record every name the file binds, so the
// reference pass can resolve against the full set regardless of order.
func (s *fileScope) collectDeclared(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "function_declaration", "generator_function_declaration", "function_signature",
		"function_expression", "function", "generator_function", "class",
		"class_declaration", "abstract_class_declaration", "interface_declaration",
		"type_alias_declaration", "enum_declaration", "module", "internal_module",
		"type_parameter":
		s.declareName(node.ChildByFieldName("name"))
	case "variable_declarator":
		s.declarePattern(node.ChildByFieldName("name"))
	case "for_in_statement":
		// for (const x of xs) binds via the left field, not a declarator
		s.declarePattern(node.ChildByFieldName("left"))
	case "required_parameter", "optional_parameter":
		s.declarePattern(node.ChildByFieldName("pattern"))
	case "formal_parameters":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			s.declarePattern(node.NamedChild(i))
		}
	case "arrow_function":
		s.declarePattern(node.ChildByFieldName("parameter"))
	case "catch_clause":
		s.declarePattern(node.ChildByFieldName("parameter"))
	case "import_statement":
		s.declareImports(node)
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		s.collectDeclared(node.Child(i))
	}
}

func (s *fileScope) declareName(node *sitter.Node) {
	if node == nil {
		return
	}
	if name := node.Content(s.content); name != "" {
		s.declared[name] = true
	}
}

func (s *fileScope) declarePattern(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "identifier", "type_identifier", "shorthand_property_identifier_pattern":
		s.declareName(node)
	case "required_parameter", "optional_parameter":
		s.declarePattern(node.ChildByFieldName("pattern"))
	case "assignment_pattern", "object_assignment_pattern":
		s.declarePattern(node.ChildByFieldName("left"))
	case "pair_pattern":
		s.declarePattern(node.ChildByFieldName("value"))
	case "object_pattern", "array_pattern", "rest_pattern":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			s.declarePattern(node.NamedChild(i))
		}
	}
}

// declareImports records the local names an import statement binds: default
// imports, namespace imports, and named specifiers (alias wins over name).
func (s *fileScope) declareImports(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		clause := node.NamedChild(i)
		if clause.Type() != "import_clause" {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			item := clause.NamedChild(j)
			switch item.Type() {
			case "identifier":
				s.declareName(item)
			case "namespace_import":
				for k := 0; k < int(item.NamedChildCount()); k++ {
					if ns := item.NamedChild(k); ns.Type() == "identifier" {
						s.declareName(ns)
					}
				}
			case "named_imports":
				for k := 0; k < int(item.NamedChildCount()); k++ {
					spec := item.NamedChild(k)
					if spec.Type() != "import_specifier" {
						continue
					}
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						s.declareName(alias)
					} else {
						s.declareName(spec.ChildByFieldName("name"))
					}
				}
			}
		}
	}
}

// collectRefs is the second pass: walk everything that can mention an
// in-scope name, skipping binding positions and member/property names.
func (s *fileScope) collectRefs(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "import_statement", "comment", "string", "regex", "number",
		"property_identifier", "statement_identifier", "predefined_type",
		"jsx_closing_element":
		return
	case "identifier", "shorthand_property_identifier", "type_identifier":
		s.reference(node)
		return
	case "nested_type_identifier":
		// React.ReactNode: only the qualifier is an in-scope name
		s.collectRefs(node.ChildByFieldName("module"))
		return
	case "export_specifier":
		s.collectRefs(node.ChildByFieldName("name"))
		return
	case "function_declaration", "generator_function_declaration", "function_signature",
		"function_expression", "function", "generator_function", "class",
		"class_declaration", "abstract_class_declaration", "interface_declaration",
		"type_alias_declaration", "enum_declaration", "module", "internal_module",
		"type_parameter", "variable_declarator":
		s.recurseSkipping(node, node.ChildByFieldName("name"))
		return
	case "formal_parameters":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			s.refsInParameter(node.NamedChild(i))
		}
		return
	case "arrow_function":
		s.recurseSkipping(node, node.ChildByFieldName("parameter"))
		return
	case "catch_clause":
		s.recurseSkipping(node, node.ChildByFieldName("parameter"))
		return
	case "jsx_opening_element", "jsx_self_closing_element":
		name := node.ChildByFieldName("name")
		s.refsInJSXName(name)
		s.recurseSkipping(node, name)
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		s.collectRefs(node.Child(i))
	}
}

func (s *fileScope) recurseSkipping(node, skip *sitter.Node) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if sameNode(child, skip) {
			continue
		}
		s.collectRefs(child)
	}
}

// refsInParameter walks a parameter, treating bound names as declarations
// while still collecting references from type annotations and default values.
func (s *fileScope) refsInParameter(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "identifier", "type_identifier", "shorthand_property_identifier_pattern":
		return
	case "required_parameter", "optional_parameter":
		s.refsInParameter(node.ChildByFieldName("pattern"))
		s.collectRefs(node.ChildByFieldName("type"))
		s.collectRefs(node.ChildByFieldName("value"))
	case "assignment_pattern", "object_assignment_pattern":
		s.refsInParameter(node.ChildByFieldName("left"))
		s.collectRefs(node.ChildByFieldName("right"))
	case "pair_pattern":
		s.refsInParameter(node.ChildByFieldName("value"))
	case "object_pattern", "array_pattern", "rest_pattern":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			s.refsInParameter(node.NamedChild(i))
		}
	default:
		s.collectRefs(node)
	}
}

// refsInJSXName handles element names: lowercase plain names are intrinsic
// elements (div, span), capitalized ones reference a component in scope, and
// member names (<motion.div>) reference their leftmost qualifier.
func (s *fileScope) refsInJSXName(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "identifier", "jsx_identifier":
		name := node.Content(s.content)
		r, _ := utf8.DecodeRuneInString(name)
		if name == "" || !unicode.IsUpper(r) {
			return
		}
		s.reference(node)
	default:
		left := node
		for int(left.NamedChildCount()) > 0 {
			left = left.NamedChild(0)
		}
		if left.Type() == "identifier" || left.Type() == "jsx_identifier" {
			s.reference(left)
		}
	}
}

func (s *fileScope) reference(node *sitter.Node) {
	name := node.Content(s.content)
	if name == "" || s.declared[name] || s.globals[name] {
		return
	}
	s.unresolved = append(s.unresolved, reference{name: name, offset: int(node.StartByte())})
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
