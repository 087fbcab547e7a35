package engine

import (
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Target:           "es2022",
		Lib:              []string{"dom", "dom.iterable", "esnext"},
		JSX:              "react-jsx",
		ModuleResolution: "bundler",
		Strict:           true,
	}
}

func serviceFor(t *testing.T, path, code string) *TypeScript {
	t.Helper()
	host := NewOverlayHost(path, []byte(code), DiskHost{})
	return NewTypeScript(testConfig(), host, DefaultIndex())
}

func diagNames(diags []Diagnostic) []string {
	names := make([]string, 0, len(diags))
	for _, diag := range diags {
		start := strings.Index(diag.Message, "'")
		end := strings.Index(diag.Message[start+1:], "'")
		names = append(names, diag.Message[start+1:start+1+end])
	}
	return names
}

func TestSemanticDiagnosticsUnresolvedIdentifiers(t *testing.T) {
	code := `import { useCallback } from "react";

export function Counter() {
  const [count, setCount] = useState(0);
  useEffect(() => {
    console.log(count);
  }, [count]);
  const handler = useCallback(() => setCount(count + 1), [count]);
  return handler;
}
`
	service := serviceFor(t, "/virtual/app.ts", code)
	diags, err := service.SemanticDiagnostics("/virtual/app.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}

	names := diagNames(diags)
	if len(names) != 2 || names[0] != "useState" || names[1] != "useEffect" {
		t.Fatalf("expected [useState useEffect] in source order, got %v", names)
	}
	for _, diag := range diags {
		if diag.Code != 2304 {
			t.Fatalf("expected code 2304, got %d (%s)", diag.Code, diag.Message)
		}
		if diag.File != "/virtual/app.ts" {
			t.Fatalf("expected diagnostic file to be set, got %q", diag.File)
		}
	}
	if want := strings.Index(code, "useState"); diags[0].Start != want {
		t.Fatalf("expected useState diagnostic at offset %d, got %d", want, diags[0].Start)
	}
}

func TestSemanticDiagnosticsResolvedNamesAreSilent(t *testing.T) {
	code := `import axios from "axios";
import * as path from "pathlib";
import { z as schema } from "zod";

interface Props {
  name: string;
}

export async function load(props: Props) {
  const url = path.join("a", "b");
  const parsed = schema.string().parse(props.name);
  const res = await axios.get(url);
  return fetch(toURL(res));

  function toURL(value: unknown): string {
    return String(value);
  }
}
`
	service := serviceFor(t, "/virtual/app.ts", code)
	diags, err := service.SemanticDiagnostics("/virtual/app.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagNames(diags))
	}
}

func TestSemanticDiagnosticsUMDGlobal(t *testing.T) {
	service := serviceFor(t, "/virtual/app.ts", `export const ids = _.map([1, 2], (n) => n);`)
	diags, err := service.SemanticDiagnostics("/virtual/app.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != 2686 {
		t.Fatalf("expected one 2686 diagnostic, got %#v", diags)
	}
	if !strings.Contains(diags[0].Message, "refers to a UMD global") {
		t.Fatalf("unexpected message: %q", diags[0].Message)
	}
}

func TestSemanticDiagnosticsTestRunnerGlobal(t *testing.T) {
	service := serviceFor(t, "/virtual/app.test.ts", `describe("math", () => {});`)
	diags, err := service.SemanticDiagnostics("/virtual/app.test.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != 2582 {
		t.Fatalf("expected one 2582 diagnostic, got %#v", diags)
	}
	if !strings.Contains(diags[0].Message, "type definitions for a test runner") {
		t.Fatalf("unexpected message: %q", diags[0].Message)
	}
}

func TestSemanticDiagnosticsNearMiss(t *testing.T) {
	code := `function useStats() {
  return 1;
}

export const total = useStat();
`
	service := serviceFor(t, "/virtual/app.ts", code)
	diags, err := service.SemanticDiagnostics("/virtual/app.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != 2552 {
		t.Fatalf("expected one 2552 diagnostic, got %#v", diags)
	}
	if !strings.Contains(diags[0].Message, "Did you mean 'useStats'?") {
		t.Fatalf("unexpected message: %q", diags[0].Message)
	}
}

func TestSemanticDiagnosticsNearMissAmbientGlobal(t *testing.T) {
	service := serviceFor(t, "/virtual/app.ts", `export const title = documnt.title;`)
	diags, err := service.SemanticDiagnostics("/virtual/app.ts")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != 2552 {
		t.Fatalf("expected one 2552 diagnostic, got %#v", diags)
	}
	if !strings.Contains(diags[0].Message, "Did you mean 'document'?") {
		t.Fatalf("unexpected message: %q", diags[0].Message)
	}
}

func TestSemanticDiagnosticsJSXComponents(t *testing.T) {
	code := `export const App = () => (
  <div>
    <Button label="go" />
    <motion.div animate={{ x: 1 }} />
  </div>
);
`
	service := serviceFor(t, "/virtual/app.tsx", code)
	diags, err := service.SemanticDiagnostics("/virtual/app.tsx")
	if err != nil {
		t.Fatalf("SemanticDiagnostics failed: %v", err)
	}
	names := diagNames(diags)
	if len(names) != 2 || names[0] != "Button" || names[1] != "motion" {
		t.Fatalf("expected [Button motion], got %v", names)
	}
}

func TestCompletionsAtReturnsIndexedExports(t *testing.T) {
	code := `export const hook = useState;`
	service := serviceFor(t, "/virtual/app.ts", code)
	offset := strings.Index(code, "useState")

	entries, err := service.CompletionsAt("/virtual/app.ts", offset, CompletionOptions{
		IncludeCompletionsForModuleExports: true,
	})
	if err != nil {
		t.Fatalf("CompletionsAt failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %#v", entries)
	}
	entry := entries[0]
	if entry.Name != "useState" || entry.Source != "react" || entry.Kind != "function" || !entry.HasAction {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestCompletionsAtWithoutModuleExportsOption(t *testing.T) {
	code := `export const hook = useState;`
	service := serviceFor(t, "/virtual/app.ts", code)

	entries, err := service.CompletionsAt("/virtual/app.ts", strings.Index(code, "useState"), CompletionOptions{})
	if err != nil {
		t.Fatalf("CompletionsAt failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no cross-module entries, got %#v", entries)
	}
}

func TestCompletionsAtDefaultExportKind(t *testing.T) {
	code := `export const client = axios;`
	service := serviceFor(t, "/virtual/app.ts", code)

	entries, err := service.CompletionsAt("/virtual/app.ts", strings.Index(code, "axios"), CompletionOptions{
		IncludeCompletionsForModuleExports: true,
	})
	if err != nil {
		t.Fatalf("CompletionsAt failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != "module" {
		t.Fatalf("expected a module-kind entry for a default export, got %#v", entries)
	}
}
