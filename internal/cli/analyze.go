package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsimports-dev/tsimports/internal/engine"
	"github.com/tsimports-dev/tsimports/internal/suggest"
)

// inlineFileName is the virtual filename inline snippets are analyzed under.
const inlineFileName = "temp.ts"

// missingNameCodes is the allow-list of diagnostic codes meaning "unresolved
// identifier": cannot-find-name, its did-you-mean and test-runner variants,
// and the UMD-global case.
var missingNameCodes = map[int]bool{
	2304: true,
	2552: true,
	2582: true,
	2686: true,
}

// compilerProfile is the fixed configuration every analysis runs under.
func compilerProfile() engine.Config {
	return engine.Config{
		Target:                     "es2022",
		Module:                     "esnext",
		Lib:                        []string{"dom", "dom.iterable", "esnext"},
		JSX:                        "react-jsx",
		ModuleResolution:           "bundler",
		Strict:                     true,
		SkipLibCheck:               true,
		NoFallthroughCasesInSwitch: true,
	}
}

func RunAnalyze(cmd *cobra.Command, args []string) error {
	code, err := cmd.Flags().GetString("code")
	if err != nil {
		return fmt.Errorf("failed to read --code flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	var (
		target  string
		display string
		host    engine.Host
	)
	switch {
	case code != "":
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		target = filepath.Join(workDir, inlineFileName)
		display = "raw code"
		host = engine.NewOverlayHost(target, []byte(code), engine.DiskHost{})
	case len(args) == 1:
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", args[0], err)
		}
		target = abs
		display = filepath.Base(abs)
		host = engine.DiskHost{}
	default:
		return errors.New("no file path or inline code provided\nrun 'tsimports --help' for usage")
	}

	service := engine.NewTypeScript(compilerProfile(), host, engine.DefaultIndex())
	return Analyze(cmd.OutOrStdout(), service, target, display, asJSON)
}

// Analyze retrieves semantic diagnostics for the target, keeps the
// unresolved-identifier ones, converts each into a suggestion record, and
// writes the report.
func Analyze(w io.Writer, service engine.Service, target, display string, asJSON bool) error {
	diags, err := service.SemanticDiagnostics(target)
	if err != nil {
		return err
	}

	processor := suggest.NewProcessor(service, suggest.Options{})
	records := make([]suggest.MissingImport, 0)
	for _, diag := range diags {
		if !missingNameCodes[diag.Code] || diag.File == "" {
			continue
		}
		record, err := processor.Process(diag)
		if err != nil {
			return err
		}
		if record != nil {
			records = append(records, *record)
		}
	}
	grouped := suggest.Group(records)

	if asJSON {
		return printResultJSON(w, display, records, grouped)
	}
	printReport(w, display, records, grouped)
	return nil
}

func printReport(w io.Writer, display string, records []suggest.MissingImport, grouped []suggest.GroupedImport) {
	fmt.Fprintf(w, "\nAnalyzing: %s\n\n", display)

	if len(records) == 0 {
		fmt.Fprintln(w, "[TS] No missing imports detected!")
		return
	}

	for _, record := range records {
		if len(record.SuggestedImports) == 0 {
			continue
		}
		if len(record.SuggestedImports) == 1 {
			fmt.Fprintf(w, "[TS] %s import suggestion:\n", record.Symbol)
		} else {
			fmt.Fprintf(w, "[TS] %s import suggestions:\n", record.Symbol)
		}
		for _, statement := range record.SuggestedImports {
			fmt.Fprintf(w, "  %s\n", statement)
		}
	}

	if len(grouped) > 0 {
		fmt.Fprintln(w, "[TS] Grouped suggestions:")
		for _, group := range grouped {
			fmt.Fprintf(w, "  %s\n", suggest.FormatGrouped(group))
		}
	}
}

type analysisResult struct {
	File    string                  `json:"file"`
	Missing []suggest.MissingImport `json:"missing"`
	Grouped []groupedResult         `json:"grouped"`
}

type groupedResult struct {
	Module    string `json:"module"`
	Statement string `json:"statement"`
}

func printResultJSON(w io.Writer, display string, records []suggest.MissingImport, grouped []suggest.GroupedImport) error {
	result := analysisResult{
		File:    display,
		Missing: records,
		Grouped: make([]groupedResult, 0, len(grouped)),
	}
	for _, group := range grouped {
		result.Grouped = append(result.Grouped, groupedResult{
			Module:    group.Module,
			Statement: suggest.FormatGrouped(group),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
