package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsimports [file]",
		Short: "Suggest missing imports for TypeScript/JavaScript files",
		Long: `tsimports analyzes a single source file (or an inline snippet) and reports
symbols that are referenced but not imported, then suggests plausible import
statements for them, individually and grouped by module.

Examples:
  tsimports src/App.tsx
  tsimports --code 'const [n, setN] = useState(0);'`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         RunAnalyze,
	}
	rootCmd.Flags().StringP("code", "c", "", "Analyze an inline code snippet instead of a file")
	rootCmd.Flags().Bool("json", false, "Print machine-readable analysis results")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tsimports %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
