package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/pattern"
	"github.com/mvp-joe/pymap/internal/report"
)

var (
	functionPublic  bool
	functionPrivate bool
)

// functionCmd represents the function command
var functionCmd = &cobra.Command{
	Use:   "function [PATTERN...]",
	Short: "List top-level functions with signatures and locations",
	Long: `List every top-level function of the target files, with its verbatim
signature and 1-indexed line number. Patterns filter by name with
cascading precision: prefix matches beat contains matches, and
case-sensitive matches beat case-insensitive ones.`,
	RunE: runFunction,
}

func init() {
	rootCmd.AddCommand(functionCmd)
	functionCmd.Flags().BoolVar(&functionPublic, "public", false, "show only public functions (not starting with _)")
	functionCmd.Flags().BoolVar(&functionPrivate, "private", false, "show only private functions (starting with _)")
	functionCmd.MarkFlagsMutuallyExclusive("public", "private")
}

func runFunction(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	opts := runOptions(args)
	opts.Visibility = pattern.VisibilityFromFlags(functionPublic, functionPrivate)

	result, err := eng.Functions(cmd.Context(), targets, opts)
	if err != nil {
		return err
	}
	return report.Encode(os.Stdout, result, report.UseJSON(jsonOut))
}
