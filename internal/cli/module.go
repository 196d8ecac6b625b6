package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/report"
)

// moduleCmd represents the module command
var moduleCmd = &cobra.Command{
	Use:   "module [PATTERN...]",
	Short: "Show the package/module structure",
	Long: `Show the package/module hierarchy of the target files. Directories
containing Python files become packages, files become modules. The tree
is always ordered alphabetically, independent of --alphabetical.`,
	RunE: runModule,
}

func init() {
	rootCmd.AddCommand(moduleCmd)
}

func runModule(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Modules(cmd.Context(), targets, runOptions(args))
	if err != nil {
		return err
	}
	return report.Encode(os.Stdout, result, report.UseJSON(jsonOut))
}
