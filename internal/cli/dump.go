package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/report"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [PATTERN...]",
	Short: "Full per-file report (functions, classes, enums)",
	Long: `Emit the complete per-file report: functions, classes and enums
together. Patterns match against every top-level symbol name.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Dump(cmd.Context(), targets, runOptions(args))
	if err != nil {
		return err
	}
	return report.Encode(os.Stdout, result, report.UseJSON(jsonOut))
}
