package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/report"
)

// enumCmd represents the enum command
var enumCmd = &cobra.Command{
	Use:   "enum [PATTERN...]",
	Short: "List enum definitions with their members",
	Long: `List every enum-like class of the target files: classes with a base
whose rendered text contains "Enum". Members are the bare-name
assignments of the enum body, in source order.`,
	RunE: runEnum,
}

func init() {
	rootCmd.AddCommand(enumCmd)
}

func runEnum(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Enums(cmd.Context(), targets, runOptions(args))
	if err != nil {
		return err
	}
	return report.Encode(os.Stdout, result, report.UseJSON(jsonOut))
}
