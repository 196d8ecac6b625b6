package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pymap/internal/pattern"
	"github.com/mvp-joe/pymap/internal/report"
)

var (
	classPublic  bool
	classPrivate bool
)

// classCmd represents the class command
var classCmd = &cobra.Command{
	Use:   "class [PATTERN...]",
	Short: "List classes with bases, fields and methods",
	Long: `List every top-level class of the target files with its base classes,
annotated fields and methods. Classes whose base list marks them as
enum-like are reported by the enum command instead, never here.

Visibility flags filter fields and methods; the class itself is always
kept, even when every member is filtered out.`,
	RunE: runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)
	classCmd.Flags().BoolVar(&classPublic, "public", false, "show only public fields/methods (not starting with _)")
	classCmd.Flags().BoolVar(&classPrivate, "private", false, "show only private fields/methods (starting with _)")
	classCmd.MarkFlagsMutuallyExclusive("public", "private")
}

func runClass(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	opts := runOptions(args)
	opts.Visibility = pattern.VisibilityFromFlags(classPublic, classPrivate)

	result, err := eng.Classes(cmd.Context(), targets, opts)
	if err != nil {
		return err
	}
	return report.Encode(os.Stdout, result, report.UseJSON(jsonOut))
}
