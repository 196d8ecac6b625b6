// Package cli wires the pymap commands. Each command runs the engine over
// the target paths and encodes one facet of the report to stdout.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvp-joe/pymap/internal/config"
	"github.com/mvp-joe/pymap/internal/engine"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	jsonOut      bool
	alphabetical bool
	targets      []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pymap",
	Short: "Fast Python codebase analysis for agentic LLMs",
	Long: `pymap reports the structure of a Python codebase - functions, classes,
enums and the module tree - as deterministic YAML or JSON, so that
automated agents can navigate source trees without reading them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pymap.yml, then $HOME/.pymap.yml)")
	rootCmd.PersistentFlags().StringArrayVarP(&targets, "target", "t", []string{"."}, "files or directories to analyze")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "force JSON output (default YAML, or JSON when not a TTY)")
	rootCmd.PersistentFlags().BoolVarP(&alphabetical, "alphabetical", "a", false, "sort symbols alphabetically (default: file order by line)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	viper.BindPFlag("alphabetical", rootCmd.PersistentFlags().Lookup("alphabetical"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yml")
		viper.SetConfigName(".pymap")
	}

	viper.SetEnvPrefix("PYMAP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger builds the stderr logger shared by all commands. Warnings are
// always shown; --verbose enables debug.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// newEngine resolves configuration and builds the analysis engine.
func newEngine() (*engine.Engine, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return engine.New(cfg, newLogger(), newProgressReporter(quiet))
}

// runOptions assembles the per-run options shared by all commands.
func runOptions(patterns []string) engine.Options {
	return engine.Options{
		Patterns:     patterns,
		Alphabetical: viper.GetBool("alphabetical"),
	}
}
