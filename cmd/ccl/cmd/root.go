package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cclerror "github.com/msto63/ccl/core/error"
	ccllog "github.com/msto63/ccl/core/log"
)

var (
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ccl",
	Short: "CCL - Categorized Configuration Language tooling",
	Long: `ccl parses, inspects, exports, and watches CCL configuration files.

CCL documents hold flat root variables followed by flat -name- categories:

  port = 8080;
  -server-
  host = "localhost";
  tls = false;

Commands:
  check    - Validate CCL files
  show     - Print the parsed document
  export   - Convert to JSON, YAML, or TOML
  watch    - Watch a file and report changes
  browse   - Interactive document browser`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (json, text, console)")
}

// setupLogging configures the default logger from the global flags.
// Each invocation gets a fresh correlation ID so log lines of one run
// can be grouped.
func setupLogging() {
	level := ccllog.LevelWarn
	if verbose {
		level = ccllog.LevelDebug
	}

	format, err := ccllog.ParseFormat(logFormat)
	if err != nil {
		format = ccllog.FormatConsole
	}

	logger := ccllog.NewWithConfig(ccllog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "ccl",
	}).WithCorrelationID(uuid.NewString())

	ccllog.SetDefault(logger)
}

// printError prints an error to stderr, including the error code for
// structured errors
func printError(err error) {
	if cclErr, ok := err.(*cclerror.Error); ok {
		fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", cclErr.Code(), cclErr.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
