package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	logLevel   string
	logFormat  string
	logFile    string

	// logger is built from the log flags before any subcommand runs.
	logger = logging.Nop()
	// logCloser closes the --log-file tee, if any.
	logCloser io.Closer

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patternctl",
	Short: "patternctl compiles, parses and renders brace-placeholder patterns",
	Long: `patternctl works with string templates such as "/users/{id}/{0}".

A template compiles to an anchored regular expression. Parsing a string
against it yields positional values for integer placeholders and named
values for identifier placeholders; rendering does the reverse.

Named pattern sets can be kept in YAML or JSON files and matched with
'patternctl match --config FILE INPUT'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.ErrOrStderr())
	},
	SilenceUsage:  true,
	SilenceErrors: true, // Run prints the error
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := Run(); code != 0 {
		os.Exit(code)
	}
}

// Run executes the root command and returns the process exit code.
func Run() int {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append JSON logs to this file")
}

func setupLogging(stderr io.Writer) error {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(logLevel)
	cfg.Format = logging.ParseFormat(logFormat)
	cfg.Output = stderr

	closeLogFile()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		cfg.Tee = f
		logCloser = f
	}

	logger = logging.New(cfg)
	logger.Debug("logging configured", slog.String("level", cfg.Level.String()), slog.String("format", string(cfg.Format)))
	return nil
}

func closeLogFile() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}
