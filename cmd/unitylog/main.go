package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "unitylog",
	Short: "Parse Unity3D logs into structured records",
	Long: `unitylog reads Unity3D Editor and Player log files and extracts
structured log entries: severity, message, and a bounded call stack
summary. Repeated log statements are collapsed by default.

Examples:
  # Parse an Editor log
  unitylog parse Editor.log

  # Parse from stdin
  cat Player.log | unitylog parse

  # Longer call stack summaries, no collapsing
  unitylog parse -c 5 -n Editor.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the unitylog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "unitylog", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging on stderr")
	rootCmd.AddCommand(versionCmd)
}

// newLogger returns a debug logger when --verbose is set, nil otherwise.
func newLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
