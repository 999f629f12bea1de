package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/unitylog/unitylog-go/pkg/unitylog"
	"github.com/unitylog/unitylog-go/pkg/unitylog/profile"
)

var (
	// parse flags
	summaryCount   int
	noCollapse     bool
	sortedCollapse bool
	outputFormat   string
	profilePath    string
	severityTypes  []string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Extract structured entries from Unity log files",
	Long: `Extract structured log entries from Unity3D Editor or Player log files.

Reads the given files, or stdin when no file is specified. Each entry is
emitted with its severity, message, and a bounded call stack summary.
Entries with identical severity and message are collapsed unless
--no-collapse is given.

Examples:
  # Parse an Editor log as a table
  unitylog parse Editor.log

  # JSON Lines output, piped to jq
  unitylog parse -f jsonl Editor.log | jq 'select(.type == "Error")'

  # Only errors and warnings
  unitylog parse --types Error,Warning Editor.log

  # Custom wrapper detection via a profile file
  unitylog parse --profile team.yaml Editor.log`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().IntVarP(&summaryCount, "count", "c", unitylog.DefaultSummaryLines,
		"Set how many lines of the short callstacks are printed")
	parseCmd.Flags().BoolVarP(&noCollapse, "no-collapse", "n", false,
		"Do not collapse same log statements together")
	parseCmd.Flags().BoolVar(&sortedCollapse, "sorted-collapse", false,
		"Collapse in message-sorted order instead of document order")
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "table",
		"Output format: table, jsonl, pretty")
	parseCmd.Flags().StringVar(&profilePath, "profile", "",
		"YAML profile file overriding marker and wrapper detection")
	parseCmd.Flags().StringSliceVarP(&severityTypes, "types", "t", nil,
		"Severities to show (comma-separated: Log,Warning,Error,Unknown)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[outputFormat] {
		return fmt.Errorf("unknown format: %s", outputFormat)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	filter := make(map[string]bool, len(severityTypes))
	for _, t := range severityTypes {
		filter[t] = true
	}

	out := cmd.OutOrStdout()
	var table []unitylog.Record

	emit := func(source string, data []byte) error {
		records, err := unitylog.ParseBytes(source, data, opts...)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if len(filter) > 0 && !filter[rec.Type] {
				continue
			}
			if outputFormat == "table" {
				table = append(table, rec)
				continue
			}
			if err := OutputRecord(outputFormat, rec, out); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
		return nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := emit("stdin", data); err != nil {
			return err
		}
	} else {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading log file: %w", err)
			}
			if err := emit(path, data); err != nil {
				return err
			}
		}
	}

	if outputFormat == "table" {
		return OutputTable(table, out)
	}
	return nil
}

// buildOptions translates the parse flags into library options.
func buildOptions() ([]unitylog.Option, error) {
	opts := []unitylog.Option{
		unitylog.WithSummaryLines(summaryCount),
		unitylog.WithCollapse(!noCollapse),
		unitylog.WithLogger(newLogger()),
	}
	if sortedCollapse {
		opts = append(opts, unitylog.WithCollapseMode(unitylog.CollapseSorted))
	}
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return nil, fmt.Errorf("profile file: %w", err)
		}
		opts = append(opts, unitylog.WithProfile(p))
	}
	return opts, nil
}
