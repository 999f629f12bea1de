package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/unitylog/unitylog-go/pkg/unitylog"
)

// nothingMarker is printed in place of a record that carries no fields,
// so no output position is ever silently dropped.
const nothingMarker = "(nothing)"

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"table":  true,
	"jsonl":  true,
	"pretty": true,
}

// OutputRecord writes a record in the specified format to the writer.
func OutputRecord(format string, rec unitylog.Record, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(rec, out)
	case "pretty":
		return OutputPretty(rec, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a record as JSON Lines format.
func OutputJSON(rec unitylog.Record, out io.Writer) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a record in human-readable format.
func OutputPretty(rec unitylog.Record, out io.Writer) error {
	if rec.IsZero() {
		_, err := fmt.Fprintln(out, nothingMarker)
		return err
	}
	if rec.Short == "" {
		_, err := fmt.Fprintf(out, "[%s] %s\n", rec.Type, rec.Message)
		return err
	}
	_, err := fmt.Fprintf(out, "[%s] %s\n    %s\n", rec.Type, rec.Message, rec.Short)
	return err
}

// OutputTable writes records as an aligned table with a header row.
func OutputTable(records []unitylog.Record, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tMESSAGE\tSHORT")
	for _, rec := range records {
		if rec.IsZero() {
			fmt.Fprintf(w, "%s\t\t\n", nothingMarker)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Type, rec.Message, rec.Short)
	}
	return w.Flush()
}
