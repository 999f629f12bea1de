// Package entry defines the structured log entry model produced by the
// unitylog segmentation engine.
package entry

import "strings"

// Severity classifies a log entry.
type Severity string

const (
	// SeverityLog is a plain informational log statement.
	SeverityLog Severity = "Log"

	// SeverityWarning is a warning emitted via Debug.LogWarning.
	SeverityWarning Severity = "Warning"

	// SeverityError is an error emitted via Debug.LogError.
	SeverityError Severity = "Error"

	// SeverityUnknown marks entries produced by the fallback parse path,
	// where no reliable severity marker was found.
	SeverityUnknown Severity = "Unknown"
)

// Entry is a single segmented log statement.
//
// Message is always the first line of Callstack. TrimmedCallstack is the
// user-visible portion of the call stack with any leading wrapper frame
// removed; it never has more lines than Callstack.
type Entry struct {
	// Severity is the classified log level.
	Severity Severity

	// Message is the first line of the entry's block, the human-authored
	// log text.
	Message string

	// Callstack is the full original text block, verbatim.
	Callstack string

	// TrimmedCallstack is the call stack portion of the block with
	// engine-injected and wrapper frames removed.
	TrimmedCallstack string
}

// Summary returns the first n lines of the trimmed call stack, each
// whitespace-trimmed, concatenated with no separator. If the trimmed
// call stack has fewer than n lines, all available lines are used.
func (e Entry) Summary(n int) string {
	var sb strings.Builder
	rest := e.TrimmedCallstack
	for i := 0; i < n && rest != ""; i++ {
		line, more, found := strings.Cut(rest, "\n")
		sb.WriteString(strings.TrimSpace(line))
		if !found {
			break
		}
		rest = more
	}
	return sb.String()
}

// Record is the emitted form of an entry: the severity display text, the
// message, and a bounded-length call stack summary.
type Record struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Short   string `json:"short"`
}

// NewRecord builds the emitted record for an entry, bounding the call
// stack summary to summaryLines lines.
func NewRecord(e Entry, summaryLines int) Record {
	return Record{
		Type:    string(e.Severity),
		Message: e.Message,
		Short:   e.Summary(summaryLines),
	}
}

// IsZero reports whether the record carries no fields at all. The
// pipeline never produces such a record (Type is always a severity name),
// but formatters render a marker for one instead of dropping the row.
func (r Record) IsZero() bool {
	return r.Type == "" && r.Message == "" && r.Short == ""
}
