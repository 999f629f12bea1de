// Package segment implements the Unity log segmentation engine: it splits
// raw log text into entry blocks, classifies severity, and separates the
// human message from its call stack.
//
// Unity log files have no formal grammar; detection is deliberately done
// with explicit substring and prefix checks against known marker strings
// rather than a general parser.
package segment

import (
	"strings"

	"github.com/unitylog/unitylog-go/pkg/unitylog/entry"
)

const (
	// DefaultMarker is the substring identifying an engine-originated log
	// invocation line within a block.
	DefaultMarker = "UnityEngine.Debug:Log"

	// blockDelimiter separates log statements in Unity's output: each
	// message+stack is followed by a blank line.
	blockDelimiter = "\n\n"
)

// DefaultWrapperHints are substrings that heuristically identify a
// user-defined logging wrapper frame at the top of a call stack. A frame
// like "MyLogger:Log(String)" re-invoked Unity's logger and carries no
// information of its own, so it is trimmed.
var DefaultWrapperHints = []string{"Debug", "Log"}

// Config tunes the extraction heuristics. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Marker is the engine-log invocation substring.
	Marker string

	// WrapperHints are the substrings used for wrapper-frame trimming.
	// Matching is case-sensitive.
	WrapperHints []string
}

// DefaultConfig returns the configuration for standard Unity logs.
func DefaultConfig() Config {
	return Config{
		Marker:       DefaultMarker,
		WrapperHints: DefaultWrapperHints,
	}
}

// Normalize rewrites CRLF and lone CR sequences to LF. All later line
// counting depends on this canonical form. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Blocks splits normalized text on blank-line delimiters. A trailing
// delimiter does not produce an empty final block; interior empty blocks
// are kept and filtered structurally during extraction.
func Blocks(s string) []string {
	blocks := strings.Split(s, blockDelimiter)
	if n := len(blocks); blocks[n-1] == "" {
		blocks = blocks[:n-1]
	}
	if len(blocks) == 0 {
		return nil
	}
	return blocks
}

// Extract parses one marker-bearing block into an entry. It reports false
// for blocks that lack the expected structure (no marker, or no newline
// after the marker line); such blocks are silently excluded.
func Extract(cfg Config, block string) (entry.Entry, bool) {
	idx := strings.LastIndex(block, cfg.Marker)
	if idx < 0 {
		return entry.Entry{}, false
	}

	// The tail starts at the last marker occurrence. The marker string can
	// appear incidentally earlier in a block (inside the message itself),
	// so the authoritative invocation line is the last one.
	tail := block[idx:]
	_, userLog, ok := strings.Cut(tail, "\n")
	if !ok {
		return entry.Entry{}, false
	}

	// Trim a leading wrapper frame from the user-log region.
	trimmed := userLog
	if first, rest, found := strings.Cut(userLog, "\n"); found && containsAny(first, cfg.WrapperHints) {
		trimmed = rest
	}

	severity := entry.SeverityLog
	typeLine := strings.TrimPrefix(tail, cfg.Marker)
	switch {
	case strings.HasPrefix(typeLine, "Error"):
		severity = entry.SeverityError
	case strings.HasPrefix(typeLine, "Warning"):
		severity = entry.SeverityWarning
	}

	return entry.Entry{
		Severity:         severity,
		Message:          firstLine(block),
		Callstack:        block,
		TrimmedCallstack: trimmed,
	}, true
}

// Fallback parses a block without marker detection: the first line is the
// message, the rest is the call stack, severity is unknown. Blocks with no
// internal newline are excluded.
func Fallback(block string) (entry.Entry, bool) {
	first, rest, ok := strings.Cut(block, "\n")
	if !ok {
		return entry.Entry{}, false
	}
	return entry.Entry{
		Severity:         entry.SeverityUnknown,
		Message:          first,
		Callstack:        block,
		TrimmedCallstack: rest,
	}, true
}

// Segment runs the full segmentation over raw log text and returns the
// extracted entries in document order. The second result reports whether
// the document-level fallback mode was used: when marker-based extraction
// yields no entries at all (typical of a Player log without Editor-style
// stack annotations), every block is reprocessed without the marker
// filter. The switch is all-or-nothing for the whole document, never per
// block.
func Segment(cfg Config, text string) ([]entry.Entry, bool) {
	blocks := Blocks(Normalize(text))

	var entries []entry.Entry
	for _, block := range blocks {
		if !strings.Contains(block, cfg.Marker) {
			continue
		}
		if e, ok := Extract(cfg, block); ok {
			entries = append(entries, e)
		}
	}
	if len(entries) > 0 {
		return entries, false
	}

	for _, block := range blocks {
		if e, ok := Fallback(block); ok {
			entries = append(entries, e)
		}
	}
	return entries, true
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
