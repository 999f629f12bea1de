package unitylog

import (
	"unicode/utf8"

	"github.com/unitylog/unitylog-go/internal/segment"
	"github.com/unitylog/unitylog-go/pkg/unitylog/entry"
)

// Parse runs the full pipeline over raw Unity log text and returns the
// emitted records in post-collapse order.
//
// Return values:
//   - (records, nil): parse succeeded; records may be empty if no block
//     survived structural extraction (not an error)
//   - (nil, error): the input violated the textual contract or an option
//     was invalid; no records are produced
//
// Structural anomalies in individual blocks (missing marker, missing
// delimiter) are recovered silently by excluding the block.
func Parse(text string, opts ...Option) ([]Record, error) {
	entries, cfg, err := parse("input", text, opts)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = entry.NewRecord(e, cfg.summaryLines)
	}
	return records, nil
}

// ParseBytes is the boundary entry point for callers holding raw bytes
// (file contents, stdin). The bytes must be valid UTF-8 text; anything
// else is a contract violation reported with source as the origin label.
func ParseBytes(source string, data []byte, opts ...Option) ([]Record, error) {
	if !utf8.Valid(data) {
		return nil, notTextError(source)
	}
	entries, cfg, err := parse(source, string(data), opts)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = entry.NewRecord(e, cfg.summaryLines)
	}
	return records, nil
}

// Entries runs the same pipeline as Parse but returns the structured
// entries with their full call stacks, for callers that need more than
// the bounded summary.
func Entries(text string, opts ...Option) ([]Entry, error) {
	entries, _, err := parse("input", text, opts)
	return entries, err
}

func parse(source, text string, opts []Option) ([]Entry, *config, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if !utf8.ValidString(text) {
		return nil, nil, notTextError(source)
	}

	entries, fallback := segment.Segment(cfg.segmentConfig(), text)
	if cfg.logger != nil {
		cfg.logger.Debug("segmented log text",
			"entries", len(entries),
			"fallback", fallback)
	}

	if cfg.collapse {
		before := len(entries)
		entries = collapse(entries, cfg.collapseMode)
		if cfg.logger != nil && len(entries) < before {
			cfg.logger.Debug("collapsed duplicate entries",
				"before", before,
				"after", len(entries))
		}
	}
	return entries, cfg, nil
}
