package unitylog

import (
	"fmt"
	"log/slog"

	"github.com/unitylog/unitylog-go/internal/segment"
	"github.com/unitylog/unitylog-go/pkg/unitylog/profile"
)

// DefaultSummaryLines is the default number of call stack lines included
// in each record's summary.
const DefaultSummaryLines = 3

// CollapseMode specifies how collapsing orders its output.
type CollapseMode int

const (
	// CollapseFirstSeen keeps entries in original document order and
	// retains the first occurrence of each (severity, message) pair
	// (default).
	CollapseFirstSeen CollapseMode = iota

	// CollapseSorted sorts entries by message before deduplicating,
	// matching the historical tool behavior. Document order is lost; ties
	// are broken by a stable sort, so the first occurrence among equal
	// messages survives.
	CollapseSorted
)

// Option configures parsing using the functional options pattern.
type Option func(*config)

// config holds internal configuration for a single parse invocation.
type config struct {
	summaryLines int
	collapse     bool
	collapseMode CollapseMode
	marker       string
	wrapperHints []string
	logger       *slog.Logger
}

// defaultParseConfig returns a config with sensible defaults.
func defaultParseConfig() *config {
	return &config{
		summaryLines: DefaultSummaryLines,
		collapse:     true,
		marker:       segment.DefaultMarker,
		wrapperHints: segment.DefaultWrapperHints,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts []Option) *config {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option combinations.
func (c *config) validate() error {
	if c.summaryLines <= 0 {
		return fmt.Errorf("summary lines must be positive, got %d", c.summaryLines)
	}
	if c.marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if c.collapseMode != CollapseFirstSeen && c.collapseMode != CollapseSorted {
		return fmt.Errorf("unknown collapse mode: %d", c.collapseMode)
	}
	return nil
}

// segmentConfig translates the options into an engine configuration.
func (c *config) segmentConfig() segment.Config {
	return segment.Config{
		Marker:       c.marker,
		WrapperHints: c.wrapperHints,
	}
}

// WithSummaryLines sets how many call stack lines each record's summary
// includes. Default: 3. Must be positive.
func WithSummaryLines(n int) Option {
	return func(c *config) {
		c.summaryLines = n
	}
}

// WithCollapse enables or disables collapsing of entries with identical
// severity and message. Default: enabled.
func WithCollapse(enabled bool) Option {
	return func(c *config) {
		c.collapse = enabled
	}
}

// WithCollapseMode sets the ordering strategy used when collapsing.
// Default: CollapseFirstSeen.
func WithCollapseMode(mode CollapseMode) Option {
	return func(c *config) {
		c.collapseMode = mode
	}
}

// WithMarker overrides the engine-log invocation substring used for block
// detection and severity classification. Default:
// "UnityEngine.Debug:Log".
func WithMarker(marker string) Option {
	return func(c *config) {
		c.marker = marker
	}
}

// WithWrapperHints overrides the substrings used to detect a user-defined
// logging wrapper frame at the top of a call stack. Matching is
// case-sensitive. Default: "Debug", "Log".
func WithWrapperHints(hints ...string) Option {
	return func(c *config) {
		c.wrapperHints = hints
	}
}

// WithProfile applies a loaded YAML profile. Empty profile fields keep
// the engine defaults. If p is nil, this option has no effect.
func WithProfile(p *profile.Profile) Option {
	return func(c *config) {
		if p == nil {
			return
		}
		if p.Marker != "" {
			c.marker = p.Marker
		}
		if len(p.WrapperHints) > 0 {
			c.wrapperHints = p.WrapperHints
		}
	}
}

// WithLogger sets a custom logger for debug output. If logger is nil,
// logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
