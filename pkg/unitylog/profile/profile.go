// Package profile provides YAML-configured engine profiles for unitylog.
// A profile overrides the substrings the segmentation engine matches
// against, so logs from projects with custom logging wrappers or forked
// engine builds can be parsed without code changes.
package profile

// Profile represents the structure of a YAML profile file.
//
// Example YAML file:
//
//	version: 1
//	marker: "UnityEngine.Debug:Log"
//	wrapper_hints:
//	  - MyLogger
//	  - GameLog
type Profile struct {
	// Version is the profile file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Marker overrides the engine-log invocation substring. Empty keeps
	// the engine default.
	Marker string `yaml:"marker"`

	// WrapperHints overrides the substrings used to detect user-defined
	// logging wrapper frames. Empty keeps the engine defaults.
	WrapperHints []string `yaml:"wrapper_hints"`
}

// Validate checks the profile against structural requirements.
func (p *Profile) Validate() error {
	if p.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: "unsupported version (only version 1 is supported)",
		}
	}
	for i, hint := range p.WrapperHints {
		if hint == "" {
			return &HintError{
				Index:   i,
				Message: "wrapper hint must not be empty",
			}
		}
	}
	return nil
}
