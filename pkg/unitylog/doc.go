// Package unitylog provides parsing of Unity3D Editor and Player log
// files into structured records.
//
// This package allows you to:
//   - Split raw log text into discrete entries with severity, message,
//     and call stack
//   - Trim engine-injected and wrapper frames from call stacks
//   - Collapse repeated log statements
//   - Produce bounded-length call stack summaries
//
// # Basic Usage
//
// To parse a log file into emitted records:
//
//	data, err := os.ReadFile("Editor.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := unitylog.ParseBytes("Editor.log", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range records {
//	    fmt.Printf("[%s] %s\n", rec.Type, rec.Message)
//	}
//
// To keep the full call stacks, use [Entries] instead:
//
//	entries, err := unitylog.Entries(text, unitylog.WithCollapse(false))
//
// # Options
//
// Behavior is configured with functional options:
//
//	records, err := unitylog.Parse(text,
//	    unitylog.WithSummaryLines(5),
//	    unitylog.WithCollapse(false),
//	)
//
// # Profiles
//
// Projects with custom logging wrappers can override the detection
// substrings via a YAML profile, see the [profile] subpackage:
//
//	p, err := profile.Load("profile.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := unitylog.Parse(text, unitylog.WithProfile(p))
//
// # Parse Modes
//
// Editor logs annotate each statement with a UnityEngine.Debug:Log
// invocation line; those markers drive extraction and severity
// classification. When a document contains no marker at all (typical of a
// Player log), the whole document is reparsed in a fallback mode where
// every blank-line-separated block becomes an entry of Unknown severity.
//
// # Disclaimer
//
// This is an unofficial tool and is not affiliated with Unity Technologies.
package unitylog
