package unitylog

import "github.com/unitylog/unitylog-go/pkg/unitylog/entry"

// Severity classifies a log entry. Re-exported from the entry package.
type Severity = entry.Severity

// Severity values.
const (
	SeverityLog     = entry.SeverityLog
	SeverityWarning = entry.SeverityWarning
	SeverityError   = entry.SeverityError
	SeverityUnknown = entry.SeverityUnknown
)

// Entry is a single segmented log statement. Re-exported from the entry
// package.
type Entry = entry.Entry

// Record is the emitted form of an entry. Re-exported from the entry
// package.
type Record = entry.Record
