package unitylog

import "sort"

// collapseKey identifies duplicate log statements: entries with the same
// severity and message are considered the same statement, even when their
// call stacks differ.
type collapseKey struct {
	severity Severity
	message  string
}

// collapse deduplicates entries sharing identical severity and message.
func collapse(entries []Entry, mode CollapseMode) []Entry {
	if len(entries) < 2 {
		return entries
	}
	switch mode {
	case CollapseSorted:
		return collapseSorted(entries)
	default:
		return collapseFirstSeen(entries)
	}
}

// collapseFirstSeen keeps original document order and retains the first
// occurrence of each (severity, message) pair.
func collapseFirstSeen(entries []Entry) []Entry {
	seen := make(map[collapseKey]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := collapseKey{e.Severity, e.Message}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// collapseSorted reproduces the historical behavior: sort by message,
// then drop adjacent duplicates. The stable sort makes the surviving
// representative deterministic (first in document order among equals).
func collapseSorted(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Message < sorted[j].Message
	})

	out := sorted[:1]
	for _, e := range sorted[1:] {
		prev := out[len(out)-1]
		if e.Severity == prev.Severity && e.Message == prev.Message {
			continue
		}
		out = append(out, e)
	}
	return out
}
