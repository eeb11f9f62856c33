package milestone

import (
	"fmt"
	"strings"
	"time"
)

// completedValues are the normalized status strings treated as "completed".
var completedValues = map[string]struct{}{
	"completed": {},
	"complete":  {},
	"done":      {},
	"closed":    {},
	"100%":      {},
}

// NormalizeStatus canonicalizes a raw status cell value for comparison:
// trimmed and lower-cased. Absent values normalize to the empty string.
func NormalizeStatus(v any) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
}

// IsCompleted reports whether the raw status value marks a milestone as done.
func IsCompleted(v any) bool {
	_, ok := completedValues[NormalizeStatus(v)]
	return ok
}

// dateLayouts are the accepted ISO-8601-like forms, tried in order.
// Fractional seconds and a UTC offset are optional; a trailing Z has already
// been rewritten to +00:00 by the time these apply.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseDate extracts the calendar date from an ISO-8601-like cell value.
// The returned time is midnight UTC. ok is false for absent, empty, or
// unparseable values; callers skip the milestone rather than fail the run.
func ParseDate(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t.Year(), t.Month(), t.Day()), true
		}
	}
	return time.Time{}, false
}

// Date returns midnight UTC for the given calendar day. All dates flowing
// through the evaluator use this representation so day arithmetic is exact.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
