// Package clock resolves the current calendar date in a configured time zone.
package clock

import (
	"fmt"
	"time"
)

// Today returns the current calendar date in the named IANA time zone,
// represented as midnight UTC. It is resolved once per run and threaded into
// the evaluator, never read ambiently inside the core logic.
func Today(timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}
