// Package milestone implements the past-due milestone detection logic:
// column schema detection, value normalization, and row evaluation.
package milestone

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sheetwatch/internal/sheet"
)

// ErrNoMilestones is returned when a sheet contains no milestone column
// triples. It signals a sheet-shape mismatch, distinct from a sheet that
// simply has no overdue items.
var ErrNoMilestones = errors.New("no milestone columns found (expected M1 / M1 Date / M1 Status pattern)")

// basePattern matches a milestone base column: "m" followed by digits only.
var basePattern = regexp.MustCompile(`^m(\d+)$`)

// ColumnMap is the normalized column-title lookup for one document.
// Titles are trimmed and lower-cased; duplicate titles resolve last-wins.
type ColumnMap struct {
	byTitle    map[string]int64
	primaryID  int64
	hasPrimary bool
}

// BuildColumnMap indexes a document's columns by normalized title and
// records the primary column if one exists.
func BuildColumnMap(cols []sheet.Column) *ColumnMap {
	m := &ColumnMap{byTitle: make(map[string]int64, len(cols))}
	for _, c := range cols {
		m.byTitle[strings.ToLower(strings.TrimSpace(c.Title))] = c.ID
		if c.Primary {
			m.primaryID = c.ID
			m.hasPrimary = true
		}
	}
	return m
}

// ID returns the column id for a normalized title.
func (m *ColumnMap) ID(normTitle string) (int64, bool) {
	id, ok := m.byTitle[normTitle]
	return id, ok
}

// PrimaryID returns the primary column id, if the document has one.
func (m *ColumnMap) PrimaryID() (int64, bool) {
	return m.primaryID, m.hasPrimary
}

// Schema identifies one milestone column triple.
type Schema struct {
	// Label is the display label, e.g. "M3".
	Label string
	// N is the numeric milestone index used for ordering.
	N int
	// TitleID is the base column; its cell holds the milestone title.
	TitleID int64
	// DateID is the "m<n> date" column.
	DateID int64
	// StatusID is the "m<n> status" column.
	StatusID int64
}

// DetectSchemas infers the ordered milestone triples from the column map.
// Two passes over the naming convention: every title matching m<n> is a
// candidate, and a candidate survives only when both its "m<n> date" and
// "m<n> status" companion columns exist. The result is sorted by n
// ascending (numeric, so m2 precedes m10).
//
// Zero surviving triples means the sheet does not follow the expected shape
// and the run must abort; ErrNoMilestones is returned.
func DetectSchemas(cols *ColumnMap) ([]Schema, error) {
	var schemas []Schema

	for title, id := range cols.byTitle {
		match := basePattern.FindStringSubmatch(title)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		dateID, ok := cols.ID(title + " date")
		if !ok {
			continue
		}
		statusID, ok := cols.ID(title + " status")
		if !ok {
			continue
		}

		schemas = append(schemas, Schema{
			Label:    "M" + match[1],
			N:        n,
			TitleID:  id,
			DateID:   dateID,
			StatusID: statusID,
		})
	}

	if len(schemas) == 0 {
		return nil, ErrNoMilestones
	}

	sort.Slice(schemas, func(i, j int) bool { return schemas[i].N < schemas[j].N })
	return schemas, nil
}
