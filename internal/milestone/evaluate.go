package milestone

import (
	"fmt"
	"sort"
	"time"

	"github.com/leapstack-labs/sheetwatch/internal/sheet"
)

// UnnamedProject is the placeholder used when a row has no primary cell.
const UnnamedProject = "(Unnamed Project)"

// hoursPerDay converts a calendar-date difference into whole days.
const hoursPerDay = 24

// Hit is a single past-due, not-completed milestone on a project row.
type Hit struct {
	// Milestone is the title cell value, or the schema label when absent.
	Milestone string
	// Label is the schema label, e.g. "M2".
	Label string
	// Due is the parsed due date (midnight UTC).
	Due time.Time
	// OverdueDays is today minus due in whole days; always >= 1.
	OverdueDays int
	// Status is the raw status cell value, empty when absent.
	Status string
}

// ProjectResult groups one project's hits, most-overdue first. It exists
// only for projects with at least one hit.
type ProjectResult struct {
	Project string
	Hits    []Hit
}

// FindPastDue scans every row of the document for milestones whose due date
// has passed without the milestone being completed. today must be a calendar
// date (midnight UTC); it is injected rather than read from the system clock
// so the evaluation is a pure, deterministic function of its inputs.
//
// A milestone whose date cell is absent or unparseable contributes nothing:
// the row and the run continue. Hits within a project are sorted by
// OverdueDays descending (stable, so ties keep schema order); projects are
// sorted by their top hit's OverdueDays descending (stable, so ties keep row
// order).
func FindPastDue(doc *sheet.Document, today time.Time, schemas []Schema, cols *ColumnMap) []ProjectResult {
	var results []ProjectResult

	for _, row := range doc.Rows {
		project := UnnamedProject
		if primaryID, ok := cols.PrimaryID(); ok {
			if v, ok := row.CellValue(primaryID); ok {
				if s := fmt.Sprint(v); s != "" {
					project = s
				}
			}
		}

		var hits []Hit
		for _, sc := range schemas {
			title := sc.Label
			if v, ok := row.CellValue(sc.TitleID); ok {
				if s := fmt.Sprint(v); s != "" {
					title = s
				}
			}

			dueVal, _ := row.CellValue(sc.DateID)
			due, ok := ParseDate(dueVal)
			if !ok {
				continue
			}

			statusVal, _ := row.CellValue(sc.StatusID)
			if !due.Before(today) || IsCompleted(statusVal) {
				continue
			}

			status := ""
			if statusVal != nil {
				status = fmt.Sprint(statusVal)
			}

			hits = append(hits, Hit{
				Milestone:   title,
				Label:       sc.Label,
				Due:         due,
				OverdueDays: int(today.Sub(due).Hours() / hoursPerDay),
				Status:      status,
			})
		}

		if len(hits) > 0 {
			sort.SliceStable(hits, func(i, j int) bool {
				return hits[i].OverdueDays > hits[j].OverdueDays
			})
			results = append(results, ProjectResult{Project: project, Hits: hits})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Hits[0].OverdueDays > results[j].Hits[0].OverdueDays
	})

	return results
}
