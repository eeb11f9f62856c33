// Package report renders past-due evaluation results as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sheetwatch/internal/milestone"
)

// EmptyMessage is the summary when no past-due incomplete milestones exist.
const EmptyMessage = "No past-due incomplete milestones found 🎉"

// isoDate is the due-date format in hit lines.
const isoDate = "2006-01-02"

// Format renders the results as a deterministic text summary. The same
// result list always yields byte-identical output.
func Format(results []milestone.ProjectResult) string {
	if len(results) == 0 {
		return EmptyMessage
	}

	total := 0
	for _, r := range results {
		total += len(r.Hits)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Past-due milestones (not completed): %d\n", total)
	fmt.Fprintf(&b, "Projects impacted: %d\n\n", len(results))

	for _, r := range results {
		fmt.Fprintf(&b, "• %s\n", r.Project)
		for _, h := range r.Hits {
			fmt.Fprintf(&b, "   - %s (%s) | Due: %s | Overdue: %dd | Status: %s\n",
				h.Milestone, h.Label, h.Due.Format(isoDate), h.OverdueDays, h.Status)
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
