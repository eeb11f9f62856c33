package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sheetwatch/internal/milestone"
)

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "No past-due incomplete milestones found 🎉", Format(nil))
	assert.Equal(t, EmptyMessage, Format([]milestone.ProjectResult{}))
}

func TestFormat_SingleProject(t *testing.T) {
	results := []milestone.ProjectResult{
		{
			Project: "Alpha",
			Hits: []milestone.Hit{
				{
					Milestone:   "Kickoff",
					Label:       "M1",
					Due:         milestone.Date(2020, time.January, 1),
					OverdueDays: 9,
					Status:      "Open",
				},
			},
		},
	}

	got := Format(results)
	want := strings.Join([]string{
		"Past-due milestones (not completed): 1",
		"Projects impacted: 1",
		"",
		"• Alpha",
		"   - Kickoff (M1) | Due: 2020-01-01 | Overdue: 9d | Status: Open",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_MultipleProjects(t *testing.T) {
	results := []milestone.ProjectResult{
		{
			Project: "Alpha",
			Hits: []milestone.Hit{
				{Milestone: "Design", Label: "M2", Due: milestone.Date(2020, time.January, 2), OverdueDays: 8, Status: "Open"},
				{Milestone: "Kickoff", Label: "M1", Due: milestone.Date(2020, time.January, 8), OverdueDays: 2, Status: ""},
			},
		},
		{
			Project: "Beta",
			Hits: []milestone.Hit{
				{Milestone: "M3", Label: "M3", Due: milestone.Date(2020, time.January, 9), OverdueDays: 1, Status: "Blocked"},
			},
		},
	}

	got := Format(results)

	assert.Contains(t, got, "Past-due milestones (not completed): 3")
	assert.Contains(t, got, "Projects impacted: 2")
	assert.Contains(t, got, "• Alpha")
	assert.Contains(t, got, "• Beta")
	assert.Contains(t, got, "   - Design (M2) | Due: 2020-01-02 | Overdue: 8d | Status: Open")
	assert.Contains(t, got, "   - M3 (M3) | Due: 2020-01-09 | Overdue: 1d | Status: Blocked")

	// Projects are separated by a blank line; output carries no trailing
	// whitespace.
	assert.Contains(t, got, "Status: \n\n• Beta")
	assert.Equal(t, strings.TrimSpace(got), got)

	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "", lines[2])
}

func TestFormat_Deterministic(t *testing.T) {
	results := []milestone.ProjectResult{
		{
			Project: "Alpha",
			Hits: []milestone.Hit{
				{Milestone: "Kickoff", Label: "M1", Due: milestone.Date(2020, time.January, 1), OverdueDays: 9, Status: "Open"},
			},
		},
	}

	assert.Equal(t, Format(results), Format(results))
}
