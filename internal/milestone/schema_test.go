package milestone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sheetwatch/internal/sheet"
)

// tripleColumns builds the three columns of one milestone set starting at id.
func tripleColumns(base string, id int64) []sheet.Column {
	return []sheet.Column{
		{ID: id, Title: base},
		{ID: id + 1, Title: base + " Date"},
		{ID: id + 2, Title: base + " Status"},
	}
}

func TestBuildColumnMap(t *testing.T) {
	cols := []sheet.Column{
		{ID: 1, Title: "Project", Primary: true},
		{ID: 2, Title: "  M1  "},
		{ID: 3, Title: "M1 Date"},
	}
	m := BuildColumnMap(cols)

	id, ok := m.ID("project")
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	// Titles are trimmed and lower-cased
	id, ok = m.ID("m1")
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	primaryID, ok := m.PrimaryID()
	require.True(t, ok)
	assert.Equal(t, int64(1), primaryID)
}

func TestBuildColumnMap_NoPrimary(t *testing.T) {
	m := BuildColumnMap([]sheet.Column{{ID: 1, Title: "M1"}})
	_, ok := m.PrimaryID()
	assert.False(t, ok)
}

func TestBuildColumnMap_DuplicateTitleLastWins(t *testing.T) {
	m := BuildColumnMap([]sheet.Column{
		{ID: 1, Title: "M1"},
		{ID: 2, Title: "m1"},
	})
	id, ok := m.ID("m1")
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func TestDetectSchemas(t *testing.T) {
	cols := []sheet.Column{{ID: 1, Title: "Project", Primary: true}}
	cols = append(cols, tripleColumns("M1", 10)...)
	cols = append(cols, tripleColumns("M2", 20)...)

	schemas, err := DetectSchemas(BuildColumnMap(cols))
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	assert.Equal(t, "M1", schemas[0].Label)
	assert.Equal(t, int64(10), schemas[0].TitleID)
	assert.Equal(t, int64(11), schemas[0].DateID)
	assert.Equal(t, int64(12), schemas[0].StatusID)
	assert.Equal(t, "M2", schemas[1].Label)
}

func TestDetectSchemas_NumericSort(t *testing.T) {
	// m10 must sort after m2, not between m1 and m2
	var cols []sheet.Column
	cols = append(cols, tripleColumns("M2", 20)...)
	cols = append(cols, tripleColumns("M10", 100)...)
	cols = append(cols, tripleColumns("M1", 10)...)

	schemas, err := DetectSchemas(BuildColumnMap(cols))
	require.NoError(t, err)
	require.Len(t, schemas, 3)

	labels := []string{schemas[0].Label, schemas[1].Label, schemas[2].Label}
	assert.Equal(t, []string{"M1", "M2", "M10"}, labels)
}

func TestDetectSchemas_OrderIndependent(t *testing.T) {
	var cols []sheet.Column
	cols = append(cols, tripleColumns("M1", 10)...)
	cols = append(cols, tripleColumns("M2", 20)...)

	want, err := DetectSchemas(BuildColumnMap(cols))
	require.NoError(t, err)

	// Reversed column order yields the same schema list
	reversed := make([]sheet.Column, len(cols))
	for i, c := range cols {
		reversed[len(cols)-1-i] = c
	}
	got, err := DetectSchemas(BuildColumnMap(reversed))
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestDetectSchemas_RejectsPartialTriples(t *testing.T) {
	tests := []struct {
		name string
		cols []sheet.Column
	}{
		{
			name: "missing status",
			cols: []sheet.Column{
				{ID: 1, Title: "M5"},
				{ID: 2, Title: "M5 Date"},
			},
		},
		{
			name: "missing date",
			cols: []sheet.Column{
				{ID: 1, Title: "M5"},
				{ID: 2, Title: "M5 Status"},
			},
		},
		{
			name: "companions without base",
			cols: []sheet.Column{
				{ID: 1, Title: "M5 Date"},
				{ID: 2, Title: "M5 Status"},
			},
		},
		{
			name: "no milestone columns at all",
			cols: []sheet.Column{
				{ID: 1, Title: "Project", Primary: true},
				{ID: 2, Title: "Owner"},
			},
		},
		{
			name: "base name with trailing text",
			cols: []sheet.Column{
				{ID: 1, Title: "M5 extra"},
				{ID: 2, Title: "M5 extra Date"},
				{ID: 3, Title: "M5 extra Status"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schemas, err := DetectSchemas(BuildColumnMap(tt.cols))
			assert.ErrorIs(t, err, ErrNoMilestones)
			assert.Nil(t, schemas)
		})
	}
}

func TestDetectSchemas_PartialTripleNextToCompleteOne(t *testing.T) {
	cols := tripleColumns("M1", 10)
	cols = append(cols,
		sheet.Column{ID: 50, Title: "M5"},
		sheet.Column{ID: 51, Title: "M5 Date"},
	)

	schemas, err := DetectSchemas(BuildColumnMap(cols))
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "M1", schemas[0].Label)
}
