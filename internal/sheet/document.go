// Package sheet defines the tabular document model returned by the
// Smartsheet API and the client that fetches it.
package sheet

// Column describes one column of a sheet. The primary column holds the
// project name for each row.
type Column struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Primary bool   `json:"primary"`
}

// Cell holds a single cell of a row. Value is the raw typed value as stored
// in the sheet; DisplayValue is the formatted string shown in the UI. Either
// or both may be absent.
type Cell struct {
	ColumnID     int64   `json:"columnId"`
	Value        any     `json:"value,omitempty"`
	DisplayValue *string `json:"displayValue,omitempty"`
}

// EffectiveValue returns the raw value when present, falling back to the
// display value. ok is false when the cell carries neither.
func (c Cell) EffectiveValue() (any, bool) {
	if c.Value != nil {
		return c.Value, true
	}
	if c.DisplayValue != nil {
		return *c.DisplayValue, true
	}
	return nil, false
}

// Row is one project record.
type Row struct {
	ID    int64  `json:"id"`
	Cells []Cell `json:"cells"`
}

// CellValue returns the effective value of the row's cell for the given
// column. A row is not required to carry a cell for every column; a missing
// cell yields ok=false, not an error.
func (r Row) CellValue(columnID int64) (any, bool) {
	for _, c := range r.Cells {
		if c.ColumnID == columnID {
			return c.EffectiveValue()
		}
	}
	return nil, false
}

// Document is a fetched sheet with its full column list and rows.
type Document struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}
