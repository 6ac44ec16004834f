package model

// Record is one spreadsheet row: an ordered mapping from column name to cell
// value. Records are immutable once built; the matcher and report writer only
// read them.
type Record struct {
	columns []string
	values  map[string]Value
}

// NewRecord builds a Record from parallel column and cell slices. A row
// shorter than the header is padded with empty cells; surplus cells are
// dropped.
func NewRecord(columns []string, cells []Value) Record {
	cols := make([]string, len(columns))
	copy(cols, columns)

	values := make(map[string]Value, len(cols))
	for i, col := range cols {
		if i < len(cells) {
			values[col] = cells[i]
		} else {
			values[col] = Empty()
		}
	}
	return Record{columns: cols, values: values}
}

// Columns returns the column names in source order.
func (r Record) Columns() []string {
	cols := make([]string, len(r.columns))
	copy(cols, r.columns)
	return cols
}

// Get returns the cell for a column and whether the column exists.
func (r Record) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Cell returns the cell for a column, or the empty Value if absent.
func (r Record) Cell(column string) Value {
	return r.values[column]
}

// Len returns the number of columns.
func (r Record) Len() int { return len(r.columns) }
