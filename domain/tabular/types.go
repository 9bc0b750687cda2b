// Package tabular models loosely-typed tabular data: ordered rows of
// column-to-value mappings where column presence is not guaranteed uniform.
// Scorers read datasets through the Cell accessor so that every
// "field missing" decision goes through a single code path.
package tabular

// Row maps a column name to a raw value of arbitrary type.
type Row map[string]any

// Dataset is an ordered collection of rows. It is owned by the caller and
// never mutated by scoring code.
type Dataset struct {
	rows []Row
}

// New creates a dataset from rows. The slice is retained, not copied.
func New(rows []Row) Dataset {
	return Dataset{rows: rows}
}

// N returns the number of rows.
func (d Dataset) N() int {
	return len(d.rows)
}

// IsEmpty checks if the dataset has no rows.
func (d Dataset) IsEmpty() bool {
	return len(d.rows) == 0
}

// Rows returns the underlying rows.
func (d Dataset) Rows() []Row {
	return d.rows
}

// Columns returns the union schema across all rows in first-seen order.
// Rows need not share a uniform schema.
func (d Dataset) Columns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range d.rows {
		for name := range row {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	return cols
}

// HasColumn reports whether any row carries the column.
func (d Dataset) HasColumn(name string) bool {
	for _, row := range d.rows {
		if _, ok := row[name]; ok {
			return true
		}
	}
	return false
}

// Column returns one Cell per row for the named column. Rows without the
// column yield absent cells, preserving row alignment.
func (d Dataset) Column(name string) []Cell {
	cells := make([]Cell, len(d.rows))
	for i, row := range d.rows {
		cells[i] = Lookup(row, name)
	}
	return cells
}

// NonNullFraction returns the share of rows whose value in the column is
// present and non-null. An empty dataset yields 0.
func (d Dataset) NonNullFraction(name string) float64 {
	if len(d.rows) == 0 {
		return 0
	}
	filled := 0
	for _, row := range d.rows {
		if Lookup(row, name).Valid() {
			filled++
		}
	}
	return float64(filled) / float64(len(d.rows))
}
