package tabular

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Cell is the result of a column lookup on a row. Absence (the row has no
// such column) and nullness (the column holds no usable value) are explicit
// states rather than implicit zero values.
type Cell struct {
	Present bool
	Value   any
}

// Lookup retrieves a column from a row as a Cell. This is the single path
// through which scoring heuristics observe missing fields.
func Lookup(row Row, column string) Cell {
	v, ok := row[column]
	if !ok {
		return Cell{}
	}
	return Cell{Present: true, Value: v}
}

// Null reports whether the cell is present but holds no usable value
// (nil, or a floating-point NaN).
func (c Cell) Null() bool {
	if !c.Present {
		return false
	}
	if c.Value == nil {
		return true
	}
	if f, ok := c.Value.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}

// Valid reports whether the cell is present and non-null.
func (c Cell) Valid() bool {
	return c.Present && !c.Null()
}

// String returns the trimmed string view of the cell value.
// Returns false for absent or null cells and for values that cannot be
// rendered as strings.
func (c Cell) String() (string, bool) {
	if !c.Valid() {
		return "", false
	}
	s, err := cast.ToStringE(c.Value)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Float returns the numeric view of the cell value. Parsing failures
// degrade to a false second return, never an error.
func (c Cell) Float() (float64, bool) {
	if !c.Valid() {
		return 0, false
	}
	f, err := cast.ToFloat64E(c.Value)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Time returns the temporal view of the cell value, accepting time.Time
// values directly and parsing common date layouts otherwise.
func (c Cell) Time() (time.Time, bool) {
	if !c.Valid() {
		return time.Time{}, false
	}
	return ParseDate(c.Value)
}
