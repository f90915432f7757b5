package table

import (
	"math"
	"strconv"
)

// ColumnKind distinguishes numeric from textual columns.
type ColumnKind int

const (
	Numeric ColumnKind = iota
	Text
)

func (k ColumnKind) String() string {
	if k == Text {
		return "text"
	}
	return "numeric"
}

// Column is a named vector of values. Exactly one of Nums or Strs is used,
// according to Kind.
type Column struct {
	Name string
	Kind ColumnKind
	Nums []float64
	Strs []string
}

// NumericColumn returns a numeric column holding a copy of values.
func NumericColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Numeric, Nums: append([]float64(nil), values...)}
}

// TextColumn returns a text column holding a copy of values.
func TextColumn(name string, values []string) Column {
	return Column{Name: name, Kind: Text, Strs: append([]string(nil), values...)}
}

// Len returns the number of values.
func (c Column) Len() int {
	if c.Kind == Text {
		return len(c.Strs)
	}
	return len(c.Nums)
}

// Float returns the numeric value at i. ok is false for text columns.
func (c Column) Float(i int) (v float64, ok bool) {
	if c.Kind != Numeric {
		return 0, false
	}
	return c.Nums[i], true
}

// Cell returns the display form of the value at i. Numbers use the shortest
// representation that round-trips; NaN is shown as "NA".
func (c Column) Cell(i int) string {
	if c.Kind == Text {
		return c.Strs[i]
	}
	return FormatNumber(c.Nums[i])
}

// FormatNumber renders v in shortest round-trip form, "NA" for NaN.
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Clone returns a deep copy.
func (c Column) Clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Nums != nil {
		out.Nums = append([]float64(nil), c.Nums...)
	}
	if c.Strs != nil {
		out.Strs = append([]string(nil), c.Strs...)
	}
	return out
}

// Pick returns a new column with the values at the given row indices.
func (c Column) Pick(idx []int) Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Text {
		out.Strs = make([]string, len(idx))
		for i, j := range idx {
			out.Strs[i] = c.Strs[j]
		}
		return out
	}
	out.Nums = make([]float64, len(idx))
	for i, j := range idx {
		out.Nums[i] = c.Nums[j]
	}
	return out
}
