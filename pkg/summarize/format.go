package summarize

import (
	"math"
	"strconv"

	"github.com/dkoosis/topclust/pkg/table"
)

// pColumns are the columns rewritten by p-value formatting.
var pColumns = []string{table.ColPVal, table.ColPAdj}

// selectColumns keeps the fixed columns for kind followed by the appended
// count/proportion columns, and cuts the rows to the first limit (all rows
// when limit < 0).
func (f *frame) selectColumns(kind table.Kind, limit int) ([]table.Column, error) {
	names := append(kind.FixedColumns(), f.added...)
	n := f.rows
	if limit >= 0 && limit < n {
		n = limit
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	out := make([]table.Column, 0, len(names))
	for _, name := range names {
		c, ok := f.column(name)
		if !ok {
			return nil, &ColumnError{Column: name, Available: f.names()}
		}
		out = append(out, c.Pick(idx))
	}
	return out, nil
}

// formatPValues turns the numeric p_val and p_adj columns into text in
// scientific notation with the given digits after the point. It runs once per
// summary; text columns are left alone, so a formatted column is never
// formatted again.
func formatPValues(cols []table.Column, digits int) {
	for i, c := range cols {
		if c.Kind != table.Numeric || !isPColumn(c.Name) {
			continue
		}
		strs := make([]string, len(c.Nums))
		for j, v := range c.Nums {
			strs[j] = Scientific(v, digits)
		}
		cols[i] = table.Column{Name: c.Name, Kind: table.Text, Strs: strs}
	}
}

func isPColumn(name string) bool {
	for _, p := range pColumns {
		if name == p {
			return true
		}
	}
	return false
}

// Scientific renders v as d.ddde±XX with digits after the point, e.g.
// Scientific(0.0000341, 2) == "3.41e-05". NaN renders as "NA".
func Scientific(v float64, digits int) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'e', digits, 64)
}
