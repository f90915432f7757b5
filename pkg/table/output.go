package table

// Table is the read-only summary produced from a result table. Every
// accessor returns copies, so a Table never changes after construction and
// never aliases the inputs it was built from.
type Table struct {
	kind  Kind
	cols  []Column
	index map[string]int
	total int
	rows  int
}

// New builds a Table from cols, which must all have the same length. total
// is the row count before truncation. The columns are copied.
func New(kind Kind, cols []Column, total int) *Table {
	t := &Table{
		kind:  kind,
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
		total: total,
	}
	for i, c := range cols {
		t.cols[i] = c.Clone()
		t.index[c.Name] = i
	}
	if len(cols) > 0 {
		t.rows = cols[0].Len()
	}
	if t.total < t.rows {
		t.total = t.rows
	}
	return t
}

// Kind reports whether this is a per-cluster or per-cluster-marker report.
func (t *Table) Kind() Kind { return t.kind }

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Total returns the number of rows before truncation.
func (t *Table) Total() int { return t.total }

// Truncated reports whether rows were dropped by top-N selection.
func (t *Table) Truncated() bool { return t.total > t.rows }

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i].Clone(), true
}

// Cell returns the display form of one value, or "" if the column is absent.
func (t *Table) Cell(row int, name string) string {
	i, ok := t.index[name]
	if !ok {
		return ""
	}
	return t.cols[i].Cell(row)
}

// Rows returns every row as display strings, in column order.
func (t *Table) Rows() [][]string {
	out := make([][]string, t.rows)
	for r := range out {
		row := make([]string, len(t.cols))
		for i, c := range t.cols {
			row[i] = c.Cell(r)
		}
		out[r] = row
	}
	return out
}
