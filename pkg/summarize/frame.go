package summarize

import (
	"github.com/dkoosis/topclust/pkg/table"
)

// frame is the mutable working copy Summarize builds and reshapes. It owns
// its columns; nothing in it aliases caller data.
type frame struct {
	cols  []table.Column
	index map[string]int
	rows  int
	added []string // appended count/proportion columns, in order
}

// newFrame copies the result table into column form: the fixed columns for
// its kind, then any extras.
func newFrame(res *table.ResultTable) *frame {
	n := len(res.Rows)
	clusters := make([]string, n)
	markers := make([]string, n)
	pval := make([]float64, n)
	padj := make([]float64, n)
	for i, r := range res.Rows {
		clusters[i] = r.ClusterID
		markers[i] = r.MarkerID
		pval[i] = r.PVal
		padj[i] = r.PAdj
	}

	f := &frame{index: map[string]int{}, rows: n}
	f.set(table.Column{Name: table.ColClusterID, Kind: table.Text, Strs: clusters})
	if res.Kind == table.ClusterMarkerReport {
		f.set(table.Column{Name: table.ColMarkerID, Kind: table.Text, Strs: markers})
	}
	f.set(table.Column{Name: table.ColPVal, Kind: table.Numeric, Nums: pval})
	f.set(table.Column{Name: table.ColPAdj, Kind: table.Numeric, Nums: padj})
	for _, c := range res.Extras {
		f.set(c.Clone())
	}
	return f
}

// set adds c, replacing any existing column of the same name in place.
func (f *frame) set(c table.Column) {
	if i, ok := f.index[c.Name]; ok {
		f.cols[i] = c
		return
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
}

// appendAugment adds count/proportion columns and remembers them for
// selection.
func (f *frame) appendAugment(cols []table.Column) {
	for _, c := range cols {
		f.set(c)
		f.added = append(f.added, c.Name)
	}
}

func (f *frame) column(name string) (table.Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return table.Column{}, false
	}
	return f.cols[i], true
}

func (f *frame) names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name
	}
	return out
}

// permute reorders every column so that new row i is old row idx[i].
func (f *frame) permute(idx []int) {
	for i, c := range f.cols {
		f.cols[i] = c.Pick(idx)
	}
	f.rows = len(idx)
}
