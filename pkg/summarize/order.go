package summarize

import (
	"math"
	"sort"

	"github.com/dkoosis/topclust/pkg/table"
)

// order sorts the frame ascending by the named column. The sort is stable:
// tied rows keep their input order, so the top-N cut is reproducible. NaN
// sorts after every number.
func (f *frame) order(by string) error {
	col, ok := f.column(by)
	if !ok {
		return &ColumnError{Column: by, Available: f.names()}
	}

	idx := make([]int, f.rows)
	for i := range idx {
		idx[i] = i
	}

	var less func(a, b int) bool
	if col.Kind == table.Text {
		less = func(a, b int) bool { return col.Strs[a] < col.Strs[b] }
	} else {
		less = func(a, b int) bool {
			x, y := col.Nums[a], col.Nums[b]
			if math.IsNaN(y) {
				return !math.IsNaN(x)
			}
			return x < y
		}
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(idx[i], idx[j]) })

	f.permute(idx)
	return nil
}
