package summarize

import (
	"fmt"

	"github.com/dkoosis/topclust/pkg/table"
)

// augment builds the counts_<sample> and/or props_<sample> columns for res.
// The count table is replicated once per marker so that its rows line up with
// the result rows positionally; the result table must repeat the count
// table's cluster order exactly, block after block.
func augment(res *table.ResultTable, counts *table.CountTable, opts table.Options) ([]table.Column, error) {
	if counts == nil {
		return nil, fmt.Errorf("%w: counts or proportions requested but no count table supplied", ErrMissingInput)
	}
	if err := counts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	nRep, err := replication(res, counts)
	if err != nil {
		return nil, err
	}

	var cols []table.Column
	if opts.ShowCounts {
		cols = append(cols, replicate(counts.Samples, counts.Counts, nRep, table.CountsPrefix)...)
	}
	if opts.ShowProps {
		cols = append(cols, replicate(counts.Samples, proportions(counts.Counts, len(counts.Samples)), nRep, table.PropsPrefix)...)
	}
	return cols, nil
}

// replication returns how many times the count table repeats down the
// result table. Every result row is checked, not only the first block: row i
// must carry Clusters[i%k], the id the stacked count rows place beside it.
// A table that passes the first-block check but breaks the pattern further
// down would otherwise get counts from a different cluster.
func replication(res *table.ResultTable, counts *table.CountTable) (int, error) {
	n, k := len(res.Rows), counts.Len()
	if k == 0 || n == 0 || n%k != 0 {
		return 0, &AlignmentError{ResultRows: n, CountRows: k, Row: -1}
	}
	for i, r := range res.Rows {
		if want := counts.Clusters[i%k]; r.ClusterID != want {
			return 0, &AlignmentError{ResultRows: n, CountRows: k, Row: i, Want: want, Got: r.ClusterID}
		}
	}
	return n / k, nil
}

// proportions converts each cell to a percentage of its sample's total.
// A sample with no cells at all gets 0 throughout.
func proportions(counts [][]float64, samples int) [][]float64 {
	totals := make([]float64, samples)
	for _, row := range counts {
		for j, v := range row {
			totals[j] += v
		}
	}
	out := make([][]float64, len(counts))
	for i, row := range counts {
		out[i] = make([]float64, samples)
		for j, v := range row {
			if totals[j] > 0 {
				out[i][j] = v / totals[j] * 100
			}
		}
	}
	return out
}

// replicate stacks the matrix nRep times and splits it into one column per
// sample, named prefix+sample.
func replicate(samples []string, m [][]float64, nRep int, prefix string) []table.Column {
	k := len(m)
	cols := make([]table.Column, len(samples))
	for j, s := range samples {
		vals := make([]float64, k*nRep)
		for i := range vals {
			vals[i] = m[i%k][j]
		}
		cols[j] = table.Column{Name: prefix + s, Kind: table.Numeric, Nums: vals}
	}
	return cols
}
