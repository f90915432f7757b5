// Package table defines the tabular values that flow through topclust:
// differential test results, per-cluster count matrices, and the read-only
// summary table produced from them.
package table

import (
	"errors"
	"fmt"
)

// Fixed column names of the summary contract.
const (
	ColClusterID = "cluster_id"
	ColMarkerID  = "marker_id"
	ColPVal      = "p_val"
	ColPAdj      = "p_adj"

	CountsPrefix = "counts_"
	PropsPrefix  = "props_"
)

// Kind identifies the shape of a result table and, from it, the report
// produced: one row per cluster (differential abundance) or one row per
// cluster-marker combination (differential state).
type Kind int

const (
	ClusterReport       Kind = iota // DA: no marker_id
	ClusterMarkerReport             // DS: marker_id present
)

func (k Kind) String() string {
	switch k {
	case ClusterMarkerReport:
		return "cluster-marker"
	default:
		return "cluster"
	}
}

// Short returns the conventional abbreviation, "DA" or "DS".
func (k Kind) Short() string {
	if k == ClusterMarkerReport {
		return "DS"
	}
	return "DA"
}

// FixedColumns returns the leading output columns for the kind, in order.
func (k Kind) FixedColumns() []string {
	if k == ClusterMarkerReport {
		return []string{ColClusterID, ColMarkerID, ColPVal, ColPAdj}
	}
	return []string{ColClusterID, ColPVal, ColPAdj}
}

// Result is one row of a differential test result.
type Result struct {
	ClusterID string
	MarkerID  string // empty for ClusterReport tables
	PVal      float64
	PAdj      float64
}

// ResultTable holds per-cluster or per-cluster-marker test statistics in
// upstream order. Extras carries any further columns (logFC, t, ...); each
// must have one value per row.
type ResultTable struct {
	Kind   Kind
	Rows   []Result
	Extras []Column
}

// Len returns the number of rows.
func (r *ResultTable) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Validate checks the table is internally consistent.
func (r *ResultTable) Validate() error {
	if r == nil {
		return errors.New("result table is nil")
	}
	seen := map[string]bool{}
	for _, name := range r.Kind.FixedColumns() {
		seen[name] = true
	}
	for _, c := range r.Extras {
		if c.Name == "" {
			return errors.New("result table has an unnamed extra column")
		}
		if c.Name == ColMarkerID {
			return errors.New("marker_id must be set on rows of a cluster-marker table, not as an extra column")
		}
		if seen[c.Name] {
			return fmt.Errorf("result table column %q appears more than once", c.Name)
		}
		seen[c.Name] = true
		if c.Len() != len(r.Rows) {
			return fmt.Errorf("result column %q has %d values, want %d", c.Name, c.Len(), len(r.Rows))
		}
	}
	for i, row := range r.Rows {
		if row.ClusterID == "" {
			return fmt.Errorf("result row %d has an empty cluster_id", i+1)
		}
		if r.Kind == ClusterMarkerReport && row.MarkerID == "" {
			return fmt.Errorf("result row %d has an empty marker_id", i+1)
		}
	}
	return nil
}

// CountTable is a cluster-by-sample matrix of cell counts.
// Counts[i][j] is the count of cluster Clusters[i] in sample Samples[j].
type CountTable struct {
	Clusters []string
	Samples  []string
	Counts   [][]float64
}

// Len returns the number of clusters (rows).
func (c *CountTable) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Clusters)
}

// Validate checks dimensions, identifier uniqueness, and that counts are
// non-negative.
func (c *CountTable) Validate() error {
	if c == nil {
		return errors.New("count table is nil")
	}
	if len(c.Counts) != len(c.Clusters) {
		return fmt.Errorf("count table has %d rows but %d cluster ids", len(c.Counts), len(c.Clusters))
	}
	if err := unique("cluster", c.Clusters); err != nil {
		return err
	}
	if err := unique("sample", c.Samples); err != nil {
		return err
	}
	for i, row := range c.Counts {
		if len(row) != len(c.Samples) {
			return fmt.Errorf("count row %q has %d values, want %d", c.Clusters[i], len(row), len(c.Samples))
		}
		for j, v := range row {
			if v < 0 || v != v {
				return fmt.Errorf("count for cluster %q sample %q is %v", c.Clusters[i], c.Samples[j], v)
			}
		}
	}
	return nil
}

func unique(what string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("empty %s id in count table", what)
		}
		if seen[id] {
			return fmt.Errorf("duplicate %s id %q in count table", what, id)
		}
		seen[id] = true
	}
	return nil
}

// Combined is the wrapper produced by an upstream run-everything step: the
// test results and the count table it was computed from.
type Combined struct {
	Res    *ResultTable
	Counts *CountTable
}
