package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_FixedColumns(t *testing.T) {
	assert.Equal(t, []string{"cluster_id", "p_val", "p_adj"}, ClusterReport.FixedColumns())
	assert.Equal(t, []string{"cluster_id", "marker_id", "p_val", "p_adj"}, ClusterMarkerReport.FixedColumns())
	assert.Equal(t, "DA", ClusterReport.Short())
	assert.Equal(t, "DS", ClusterMarkerReport.Short())
}

func TestResultTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rt      *ResultTable
		wantErr string
	}{
		{
			name: "valid with extras",
			rt: &ResultTable{
				Kind:   ClusterReport,
				Rows:   []Result{{ClusterID: "1"}, {ClusterID: "2"}},
				Extras: []Column{NumericColumn("logFC", []float64{1, 2})},
			},
		},
		{name: "nil", wantErr: "nil"},
		{
			name:    "short extra",
			rt:      &ResultTable{Rows: []Result{{ClusterID: "1"}}, Extras: []Column{NumericColumn("logFC", nil)}},
			wantErr: "has 0 values",
		},
		{
			name:    "extra shadows fixed column",
			rt:      &ResultTable{Rows: []Result{{ClusterID: "1"}}, Extras: []Column{NumericColumn("p_adj", []float64{1})}},
			wantErr: "more than once",
		},
		{
			name:    "marker as extra",
			rt:      &ResultTable{Rows: []Result{{ClusterID: "1"}}, Extras: []Column{TextColumn("marker_id", []string{"m"})}},
			wantErr: "marker_id",
		},
		{
			name:    "empty cluster id",
			rt:      &ResultTable{Rows: []Result{{}}},
			wantErr: "empty cluster_id",
		},
		{
			name:    "empty marker id",
			rt:      &ResultTable{Kind: ClusterMarkerReport, Rows: []Result{{ClusterID: "1"}}},
			wantErr: "empty marker_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rt.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCountTable_Validate(t *testing.T) {
	ok := &CountTable{Clusters: []string{"a", "b"}, Samples: []string{"s"}, Counts: [][]float64{{1}, {0}}}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 2, ok.Len())

	bad := []*CountTable{
		nil,
		{Clusters: []string{"a"}, Samples: []string{"s"}},
		{Clusters: []string{"a", "a"}, Samples: []string{"s"}, Counts: [][]float64{{1}, {1}}},
		{Clusters: []string{"a"}, Samples: []string{"s", "s"}, Counts: [][]float64{{1, 1}}},
		{Clusters: []string{"a"}, Samples: []string{"s"}, Counts: [][]float64{{1, 2}}},
		{Clusters: []string{"a"}, Samples: []string{"s"}, Counts: [][]float64{{-1}}},
		{Clusters: []string{"a"}, Samples: []string{"s"}, Counts: [][]float64{{math.NaN()}}},
	}
	for i, c := range bad {
		assert.Error(t, c.Validate(), "case %d", i)
	}
}

func TestTable_IsReadOnly(t *testing.T) {
	ids := []string{"1", "2"}
	cols := []Column{
		{Name: ColClusterID, Kind: Text, Strs: ids},
		{Name: ColPAdj, Kind: Numeric, Nums: []float64{0.5, math.NaN()}},
	}
	tbl := New(ClusterReport, cols, 10)

	ids[0] = "changed"
	assert.Equal(t, "1", tbl.Cell(0, ColClusterID))

	c, ok := tbl.Column(ColClusterID)
	require.True(t, ok)
	c.Strs[1] = "changed"
	assert.Equal(t, "2", tbl.Cell(1, ColClusterID))

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 10, tbl.Total())
	assert.True(t, tbl.Truncated())
	assert.Equal(t, [][]string{{"1", "0.5"}, {"2", "NA"}}, tbl.Rows())
	assert.Equal(t, "", tbl.Cell(0, "missing"))
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Order)
	assert.Equal(t, "p_adj", opts.OrderBy)
	assert.Equal(t, 20, opts.TopN)
	assert.Equal(t, 2, opts.Digits)
	assert.True(t, opts.FormatVals)
	assert.False(t, opts.Augmented())
	assert.NoError(t, opts.Validate())

	opts.TopN = 0
	assert.Error(t, opts.Validate())
}

func TestColumn_Pick(t *testing.T) {
	c := NumericColumn("x", []float64{1, 2, 3})
	assert.Equal(t, []float64{3, 1}, c.Pick([]int{2, 0}).Nums)
	s := TextColumn("y", []string{"a", "b"})
	assert.Equal(t, []string{"b"}, s.Pick([]int{1}).Strs)
	assert.Equal(t, "1e-05", FormatNumber(0.00001))
}
