package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/topclust/internal/detect"
	"github.com/dkoosis/topclust/pkg/table"
)

func TestReadResults_TSVWithMarkers(t *testing.T) {
	input := "cluster_id\tmarker_id\tlogFC\tp_val\tp_adj\tnote\n" +
		"1\tCD3\t1.5\t0.001\t0.01\tok\n" +
		"2\tCD3\t-0.5\tNA\tNA\tlow\n"

	rt, err := ReadResults([]byte(input), detect.Unknown)
	require.NoError(t, err)

	assert.Equal(t, table.ClusterMarkerReport, rt.Kind)
	require.Len(t, rt.Rows, 2)
	assert.Equal(t, table.Result{ClusterID: "1", MarkerID: "CD3", PVal: 0.001, PAdj: 0.01}, rt.Rows[0])
	assert.True(t, math.IsNaN(rt.Rows[1].PAdj))

	require.Len(t, rt.Extras, 2)
	assert.Equal(t, "logFC", rt.Extras[0].Name)
	assert.Equal(t, table.Numeric, rt.Extras[0].Kind)
	assert.Equal(t, []float64{1.5, -0.5}, rt.Extras[0].Nums)
	assert.Equal(t, table.Text, rt.Extras[1].Kind)
	assert.Equal(t, []string{"ok", "low"}, rt.Extras[1].Strs)
}

func TestReadResults_CSVWithoutMarkers(t *testing.T) {
	input := "cluster_id,p_val,p_adj\n" +
		"a, 0.5 ,0.6\n" +
		"b,1e-4,2e-3\n"

	rt, err := ReadResults([]byte(input), detect.CSV)
	require.NoError(t, err)
	assert.Equal(t, table.ClusterReport, rt.Kind)
	assert.Equal(t, []table.Result{
		{ClusterID: "a", PVal: 0.5, PAdj: 0.6},
		{ClusterID: "b", PVal: 1e-4, PAdj: 2e-3},
	}, rt.Rows)
	assert.Empty(t, rt.Extras)
}

func TestReadResults_DropsRowNames(t *testing.T) {
	implicit := "cluster_id\tp_val\tp_adj\nr1\t1\t0.1\t0.2\n"
	explicit := "\tcluster_id\tp_val\tp_adj\nr1\t1\t0.1\t0.2\n"
	for _, input := range []string{implicit, explicit} {
		rt, err := ReadResults([]byte(input), detect.TSV)
		require.NoError(t, err)
		assert.Equal(t, []table.Result{{ClusterID: "1", PVal: 0.1, PAdj: 0.2}}, rt.Rows)
		assert.Empty(t, rt.Extras)
	}
}

func TestReadResults_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing p_adj", "cluster_id\tp_val\n1\t0.1\n", `missing required column "p_adj"`},
		{"bad number", "cluster_id\tp_val\tp_adj\n1\tx\t0.1\n", "line 2: p_val"},
		{"ragged row", "cluster_id\tp_val\tp_adj\n1\t0.1\n", "line 2: has 2 fields"},
		{"duplicate column", "cluster_id\tp_val\tp_adj\tp_val\n1\t0.1\t0.1\t0.1\n", "duplicate column"},
		{"unrecognized", "just words", "unrecognized"},
		{"counts json", `{"clusters":[],"samples":[],"counts":[]}`, "unrecognized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadResults([]byte(tt.input), detect.Unknown)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadResults_JSON(t *testing.T) {
	input := `[
		{"cluster_id": 3, "marker_id": "pS6", "p_val": 0.02, "p_adj": "0.04", "logFC": 1.25},
		{"cluster_id": "10", "marker_id": "pS6", "p_val": null, "p_adj": 0.5, "logFC": -2}
	]`
	rt, err := ReadResults([]byte(input), detect.Unknown)
	require.NoError(t, err)

	assert.Equal(t, table.ClusterMarkerReport, rt.Kind)
	assert.Equal(t, "3", rt.Rows[0].ClusterID)
	assert.Equal(t, "10", rt.Rows[1].ClusterID)
	assert.Equal(t, 0.04, rt.Rows[0].PAdj)
	assert.True(t, math.IsNaN(rt.Rows[1].PVal))
	require.Len(t, rt.Extras, 1)
	assert.Equal(t, []float64{1.25, -2}, rt.Extras[0].Nums)
}

func TestReadCounts_TSV(t *testing.T) {
	input := "cluster_id\tpatient1\tpatient2\n" +
		"1\t120\t80\n" +
		"2\t0\t15.5\n"
	ct, err := ReadCounts([]byte(input), detect.Unknown)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ct.Clusters)
	assert.Equal(t, []string{"patient1", "patient2"}, ct.Samples)
	assert.Equal(t, [][]float64{{120, 80}, {0, 15.5}}, ct.Counts)
}

func TestReadCounts_RowNames(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format detect.Format
	}{
		{"explicit empty header cell", "\"\",s1,s2\nc1,10,20\nc2,30,40\n", detect.CSV},
		{"implicit short header", "s1\ts2\nc1\t10\t20\nc2\t30\t40\n", detect.TSV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := ReadCounts([]byte(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, []string{"c1", "c2"}, ct.Clusters)
			assert.Equal(t, []string{"s1", "s2"}, ct.Samples)
			assert.Equal(t, [][]float64{{10, 20}, {30, 40}}, ct.Counts)
		})
	}
}

func TestReadCounts_RowNamesRagged(t *testing.T) {
	_, err := ReadCounts([]byte("s1\ts2\nc1\t10\t20\nc2\t30\n"), detect.TSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3: has 2 fields, header has 3")
}

func TestReadCounts_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no samples", "cluster_id\n1\n"},
		{"missing count", "cluster_id\ts\n1\tNA\n"},
		{"negative count", "cluster_id\ts\n1\t-4\n"},
		{"duplicate cluster", "cluster_id\ts\n1\t4\n1\t5\n"},
		{"results json", `[{"cluster_id":"1"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCounts([]byte(tt.input), detect.Unknown)
			assert.Error(t, err)
		})
	}
}

func TestReadCombined(t *testing.T) {
	input := `{
		"res": [{"cluster_id": "1", "p_val": 0.1, "p_adj": 0.2}, {"cluster_id": "2", "p_val": 0.3, "p_adj": 0.4}],
		"d_counts": {"clusters": [1, 2], "samples": ["s1"], "counts": [[5], [7]]}
	}`
	c, err := ReadCombined([]byte(input))
	require.NoError(t, err)
	require.NotNil(t, c.Res)
	require.NotNil(t, c.Counts)
	assert.Equal(t, 2, c.Res.Len())
	assert.Equal(t, []string{"1", "2"}, c.Counts.Clusters)
	assert.Equal(t, [][]float64{{5}, {7}}, c.Counts.Counts)

	rt, err := ReadResults([]byte(input), detect.Unknown)
	require.NoError(t, err)
	assert.Equal(t, c.Res.Rows, rt.Rows)
}

func TestReadCombined_WithoutCounts(t *testing.T) {
	c, err := ReadCombined([]byte(`{"res": [], "d_counts": null}`))
	require.NoError(t, err)
	assert.Nil(t, c.Counts)
	assert.Equal(t, 0, c.Res.Len())

	_, err = ReadCombined([]byte(`{"d_counts": {}}`))
	assert.Error(t, err)
}
