package detect

import "testing"

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"tsv", "cluster_id\tp_val\tp_adj\n1\t0.1\t0.2\n", TSV},
		{"tsv with rowname header", "\tcluster_id\tp_val\n", TSV},
		{"csv", "cluster_id,p_val,p_adj\n1,0.1,0.2\n", CSV},
		{"csv single line", "cluster_id,s1,s2", CSV},
		{"results json", `[{"cluster_id":"1","p_val":0.1,"p_adj":0.2}]`, ResultsJSON},
		{"empty results json", `[]`, ResultsJSON},
		{"array without cluster_id", `[{"name":"x"}]`, Unknown},
		{"counts json", `{"clusters":["1"],"samples":["s"],"counts":[[3]]}`, CountsJSON},
		{"combined json", `{"res":[],"d_counts":{"clusters":[],"samples":[],"counts":[]}}`, CombinedJSON},
		{"combined without counts", `{"res":[]}`, CombinedJSON},
		{"unrelated object", `{"version":"2.1.0"}`, Unknown},
		{"invalid json", "{invalid", Unknown},
		{"leading whitespace", "  \n[]", ResultsJSON},
		{"byte order mark", "\ufeffcluster_id\tp_val\n", TSV},
		{"plain text", "this is not a table", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff([]byte(tt.input)); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_Delimited(t *testing.T) {
	if !TSV.Delimited() || !CSV.Delimited() {
		t.Error("TSV and CSV should be delimited")
	}
	if ResultsJSON.Delimited() {
		t.Error("JSON should not be delimited")
	}
}
