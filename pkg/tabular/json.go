package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/dkoosis/topclust/internal/detect"
	"github.com/dkoosis/topclust/pkg/table"
)

// combinedDoc is the JSON form of table.Combined.
type combinedDoc struct {
	Res     json.RawMessage `json:"res"`
	DCounts json.RawMessage `json:"d_counts"`
}

// countsDoc is the JSON form of a count table.
type countsDoc struct {
	Clusters []json.RawMessage `json:"clusters"`
	Samples  []json.RawMessage `json:"samples"`
	Counts   [][]*float64      `json:"counts"`
}

// ReadCombined parses the {"res": [...], "d_counts": {...}} wrapper. The
// count table is optional.
func ReadCombined(data []byte) (table.Combined, error) {
	var doc combinedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return table.Combined{}, fmt.Errorf("parsing combined JSON: %w", err)
	}
	if doc.Res == nil {
		return table.Combined{}, &ParseError{Msg: `combined JSON has no "res" field`}
	}
	res, err := resultsFromJSON(doc.Res)
	if err != nil {
		return table.Combined{}, fmt.Errorf("res: %w", err)
	}
	out := table.Combined{Res: res}
	if len(doc.DCounts) > 0 && !bytes.Equal(bytes.TrimSpace(doc.DCounts), []byte("null")) {
		if out.Counts, err = countsFromJSON(doc.DCounts); err != nil {
			return table.Combined{}, fmt.Errorf("d_counts: %w", err)
		}
	}
	return out, nil
}

func resultsFromJSON(data []byte) (*table.ResultTable, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", detect.ResultsJSON, err)
	}

	rt := &table.ResultTable{Kind: table.ClusterReport, Rows: make([]table.Result, len(records))}
	extras := map[string]bool{}
	for i, rec := range records {
		id, ok := rec[table.ColClusterID]
		if !ok {
			return nil, &ParseError{Msg: fmt.Sprintf("record %d has no cluster_id", i+1)}
		}
		rt.Rows[i].ClusterID = scalarString(id)
		if m, ok := rec[table.ColMarkerID]; ok && m != nil {
			rt.Kind = table.ClusterMarkerReport
			rt.Rows[i].MarkerID = scalarString(m)
		}
		var err error
		if rt.Rows[i].PVal, err = jsonNumber(rec, table.ColPVal); err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("record %d: %v", i+1, err)}
		}
		if rt.Rows[i].PAdj, err = jsonNumber(rec, table.ColPAdj); err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("record %d: %v", i+1, err)}
		}
		for k := range rec {
			switch k {
			case table.ColClusterID, table.ColMarkerID, table.ColPVal, table.ColPAdj:
			default:
				extras[k] = true
			}
		}
	}

	names := make([]string, 0, len(extras))
	for k := range extras {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		cells := make([]string, len(records))
		for i, rec := range records {
			cells[i] = scalarString(rec[name])
		}
		rt.Extras = append(rt.Extras, extraColumn(name, cells))
	}
	return rt, nil
}

func jsonNumber(rec map[string]any, key string) (float64, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := parseNumber(n)
		if err != nil {
			return 0, fmt.Errorf("%s %q is not a number", key, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s has type %T, want number", key, v)
	}
}

// scalarString renders a decoded JSON scalar as a cell.
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		b, _ := json.Marshal(s)
		return string(b)
	}
}

func countsFromJSON(data []byte) (*table.CountTable, error) {
	var doc countsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", detect.CountsJSON, err)
	}
	ct := &table.CountTable{
		Clusters: make([]string, len(doc.Clusters)),
		Samples:  make([]string, len(doc.Samples)),
		Counts:   make([][]float64, len(doc.Counts)),
	}
	for i, raw := range doc.Clusters {
		ct.Clusters[i] = rawID(raw)
	}
	for i, raw := range doc.Samples {
		ct.Samples[i] = rawID(raw)
	}
	for i, row := range doc.Counts {
		ct.Counts[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				return nil, &ParseError{Msg: fmt.Sprintf("count row %d column %d is null", i+1, j+1)}
			}
			ct.Counts[i][j] = *v
		}
	}
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return ct, nil
}

// rawID accepts string or numeric identifiers.
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
