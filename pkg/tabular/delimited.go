package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/topclust/internal/detect"
	"github.com/dkoosis/topclust/pkg/table"
)

// record is one data row with its source line.
type record struct {
	line   int
	fields []string
}

// readDelimited splits data into a header and records. A header one field
// shorter than the rows, or starting with an empty cell, marks a leading
// row-name column; it is removed from every record and returned as names,
// one per data row. names is nil when there is no such column.
func readDelimited(data []byte, format detect.Format) (records []record, names []string, err error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	if format == detect.TSV {
		r.Comma = '\t'
		r.LazyQuotes = true
	}
	r.FieldsPerRecord = -1

	var out []record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", format, err)
		}
		line, _ := r.FieldPos(0)
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		out = append(out, record{line: line, fields: fields})
	}
	if len(out) == 0 {
		return nil, nil, &ParseError{Msg: "no header row"}
	}

	header := out[0].fields
	rowNames := strings.TrimSpace(header[0]) == ""
	if !rowNames && len(out) > 1 && len(out[1].fields) == len(header)+1 {
		header = append([]string{""}, header...)
		out[0].fields = header
		rowNames = true
	}
	width := len(header)
	for i := range out {
		f := out[i].fields
		if len(f) != width {
			return nil, nil, &ParseError{Line: out[i].line, Msg: fmt.Sprintf("has %d fields, header has %d", len(f), width)}
		}
		for j := range f {
			f[j] = strings.TrimSpace(f[j])
		}
	}
	if !rowNames {
		return out, nil, nil
	}

	names = make([]string, 0, len(out)-1)
	for i := range out {
		if i > 0 {
			names = append(names, out[i].fields[0])
		}
		out[i].fields = out[i].fields[1:]
	}
	return out, names, nil
}

func resultsFromRecords(records []record) (*table.ResultTable, error) {
	header := records[0].fields
	col := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := col[h]; dup {
			return nil, &ParseError{Line: records[0].line, Msg: fmt.Sprintf("duplicate column %q", h)}
		}
		col[h] = i
	}
	for _, req := range []string{table.ColClusterID, table.ColPVal, table.ColPAdj} {
		if _, ok := col[req]; !ok {
			return nil, &ParseError{Line: records[0].line, Msg: fmt.Sprintf("missing required column %q", req)}
		}
	}

	rt := &table.ResultTable{Kind: table.ClusterReport}
	markerIdx, hasMarker := col[table.ColMarkerID]
	if hasMarker {
		rt.Kind = table.ClusterMarkerReport
	}

	rows := records[1:]
	rt.Rows = make([]table.Result, len(rows))
	for i, rec := range rows {
		f := rec.fields
		pval, err := parseNumber(f[col[table.ColPVal]])
		if err != nil {
			return nil, &ParseError{Line: rec.line, Msg: fmt.Sprintf("p_val %q is not a number", f[col[table.ColPVal]])}
		}
		padj, err := parseNumber(f[col[table.ColPAdj]])
		if err != nil {
			return nil, &ParseError{Line: rec.line, Msg: fmt.Sprintf("p_adj %q is not a number", f[col[table.ColPAdj]])}
		}
		rt.Rows[i] = table.Result{ClusterID: f[col[table.ColClusterID]], PVal: pval, PAdj: padj}
		if hasMarker {
			rt.Rows[i].MarkerID = f[markerIdx]
		}
	}

	for j, name := range header {
		switch name {
		case table.ColClusterID, table.ColMarkerID, table.ColPVal, table.ColPAdj:
			continue
		}
		cells := make([]string, len(rows))
		for i, rec := range rows {
			cells[i] = rec.fields[j]
		}
		rt.Extras = append(rt.Extras, extraColumn(name, cells))
	}
	return rt, nil
}

// extraColumn is numeric when every non-missing cell parses as a number.
func extraColumn(name string, cells []string) table.Column {
	nums := make([]float64, len(cells))
	for i, s := range cells {
		v, err := parseNumber(s)
		if err != nil {
			return table.Column{Name: name, Kind: table.Text, Strs: cells}
		}
		nums[i] = v
	}
	return table.Column{Name: name, Kind: table.Numeric, Nums: nums}
}

// countsFromRecords builds a count table. Cluster ids come from names when
// the input had a row-name column, otherwise from the first column.
func countsFromRecords(records []record, names []string) (*table.CountTable, error) {
	header := records[0].fields
	first := 1
	if names != nil {
		first = 0
	}
	if len(header)-first < 1 {
		return nil, &ParseError{Line: records[0].line, Msg: "count table needs a cluster column and at least one sample column"}
	}
	ct := &table.CountTable{
		Samples:  append([]string(nil), header[first:]...),
		Clusters: make([]string, 0, len(records)-1),
		Counts:   make([][]float64, 0, len(records)-1),
	}
	for i, rec := range records[1:] {
		row := make([]float64, len(rec.fields)-first)
		for j, s := range rec.fields[first:] {
			v, err := parseNumber(s)
			if err != nil || v != v {
				return nil, &ParseError{Line: rec.line, Msg: fmt.Sprintf("count %q for sample %q is not a number", s, ct.Samples[j])}
			}
			row[j] = v
		}
		if names != nil {
			ct.Clusters = append(ct.Clusters, names[i])
		} else {
			ct.Clusters = append(ct.Clusters, rec.fields[0])
		}
		ct.Counts = append(ct.Counts, row)
	}
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return ct, nil
}
