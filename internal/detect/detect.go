// Package detect sniffs input bytes to determine the table format.
package detect

import (
	"bytes"
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown      Format = iota
	TSV                 // tab-separated table with a header row
	CSV                 // comma-separated table with a header row
	ResultsJSON         // JSON array of result records
	CountsJSON          // JSON object with clusters, samples, counts
	CombinedJSON        // JSON object with res and d_counts
)

func (f Format) String() string {
	switch f {
	case TSV:
		return "tsv"
	case CSV:
		return "csv"
	case ResultsJSON:
		return "results-json"
	case CountsJSON:
		return "counts-json"
	case CombinedJSON:
		return "combined-json"
	default:
		return "unknown"
	}
}

// Delimited reports whether f is a delimited text format.
func (f Format) Delimited() bool { return f == TSV || f == CSV }

// Sniff examines input to determine its format. JSON documents must be
// complete; delimited text only needs its first line.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		if isResultsJSON(data) {
			return ResultsJSON
		}
		return Unknown
	case '{':
		return sniffObject(data)
	}

	line := data
	if end := bytes.IndexByte(data, '\n'); end >= 0 {
		line = data[:end]
	}
	switch {
	case bytes.IndexByte(line, '\t') >= 0:
		return TSV
	case bytes.IndexByte(line, ',') >= 0:
		return CSV
	}
	return Unknown
}

func isResultsJSON(data []byte) bool {
	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	if len(probe) == 0 {
		return true
	}
	_, ok := probe[0]["cluster_id"]
	return ok
}

func sniffObject(data []byte) Format {
	var probe struct {
		Res      json.RawMessage `json:"res"`
		DCounts  json.RawMessage `json:"d_counts"`
		Clusters json.RawMessage `json:"clusters"`
		Counts   json.RawMessage `json:"counts"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Unknown
	}
	switch {
	case probe.Res != nil:
		return CombinedJSON
	case probe.Clusters != nil && probe.Counts != nil:
		return CountsJSON
	}
	return Unknown
}
