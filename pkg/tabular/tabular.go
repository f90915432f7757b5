// Package tabular reads result and count tables from delimited text (TSV,
// CSV) and JSON, the forms upstream analysis steps export them in.
package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dkoosis/topclust/internal/detect"
	"github.com/dkoosis/topclust/pkg/table"
)

// ParseError locates a problem in the input.
type ParseError struct {
	Line int // 1-based; 0 when not tied to a line
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// ReadResults parses a result table. Format Unknown is sniffed.
func ReadResults(data []byte, format detect.Format) (*table.ResultTable, error) {
	if format == detect.Unknown {
		format = detect.Sniff(data)
	}
	switch format {
	case detect.TSV, detect.CSV:
		// Result tables carry cluster_id as a column; row names are
		// upstream row labels and are dropped.
		records, _, err := readDelimited(data, format)
		if err != nil {
			return nil, err
		}
		return resultsFromRecords(records)
	case detect.ResultsJSON:
		return resultsFromJSON(data)
	case detect.CombinedJSON:
		c, err := ReadCombined(data)
		if err != nil {
			return nil, err
		}
		return c.Res, nil
	default:
		return nil, fmt.Errorf("unrecognized result table format %s (expected TSV, CSV, or JSON)", format)
	}
}

// ReadCounts parses a cluster-by-sample count table. Format Unknown is
// sniffed.
func ReadCounts(data []byte, format detect.Format) (*table.CountTable, error) {
	if format == detect.Unknown {
		format = detect.Sniff(data)
	}
	switch format {
	case detect.TSV, detect.CSV:
		records, names, err := readDelimited(data, format)
		if err != nil {
			return nil, err
		}
		return countsFromRecords(records, names)
	case detect.CountsJSON:
		return countsFromJSON(data)
	default:
		return nil, fmt.Errorf("unrecognized count table format %s (expected TSV, CSV, or JSON)", format)
	}
}

// missing reports whether a cell holds no value.
func missing(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

// parseNumber parses a numeric cell, mapping missing markers to NaN.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if missing(s) {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
