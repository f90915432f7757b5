// Package mapper converts summary tables into visualization patterns.
package mapper

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/topclust/pkg/pattern"
	"github.com/dkoosis/topclust/pkg/table"
)

const (
	kindSuccess = "success"
	kindWarning = "warning"
	kindInfo    = "info"
)

// DefaultAlpha is the adjusted p-value below which a row is marked
// significant.
const DefaultAlpha = 0.05

// Meta describes how a table was produced, for the summary header.
type Meta struct {
	OrderBy string  // empty when rows are in input order
	Alpha   float64 // rows with p_adj below this are marked; 0 disables
}

var printer = message.NewPrinter(language.English)

// FromTable converts a summary table into a Summary header followed by a
// Grid of its cells.
func FromTable(t *table.Table, meta Meta) []pattern.Pattern {
	headers := t.Columns()
	grid := &pattern.Grid{
		Headers: headers,
		Rows:    displayRows(t),
		Numeric: make([]bool, len(headers)),
		Marked:  make([]bool, t.Len()),
		Total:   t.Total(),
	}
	for i, h := range headers {
		grid.Numeric[i] = isNumericColumn(h)
	}

	significant := 0
	if meta.Alpha > 0 {
		for r := range grid.Marked {
			p, err := strconv.ParseFloat(t.Cell(r, table.ColPAdj), 64)
			if err == nil && p < meta.Alpha {
				grid.Marked[r] = true
				significant++
			}
		}
	}

	return []pattern.Pattern{summaryFor(t, meta, significant), grid}
}

func summaryFor(t *table.Table, meta Meta, significant int) *pattern.Summary {
	unit := "clusters"
	kind := pattern.SummaryKindDA
	if t.Kind() == table.ClusterMarkerReport {
		unit = "cluster-marker combinations"
		kind = pattern.SummaryKindDS
	}

	label := printer.Sprintf("%s RESULTS: %d %s", t.Kind().Short(), t.Total(), unit)
	if t.Truncated() {
		label = printer.Sprintf("%s RESULTS: top %d of %d %s", t.Kind().Short(), t.Len(), t.Total(), unit)
	}

	order := meta.OrderBy
	if order == "" {
		order = "input order"
	}
	metrics := []pattern.SummaryItem{
		{Label: "Shown", Value: printer.Sprintf("%d of %d rows", t.Len(), t.Total()), Kind: kindInfo},
		{Label: "Ordered by", Value: order, Kind: kindInfo},
	}
	if meta.Alpha > 0 {
		k := kindWarning
		if significant > 0 {
			k = kindSuccess
		}
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Significant",
			Value: printer.Sprintf("%d shown with p_adj < %v", significant, meta.Alpha),
			Kind:  k,
		})
	}
	if n := countSamples(t.Columns()); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Samples",
			Value: printer.Sprintf("%d", n),
			Kind:  kindInfo,
		})
	}
	return &pattern.Summary{Label: label, Kind: kind, Metrics: metrics}
}

// displayRows renders every cell; proportions are shown to two decimals.
func displayRows(t *table.Table) [][]string {
	rows := t.Rows()
	for i, h := range t.Columns() {
		if !strings.HasPrefix(h, table.PropsPrefix) {
			continue
		}
		col, _ := t.Column(h)
		for r := range rows {
			if v, ok := col.Float(r); ok {
				rows[r][i] = strconv.FormatFloat(v, 'f', 2, 64)
			}
		}
	}
	return rows
}

func isNumericColumn(name string) bool {
	switch name {
	case table.ColPVal, table.ColPAdj:
		return true
	}
	return strings.HasPrefix(name, table.CountsPrefix) || strings.HasPrefix(name, table.PropsPrefix)
}

// countSamples counts distinct samples among appended columns.
func countSamples(cols []string) int {
	seen := map[string]bool{}
	for _, c := range cols {
		switch {
		case strings.HasPrefix(c, table.CountsPrefix):
			seen[strings.TrimPrefix(c, table.CountsPrefix)] = true
		case strings.HasPrefix(c, table.PropsPrefix):
			seen[strings.TrimPrefix(c, table.PropsPrefix)] = true
		}
	}
	return len(seen)
}

// FromError reports a failed summary as an Error pattern, so automation
// reading JSON output sees the failure in-band.
func FromError(source string, err error) []pattern.Pattern {
	return []pattern.Pattern{&pattern.Error{Source: source, Message: err.Error()}}
}
