package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/topclust/pkg/pattern"
)

// LLM renders patterns as terse plain text optimized for AI consumption.
// Zero ANSI codes, a SCOPE line, then the grid as aligned columns.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns for LLM consumption.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.Grid:
			l.renderGrid(&sb, v)
		case *pattern.Error:
			sb.WriteString("ERROR " + v.Source + ": " + v.Message + "\n")
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	for _, m := range s.Metrics {
		sb.WriteString("  " + m.Label + ": " + m.Value + "\n")
	}
}

func (l *LLM) renderGrid(sb *strings.Builder, g *pattern.Grid) {
	if len(g.Headers) == 0 {
		return
	}
	widths := columnWidths(g, 0)
	sb.WriteString("\n")
	sb.WriteString(joinCells(g.Headers, widths, g.Numeric) + "\n")
	for r, row := range g.Rows {
		line := joinCells(row, widths, g.Numeric)
		if r < len(g.Marked) && g.Marked[r] {
			line += " *"
		}
		sb.WriteString(line + "\n")
	}
	if g.Total > len(g.Rows) {
		sb.WriteString(fmt.Sprintf("... (%d more rows)\n", g.Total-len(g.Rows)))
	}
}
