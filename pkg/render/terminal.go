package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/topclust/pkg/pattern"
)

// maxCellWidth caps a column's display width; longer cells are cut with "...".
const maxCellWidth = 40

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Grid:
		return t.renderGrid(v)
	case *pattern.Error:
		return t.theme.Error.Render(t.theme.Icons.Fail+" "+v.Source+": "+v.Message) + "\n"
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderGrid(g *pattern.Grid) string {
	if len(g.Headers) == 0 {
		return ""
	}
	widths := columnWidths(g, maxCellWidth)

	var sb strings.Builder
	if g.Label != "" {
		sb.WriteString(t.theme.Bold.Render(g.Label))
		sb.WriteString("\n")
	}

	// Casers are not safe for concurrent use; one per render.
	upper := cases.Upper(language.English)
	headers := make([]string, len(g.Headers))
	for i, h := range g.Headers {
		headers[i] = upper.String(h)
	}
	sb.WriteString("  ")
	sb.WriteString(t.theme.Header.Render(joinCells(headers, widths, g.Numeric)))
	sb.WriteString("\n  ")
	sb.WriteString(t.theme.Muted.Render(strings.Repeat(t.theme.Icons.Rule, ruleWidth(widths, t.width-2))))
	sb.WriteString("\n")

	for r, row := range g.Rows {
		line := joinCells(row, widths, g.Numeric)
		sb.WriteString("  ")
		if r < len(g.Marked) && g.Marked[r] {
			sb.WriteString(t.theme.Marked.Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	if g.Total > len(g.Rows) {
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %s %d more rows not shown", t.theme.Icons.Bullet, g.Total-len(g.Rows))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

// columnWidths returns the display width of each column, capped at limit.
func columnWidths(g *pattern.Grid, limit int) []int {
	widths := make([]int, len(g.Headers))
	for i, h := range g.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	if limit > 0 {
		for i := range widths {
			if widths[i] > limit {
				widths[i] = limit
			}
		}
	}
	return widths
}

// joinCells pads each cell to its column width, right-aligning numeric
// columns, and joins them with two spaces.
func joinCells(cells []string, widths []int, numeric []bool) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if runewidth.StringWidth(cell) > w {
			cell = runewidth.Truncate(cell, w, "...")
		}
		if i < len(numeric) && numeric[i] {
			parts[i] = padLeft(cell, w)
		} else {
			parts[i] = padRight(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func ruleWidth(widths []int, max int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	if max > 0 && total > max {
		return max
	}
	return total
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
