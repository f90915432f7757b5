package render

import (
	"strings"

	"github.com/dkoosis/topclust/pkg/pattern"
)

// TSV renders grids as tab-separated values, one header line then one line
// per row. Other patterns are omitted so the output stays machine-readable.
type TSV struct{}

// NewTSV creates a TSV renderer.
func NewTSV() *TSV {
	return &TSV{}
}

// Render formats every grid as TSV.
func (t *TSV) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		g, ok := p.(*pattern.Grid)
		if !ok {
			continue
		}
		writeTSVLine(&sb, g.Headers)
		for _, row := range g.Rows {
			writeTSVLine(&sb, row)
		}
	}
	return sb.String()
}

func writeTSVLine(sb *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strings.NewReplacer("\t", " ", "\n", " ").Replace(c))
	}
	sb.WriteByte('\n')
}
