package render

import (
	"encoding/json"

	"github.com/dkoosis/topclust/pkg/pattern"
)

// JSON renders patterns as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version  string        `json:"version"`
	Patterns []jsonPattern `json:"patterns"`
}

type jsonPattern struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// jsonGrid keys each row by column name so consumers need not track
// positions.
type jsonGrid struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Marked  []bool              `json:"significant"`
	Total   int                 `json:"total"`
}

// Render formats all patterns as JSON.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version:  "1.0",
		Patterns: make([]jsonPattern, 0, len(patterns)),
	}

	for _, p := range patterns {
		var data interface{} = p
		if g, ok := p.(*pattern.Grid); ok {
			data = gridJSON(g)
		}
		out.Patterns = append(out.Patterns, jsonPattern{
			Type: string(p.Type()),
			Data: data,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

func gridJSON(g *pattern.Grid) jsonGrid {
	out := jsonGrid{
		Columns: g.Headers,
		Rows:    make([]map[string]string, len(g.Rows)),
		Marked:  g.Marked,
		Total:   g.Total,
	}
	for r, row := range g.Rows {
		m := make(map[string]string, len(g.Headers))
		for i, h := range g.Headers {
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out.Rows[r] = m
	}
	return out
}
