// Package render provides output renderers for topclust's patterns.
package render

import "github.com/dkoosis/topclust/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Output modes accepted by New.
const (
	ModeTerminal = "terminal"
	ModeLLM      = "llm"
	ModeJSON     = "json"
	ModeTSV      = "tsv"
)

// Modes lists every output mode.
func Modes() []string { return []string{ModeTerminal, ModeLLM, ModeJSON, ModeTSV} }

// ValidMode reports whether mode names a renderer.
func ValidMode(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

// New returns the renderer for mode. Terminal output uses theme and width;
// unknown modes fall back to terminal.
func New(mode string, theme Theme, width int) Renderer {
	switch mode {
	case ModeJSON:
		return NewJSON()
	case ModeLLM:
		return NewLLM()
	case ModeTSV:
		return NewTSV()
	default:
		return NewTerminal(theme, width)
	}
}
