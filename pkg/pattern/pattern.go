// Package pattern defines the semantic data types for topclust's output.
// Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of visualization pattern.
type PatternType string

const (
	PatternTypeSummary PatternType = "summary"
	PatternTypeGrid    PatternType = "grid"
	PatternTypeError   PatternType = "error"
)

// Pattern is the interface all visualization patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}
