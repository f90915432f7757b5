package pattern

// SummaryKind identifies the report the summary heads, for renderer dispatch.
type SummaryKind string

const (
	SummaryKindDA SummaryKind = "da" // per-cluster results
	SummaryKindDS SummaryKind = "ds" // per-cluster-marker results
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string
	Kind    SummaryKind
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Clusters", "Rows", "Ordered by"
	Value string // formatted value
	Kind  string // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
