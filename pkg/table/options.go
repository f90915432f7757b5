package table

import "fmt"

// Options controls how a result table is summarized. It is a plain value;
// start from DefaultOptions and override fields.
type Options struct {
	Order      bool   // sort rows by OrderBy, ascending
	OrderBy    string // column to sort by
	All        bool   // return every row instead of the top TopN
	TopN       int    // rows kept when All is false
	ShowCounts bool   // append counts_<sample> columns
	ShowProps  bool   // append props_<sample> columns (percent of sample total)
	FormatVals bool   // render p_val and p_adj in scientific notation
	Digits     int    // digits after the decimal point when formatting
}

// Defaults.
const (
	DefaultOrderBy = ColPAdj
	DefaultTopN    = 20
	DefaultDigits  = 2
)

// DefaultOptions returns the standard summary settings: ordered by p_adj,
// top 20 rows, p-values formatted to two digits, no count columns.
func DefaultOptions() Options {
	return Options{
		Order:      true,
		OrderBy:    DefaultOrderBy,
		TopN:       DefaultTopN,
		FormatVals: true,
		Digits:     DefaultDigits,
	}
}

// Augmented reports whether count or proportion columns are requested.
func (o Options) Augmented() bool { return o.ShowCounts || o.ShowProps }

// Validate rejects out-of-range settings.
func (o Options) Validate() error {
	if o.TopN < 1 {
		return fmt.Errorf("top_n must be a positive integer, got %d", o.TopN)
	}
	if o.Digits < 0 {
		return fmt.Errorf("digits must be non-negative, got %d", o.Digits)
	}
	return nil
}
