package summarize

import (
	"fmt"

	"github.com/dkoosis/topclust/pkg/table"
)

// Input is what Summarize works on: either Separate tables or the Combined
// wrapper from a run-everything step. Both resolve to the same pair.
type Input interface {
	resolve() (*table.ResultTable, *table.CountTable, error)
}

// Separate supplies a result table and, optionally, its count table.
type Separate struct {
	Results *table.ResultTable
	Counts  *table.CountTable // may be nil
}

func (s Separate) resolve() (*table.ResultTable, *table.CountTable, error) {
	if s.Results == nil {
		return nil, nil, fmt.Errorf("%w: no result table", ErrMissingInput)
	}
	return s.Results, s.Counts, nil
}

// Combined supplies both tables through the upstream wrapper.
type Combined struct {
	Wrapper table.Combined
}

func (c Combined) resolve() (*table.ResultTable, *table.CountTable, error) {
	if c.Wrapper.Res == nil {
		return nil, nil, fmt.Errorf("%w: combined input has no results", ErrMissingInput)
	}
	return c.Wrapper.Res, c.Wrapper.Counts, nil
}
