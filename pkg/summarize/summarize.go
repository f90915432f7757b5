// Package summarize turns differential abundance (DA) and differential state
// (DS) test results into a ranked, display-ready summary table.
//
// Summarize runs three steps over a private copy of the input:
//
//  1. augment: optionally append counts_<sample> and props_<sample> columns
//     from a per-cluster count table, replicated to one block per marker
//  2. order: optionally sort ascending by one column, stable on ties
//  3. select: keep the fixed columns for the report kind plus any appended
//     columns, format p-values, and cut to the top N rows
//
// The package does no I/O and holds no state. Callers' tables are only read.
package summarize

import (
	"fmt"

	"github.com/dkoosis/topclust/pkg/table"
)

// Summarize builds the summary table for in according to opts.
//
// Errors wrap ErrMissingInput, ErrAlignment, ErrColumnNotFound,
// ErrInvalidOptions, or ErrInvalidInput. Nothing is returned alongside an
// error.
func Summarize(in Input, opts table.Options) (*table.Table, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: no input", ErrMissingInput)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	res, counts, err := in.resolve()
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	kind := res.Kind

	f := newFrame(res)
	if opts.Augmented() {
		cols, err := augment(res, counts, opts)
		if err != nil {
			return nil, fmt.Errorf("adding counts: %w", err)
		}
		f.appendAugment(cols)
	}

	if opts.Order {
		if err := f.order(opts.OrderBy); err != nil {
			return nil, fmt.Errorf("ordering: %w", err)
		}
	}

	limit := opts.TopN
	if opts.All {
		limit = -1
	}
	cols, err := f.selectColumns(kind, limit)
	if err != nil {
		return nil, fmt.Errorf("selecting columns: %w", err)
	}
	if opts.FormatVals {
		formatPValues(cols, opts.Digits)
	}
	return table.New(kind, cols, f.rows), nil
}
