package summarize

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by Summarize wraps exactly one of these;
// match with errors.Is.
var (
	ErrMissingInput   = errors.New("missing input")
	ErrAlignment      = errors.New("cluster identifiers do not match between results and counts")
	ErrColumnNotFound = errors.New("column not found")
	ErrInvalidOptions = errors.New("invalid options")
	ErrInvalidInput   = errors.New("invalid input")
)

// AlignmentError describes how a count table fails to line up with the
// cluster blocks of a result table.
type AlignmentError struct {
	ResultRows int
	CountRows  int
	Row        int    // first offending result row (0-based), -1 for a size mismatch
	Want       string // cluster id expected at Row
	Got        string // cluster id found at Row
}

func (e *AlignmentError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %d result rows is not a positive multiple of %d count rows",
			ErrAlignment, e.ResultRows, e.CountRows)
	}
	return fmt.Sprintf("%v: result row %d has cluster %q, counts expect %q",
		ErrAlignment, e.Row+1, e.Got, e.Want)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// ColumnError names a column that was required but absent.
type ColumnError struct {
	Column    string
	Available []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v: %q (have %s)", ErrColumnNotFound, e.Column, strings.Join(e.Available, ", "))
}

func (e *ColumnError) Unwrap() error { return ErrColumnNotFound }
