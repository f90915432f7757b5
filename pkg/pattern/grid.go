package pattern

// Grid is a rectangular table of display cells.
type Grid struct {
	Label   string
	Headers []string
	Rows    [][]string
	Numeric []bool // per column: right-align
	Marked  []bool // per row: significant result, rendered emphasized
	Total   int    // rows before truncation
}

func (g *Grid) Type() PatternType { return PatternTypeGrid }
