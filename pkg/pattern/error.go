package pattern

// Error reports a failure that stopped the summary from being produced.
type Error struct {
	Source  string // stage that failed, e.g. "read", "summarize"
	Message string
}

func (e *Error) Type() PatternType { return PatternTypeError }
