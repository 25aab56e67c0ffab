package spec

// Error reports a structural or type violation in a spec document.
type Error struct {
	// Field names the offending value, e.g. "title" or "sections[2].content".
	Field string
	// Index is the 1-based section index, or 0 when the error is not section scoped.
	Index int
	Msg   string
	Err   error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }
