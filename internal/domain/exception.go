package domain

// StackFrame is one call-site entry of an exception trace.
type StackFrame struct {
	DeclaringType string
	Method        string
	SourceFile    string
	// Line is 0 when the trace carried no line number
	// ("Unknown Source", "Native Method").
	Line int
}

// FilteredFrame is one element of a filtered stack: either a kept frame or an
// omission marker counting consecutive frames dropped by the package filter.
type FilteredFrame struct {
	Frame   *StackFrame
	Omitted int
}

// ExceptionRecord is a single exception signature with its frames. Cause links
// the "Caused by:" chain; the chain is always cycle-free by construction.
type ExceptionRecord struct {
	Type    string
	Message string
	Frames  []StackFrame
	Cause   *ExceptionRecord
}

// Root walks the cause chain and returns the innermost record, which usually
// names the actual defect.
func (r *ExceptionRecord) Root() *ExceptionRecord {
	rec := r
	for rec.Cause != nil {
		rec = rec.Cause
	}
	return rec
}

// Depth returns the number of records in the cause chain, the record itself
// included.
func (r *ExceptionRecord) Depth() int {
	n := 0
	for rec := r; rec != nil; rec = rec.Cause {
		n++
	}
	return n
}
