package crashreport

// Frame is a single location in a stack trace.
// Empty strings and zero numbers mean the value is unknown.
type Frame struct {
	// AbsPath is the absolute path of the source file.
	AbsPath string

	// Function is the fully-qualified function name (pkg.Func or pkg.(*T).Method).
	Function string

	// Line is the 1-based line number.
	Line int

	// Column is the 1-based column. The Go runtime does not report columns,
	// so frames resolved from program counters leave it at zero.
	Column int
}

// Stacktrace is an ordered list of frames, oldest call first.
type Stacktrace struct {
	Frames []Frame
}

// ExceptionRecord is one node of a flattened error chain.
type ExceptionRecord struct {
	// Type is the label of the error (kind, code or Go type).
	Type string

	// Value is the display form of the error. Empty means no value.
	Value string

	// Stacktrace is the node's own trace. Nil means the node has none,
	// or its trace duplicates one reported earlier in the chain.
	Stacktrace *Stacktrace
}

// HasTrace reports whether the record still carries a stack trace.
func (r ExceptionRecord) HasTrace() bool {
	return r.Stacktrace != nil
}
