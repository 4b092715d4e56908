package crashreport

import "errors"

// ClassifiedError attaches an ErrorKind and a short message to a failure
// while preserving the original error as its cause.
//
// ClassifiedError is immutable once created and is compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap).
type ClassifiedError interface {
	error

	// Kind returns the classification of the failure.
	Kind() ErrorKind

	// Message returns the human-readable message.
	Message() string

	// TypeName returns the label used for the error in reports.
	// It is the symbolic name of Kind.
	TypeName() string

	// Unwrap returns the original error.
	Unwrap() error
}

// classifiedError is the concrete implementation of ClassifiedError.
type classifiedError struct {
	kind    ErrorKind
	message string
	cause   error
}

// Error returns the message only. The cause is reported as its own record.
func (e *classifiedError) Error() string {
	return e.message
}

// Kind returns the error kind.
func (e *classifiedError) Kind() ErrorKind {
	return e.kind
}

// Message returns the error message.
func (e *classifiedError) Message() string {
	return e.message
}

// TypeName returns the kind's symbolic name.
func (e *classifiedError) TypeName() string {
	return e.kind.String()
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *classifiedError) Unwrap() error {
	return e.cause
}

// Wrap classifies cause with the given kind and message.
// The result becomes the outermost node of the chain; cause is the next one.
// A nil cause yields a chain of length one.
//
// Example:
//
//	err := crashreport.Wrap(crashreport.KindAppFail, "oh my god app fail", err)
//	fmt.Println(err)             // oh my god app fail
//	fmt.Println(err.TypeName())  // AppFail
func Wrap(kind ErrorKind, message string, cause error) ClassifiedError {
	return &classifiedError{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

// GetKind returns the kind of the outermost ClassifiedError in err's chain.
// The boolean is false if the chain holds no ClassifiedError.
func GetKind(err error) (ErrorKind, bool) {
	var classified ClassifiedError
	if errors.As(err, &classified) {
		return classified.Kind(), true
	}
	return "", false
}
