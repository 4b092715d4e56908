package crashreport

// ErrorKind labels the category of a reported failure.
// Kinds are string-based so they render as their symbolic name; callers may
// define their own.
type ErrorKind string

const (
	// KindAppFail marks a failure of the application as a whole.
	KindAppFail ErrorKind = "AppFail"

	// KindOtherFail marks any other failure.
	KindOtherFail ErrorKind = "OtherFail"
)

// String returns the symbolic name of the kind.
func (k ErrorKind) String() string {
	return string(k)
}
