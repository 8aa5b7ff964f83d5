package pipeline

import "fmt"

// Kind distinguishes failure classes at component boundaries so the driver
// can tell skip-this-item conditions from abort-the-cycle conditions.
type Kind string

const (
	KindAuth         Kind = "authentication"
	KindConnectivity Kind = "connectivity"
	KindFetch        Kind = "fetch"
	KindIntake       Kind = "intake"
	KindPersistence  Kind = "persistence"
	KindFilesystem   Kind = "filesystem"
)

// Error wraps a component failure with its kind
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the failure ends the cycle rather than skipping the
// current item. Connection-level mail failures stop the run; everything else
// is logged per item and the batch continues.
func (e *Error) Fatal() bool {
	return e.Kind == KindAuth || e.Kind == KindConnectivity
}

func wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
