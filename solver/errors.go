package solver

import "runtime"

// Error is a description of a solver error.
type Error string

func (e Error) Error() string { return "solver: " + string(e) }

var (
	// ErrCrossingInvariant indicates BuildLayout produced (or SetWord left)
	// two crossing slots disagreeing on the letter at their shared cell.
	// Seeing this means the grid package has a bug; it is never expected to
	// surface from well-formed input.
	ErrCrossingInvariant = Error("crossing invariant violated")
)

// errRecover turns an invariant-violation panic raised by errs.Assert into a
// returned error, the same convention the teacher package uses at its own
// package boundaries.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// No error.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
