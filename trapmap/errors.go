package trapmap

import "github.com/pkg/errors"

// Threading errors through every recursive split/merge/stitch call during
// construction would add a ton of complexity to the code. Instead internal
// invariant checks panic, and Build recovers to convert input problems to a
// normal error. Structural invariant violations are not recovered — they
// indicate a bug in the package, not a problem with the caller's input.

// InputError reports a problem with Build's input: a vertical segment, a
// non-finite coordinate, or (when detected) a pair of crossing segments.
type InputError struct{ err error }

func (e *InputError) Error() string { return e.err.Error() }
func (e *InputError) Unwrap() error { return e.err }

func inputErrorf(format string, args ...interface{}) *InputError {
	return &InputError{err: errors.Errorf(format, args...)}
}

// StructuralError reports a broken internal invariant (I1-I6). It is never
// returned to a caller; recovering one and continuing would hide a bug.
type StructuralError struct{ err error }

func (e *StructuralError) Error() string { return e.err.Error() }
func (e *StructuralError) Unwrap() error { return e.err }

func structuralErrorf(format string, args ...interface{}) {
	panic(&StructuralError{err: errors.Errorf(format, args...)})
}

// recoverInputError converts a panicked *InputError back into a returned
// error. Any other panic (including *StructuralError) keeps unwinding.
func recoverInputError(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InputError); ok {
		*errp = ie
		return
	}
	panic(r)
}
