package either

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrNotAnEither    = errors.New("not an Either")
	ErrMissingHandler = errors.New("missing case handler")
)

// NotAnEitherError reports a value that was expected to be a Right or a Left.
type NotAnEitherError struct {
	Value any
}

func (e *NotAnEitherError) Error() string {
	return fmt.Sprintf("Value %q is not an Either type", fmt.Sprint(e.Value))
}

func (e *NotAnEitherError) Unwrap() error {
	return ErrNotAnEither
}

// PanicError carries a value recovered from a panic whose type could not be
// used as the Left payload directly.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Of checks an arbitrary value and returns it as an Either[T, E].
// Both Either[T, E] and non-nil *Either[T, E] are accepted when valid.
func Of[T, E any](v any) (Either[T, E], error) {
	switch x := v.(type) {
	case Either[T, E]:
		if x.valid() {
			return x, nil
		}
	case *Either[T, E]:
		if x != nil && x.valid() {
			return *x, nil
		}
	}
	return Either[T, E]{}, &NotAnEitherError{Value: v}
}

// Validate returns a *NotAnEitherError when e was not built by Right, Left
// or a combinator.
func Validate[T, E any](e Either[T, E]) error {
	if e.valid() {
		return nil
	}
	return &NotAnEitherError{Value: e}
}

func mustBeEither[T, E any](e Either[T, E]) {
	if err := Validate(e); err != nil {
		panic(err)
	}
}

// leftFromPanic converts a recovered value into a Left payload. It reports
// false when neither the value nor its *PanicError wrapper fits E.
func leftFromPanic[E any](r any) (E, *PanicError, bool) {
	if e, ok := r.(E); ok {
		return e, nil, true
	}
	pe := newPanicError(r)
	if e, ok := any(pe).(E); ok {
		return e, pe, true
	}
	var zero E
	return zero, pe, false
}
