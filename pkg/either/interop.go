package either

// Try lifts a call with the (value, error) convention into a Result.
// Unlike TryCatch it does not recover panics.
func Try[A any](f func() (A, error)) Result[A] {
	return FromError(f())
}

func FromError[A any](value A, err error) Result[A] {
	if err != nil {
		return Left[A](err)
	}
	return Right[A, error](value)
}

// ToError unwraps a Result back into (value, error). A Left yields the zero
// value of A.
func ToError[A any](r Result[A]) (A, error) {
	mustBeEither(r)
	if r.tag == tagLeft {
		var zero A
		return zero, r.left
	}
	return r.right, nil
}
