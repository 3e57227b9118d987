package either

import "fmt"

// Handlers are the two branches of a CaseOf. Only the branch matching the
// Either's variant is called.
type Handlers[A, E, B any] struct {
	Right func(A) B
	Left  func(E) B
}

// TryCatch calls f and returns its value as a Right. Any panic raised by f
// is recovered and passed to onError, whose result becomes the Left.
func TryCatch[A, E any](f func() A, onError func(caught any) E) (out Either[A, E]) {
	defer func() {
		if r := recover(); r != nil {
			out = Left[A](onError(r))
		}
	}()
	return Right[A, E](f())
}

func IsRight[T, E any](e Either[T, E]) bool {
	mustBeEither(e)
	return e.tag == tagRight
}

func IsLeft[T, E any](e Either[T, E]) bool {
	mustBeEither(e)
	return e.tag == tagLeft
}

func WithDefault[T, E any](e Either[T, E], defaultValue T) T {
	mustBeEither(e)
	if e.tag == tagRight {
		return e.right
	}
	return defaultValue
}

// CaseOf calls exactly one of the handlers with the wrapped payload and
// returns its result. A nil handler on the selected branch panics with
// ErrMissingHandler.
func CaseOf[A, E, B any](h Handlers[A, E, B], e Either[A, E]) B {
	mustBeEither(e)
	if e.tag == tagRight {
		if h.Right == nil {
			panic(fmt.Errorf("%w: Right", ErrMissingHandler))
		}
		return h.Right(e.right)
	}
	if h.Left == nil {
		panic(fmt.Errorf("%w: Left", ErrMissingHandler))
	}
	return h.Left(e.left)
}

// Fold is CaseOf with positional handlers, which lets the compiler infer
// every type parameter.
func Fold[A, E, B any](e Either[A, E], onRight func(A) B, onLeft func(E) B) B {
	return CaseOf(Handlers[A, E, B]{Right: onRight, Left: onLeft}, e)
}

// Map applies f to a Right value. A Left is passed through without calling f.
// If f panics, the recovered value becomes the Left payload: as is when it
// is an E, otherwise wrapped in *PanicError. Map re-panics with the
// *PanicError only when E can hold neither.
func Map[A, B, E any](f func(A) B, e Either[A, E]) (out Either[B, E]) {
	mustBeEither(e)
	if e.tag == tagLeft {
		return Left[B](e.left)
	}

	defer func() {
		if r := recover(); r != nil {
			payload, pe, ok := leftFromPanic[E](r)
			if !ok {
				panic(pe)
			}
			out = Left[B](payload)
		}
	}()
	return Right[B, E](f(e.right))
}

// AndThen chains a step that can fail. A Left is passed through without
// calling f; a Right is handed to f and f's result is returned as is.
// Panics raised by f are not recovered.
func AndThen[A, B, E any](f func(A) Either[B, E], e Either[A, E]) Either[B, E] {
	mustBeEither(e)
	if e.tag == tagLeft {
		return Left[B](e.left)
	}
	return f(e.right)
}

func MapLeft[A, E, F any](f func(E) F, e Either[A, E]) Either[A, F] {
	mustBeEither(e)
	if e.tag == tagRight {
		return Right[A, F](e.right)
	}
	return Left[A](f(e.left))
}

// Tee runs f on a Right value for its side effects and returns e unchanged.
func Tee[T, E any](f func(T), e Either[T, E]) Either[T, E] {
	mustBeEither(e)
	if e.tag == tagRight {
		f(e.right)
	}
	return e
}

// Get returns both payloads and whether e is a Right. The payload of the
// inactive side is its zero value.
func Get[T, E any](e Either[T, E]) (T, E, bool) {
	mustBeEither(e)
	return e.right, e.left, e.tag == tagRight
}
