package either

import "fmt"

type tag uint8

const (
	tagInvalid tag = iota
	tagRight
	tagLeft
)

// Either holds exactly one of a success value (Right) or a failure value (Left).
type Either[T, E any] struct {
	tag   tag
	right T
	left  E
}

// Result is an Either whose failure side is a plain error.
type Result[T any] = Either[T, error]

func Right[T, E any](value T) Either[T, E] {
	return Either[T, E]{
		tag:   tagRight,
		right: value,
	}
}

func Left[T, E any](err E) Either[T, E] {
	return Either[T, E]{
		tag:  tagLeft,
		left: err,
	}
}

func (e Either[T, E]) valid() bool {
	return e.tag == tagRight || e.tag == tagLeft
}

func (e Either[T, E]) String() string {
	switch e.tag {
	case tagRight:
		return fmt.Sprintf("Right(%v)", e.right)
	case tagLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	default:
		return "Either(<invalid>)"
	}
}
