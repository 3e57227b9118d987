package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/either/pkg/either"
)

var ErrStepLimit = errors.New("chain step limit reached")

// Chain wraps an either.Either with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx   context.Context
	id    uuid.UUID
	steps int
	value either.Either[T, E]
}

// Start creates a new chain from an Either. It panics like the either
// combinators when value is not a valid Either.
func Start[T, E any](ctx context.Context, value either.Either[T, E]) *Chain[T, E] {
	id, ok := GetID(ctx)
	if !ok {
		id = uuid.New()
	}

	kind := variant(value)
	c := &Chain[T, E]{ctx: ctx, id: id, value: value}
	c.logger().Debug().
		Str("chain", id.String()).
		Str("variant", kind).
		Msg("chain started")
	return c
}

func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, either.Right[T, E](value))
}

func FromError[T any](ctx context.Context, value T, err error) *Chain[T, error] {
	return Start(ctx, either.FromError(value, err))
}

func (c *Chain[T, E]) Either() either.Either[T, E] {
	return c.value
}

func (c *Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// Steps is the number of steps applied since Start, skipped ones included.
func (c *Chain[T, E]) Steps() int {
	return c.steps
}

// Then chains a step that returns either.Either[U, E]
func Then[T, U, E any](c *Chain[T, E], onRight func(context.Context, T) either.Either[U, E]) *Chain[U, E] {
	return next(c, "then", either.AndThen(func(t T) either.Either[U, E] {
		return onRight(c.ctx, t)
	}, c.value))
}

// Map chains a pure transformation; a panic inside onRight turns the chain Left
func Map[T, U, E any](c *Chain[T, E], onRight func(context.Context, T) U) *Chain[U, E] {
	return next(c, "map", either.Map(func(t T) U {
		return onRight(c.ctx, t)
	}, c.value))
}

// Ensure performs a side effect without changing the value
func (c *Chain[T, E]) Ensure(onRight func(context.Context, T)) *Chain[T, E] {
	return next(c, "ensure", either.Tee(func(t T) {
		onRight(c.ctx, t)
	}, c.value))
}

// Times applies onRight n times, stopping early once the chain is Left.
func (c *Chain[T, E]) Times(n int, onRight func(context.Context, T) either.Either[T, E]) *Chain[T, E] {
	for range n {
		if either.IsLeft(c.value) {
			return c
		}
		c = Then(c, onRight)
	}
	return c
}

// RepeatUntil applies onRight until the chain is Left or until reports true
// for the current value. With a step limit in the context the loop stops
// after that many iterations and the chain turns Left with ErrStepLimit; if E
// cannot hold an error, RepeatUntil panics with it instead.
func (c *Chain[T, E]) RepeatUntil(onRight func(context.Context, T) either.Either[T, E],
	until func(context.Context, T) bool) *Chain[T, E] {

	limit := GetStepLimit(c.ctx, DefaultStepLimit)

	for i := 0; ; i++ {
		if either.IsLeft(c.value) {
			return c
		}
		if v, _, _ := either.Get(c.value); until(c.ctx, v) {
			return c
		}
		if limit > 0 && i >= limit {
			err := fmt.Errorf("%w: %d", ErrStepLimit, limit)
			payload, ok := any(err).(E)
			if !ok {
				panic(err)
			}
			return next(c, "repeat", either.Left[T](payload))
		}
		c = Then(c, onRight)
	}
}

func (c *Chain[T, E]) WithDefault(defaultValue T) T {
	c.finish()
	return either.WithDefault(c.value, defaultValue)
}

// CaseOf collapses the chain by calling exactly one of the handlers
func CaseOf[T, E, B any](c *Chain[T, E], h either.Handlers[T, E, B]) B {
	c.finish()
	return either.CaseOf(h, c.value)
}

func (c *Chain[T, E]) logger() *zerolog.Logger {
	return zerolog.Ctx(c.ctx)
}

func (c *Chain[T, E]) finish() {
	c.logger().Debug().
		Str("chain", c.id.String()).
		Int("steps", c.steps).
		Str("variant", variant(c.value)).
		Msg("chain finished")
}

func next[T, U, E any](c *Chain[T, E], op string, value either.Either[U, E]) *Chain[U, E] {
	n := &Chain[U, E]{ctx: c.ctx, id: c.id, steps: c.steps + 1, value: value}

	from, to := variant(c.value), variant(value)
	ev := c.logger().Debug()
	if from == "right" && to == "left" {
		_, payload, _ := either.Get(value)
		ev = c.logger().Warn().Str("error", fmt.Sprint(payload))
	}
	ev.Str("chain", c.id.String()).
		Int("step", n.steps).
		Str("op", op).
		Str("from", from).
		Str("to", to).
		Bool("skipped", from == "left").
		Msg("either step")

	return n
}

func variant[T, E any](e either.Either[T, E]) string {
	if either.IsRight(e) {
		return "right"
	}
	return "left"
}
