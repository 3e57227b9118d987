package deferred

import (
	"context"
	"fmt"

	"github.com/ib-77/either/pkg/either"
)

// RejectedError is returned by Await when the promise was settled from a Left.
type RejectedError[B any] struct {
	Reason B
}

func (e *RejectedError[B]) Error() string {
	return fmt.Sprintf("rejected: %v", e.Reason)
}

type Promise[B any] struct {
	done    chan struct{}
	outcome either.Either[B, B]
}

// CaseOf evaluates either.CaseOf on value and wraps the outcome in a
// Promise. Invalid input panics here, before a Promise exists.
func CaseOf[A, E, B any](h either.Handlers[A, E, B], value either.Either[A, E]) *Promise[B] {
	var outcome either.Either[B, B]
	if either.IsRight(value) {
		outcome = either.Right[B, B](either.CaseOf(h, value))
	} else {
		outcome = either.Left[B](either.CaseOf(h, value))
	}
	return settled(outcome)
}

func settled[B any](outcome either.Either[B, B]) *Promise[B] {
	p := &Promise[B]{done: make(chan struct{}), outcome: outcome}
	close(p.done)
	return p
}

// Done is closed once the promise is settled.
func (p *Promise[B]) Done() <-chan struct{} {
	return p.done
}

// Await returns the fulfilled value, a *RejectedError carrying the Left
// handler's output, or ctx.Err() if ctx ends first.
func (p *Promise[B]) Await(ctx context.Context) (B, error) {
	select {
	case <-p.done:
	default:
		select {
		case <-p.done:
		case <-ctx.Done():
			var zero B
			return zero, ctx.Err()
		}
	}

	v, reason, ok := either.Get(p.outcome)
	if !ok {
		var zero B
		return zero, &RejectedError[B]{Reason: reason}
	}
	return v, nil
}

// Settled reports the outcome as Right (fulfilled) or Left (rejected), and
// whether the promise has settled.
func (p *Promise[B]) Settled() (either.Either[B, B], bool) {
	select {
	case <-p.done:
		return p.outcome, true
	default:
		return either.Either[B, B]{}, false
	}
}
