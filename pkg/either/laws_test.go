package either

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func drawEither(t *rapid.T) Either[int, string] {
	if rapid.Bool().Draw(t, "isRight") {
		return Right[int, string](rapid.Int().Draw(t, "right"))
	}
	return Left[int](rapid.String().Draw(t, "left"))
}

func TestLawFunctorIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEither(t)
		if got := Map(func(x int) int { return x }, e); got != e {
			t.Fatalf("identity law violated: %v != %v", got, e)
		}
	})
}

func TestLawFunctorComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEither(t)
		addend := rapid.IntRange(-100, 100).Draw(t, "addend")
		multiplier := rapid.IntRange(1, 10).Draw(t, "multiplier")

		f := func(x int) int { return x + addend }
		g := func(x int) int { return x * multiplier }

		lhs := Map(g, Map(f, e))
		rhs := Map(func(x int) int { return g(f(x)) }, e)
		if lhs != rhs {
			t.Fatalf("composition law violated: %v != %v", lhs, rhs)
		}
	})
}

func TestLawLeftAbsorption(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := Left[int](rapid.String().Draw(t, "left"))
		called := false

		mapped := Map(func(x int) int { called = true; return x }, e)
		bound := AndThen(func(x int) Either[int, string] { called = true; return Right[int, string](x) }, e)

		if mapped != e || bound != e {
			t.Fatalf("left not absorbed: map=%v andThen=%v want %v", mapped, bound, e)
		}
		if called {
			t.Fatal("function invoked on a Left")
		}
	})
}

func TestLawMonadLeftIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		limit := rapid.Int().Draw(t, "limit")
		f := func(x int) Either[int, string] {
			if x > limit {
				return Left[int]("over limit")
			}
			return Right[int, string](x)
		}

		if got, want := AndThen(f, Right[int, string](v)), f(v); got != want {
			t.Fatalf("left identity violated: %v != %v", got, want)
		}
	})
}

func TestLawWithDefault(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		d := rapid.Int().Draw(t, "d")
		e := rapid.String().Draw(t, "e")

		if got := WithDefault(Right[int, string](v), d); got != v {
			t.Fatalf("WithDefault(Right(%d), %d) = %d", v, d, got)
		}
		if got := WithDefault(Left[int](e), d); got != d {
			t.Fatalf("WithDefault(Left(%q), %d) = %d", e, d, got)
		}
	})
}

func TestLawTryCatchRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		msg := rapid.String().Draw(t, "msg")
		raise := rapid.Bool().Draw(t, "raise")
		onError := func(caught any) string { return "caught:" + caught.(string) }

		got := TryCatch(func() int {
			if raise {
				panic(msg)
			}
			return v
		}, onError)

		want := Right[int, string](v)
		if raise {
			want = Left[int](onError(msg))
		}
		if got != want {
			t.Fatalf("TryCatch = %v, want %v", got, want)
		}
	})
}

func TestLawPanicToLeft(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		err := errors.New(rapid.String().Draw(t, "err"))

		got := Map(func(int) int { panic(err) }, Right[int, error](v))
		if got != Left[int](err) {
			t.Fatalf("Map panic = %v, want Left(%v)", got, err)
		}
	})
}
