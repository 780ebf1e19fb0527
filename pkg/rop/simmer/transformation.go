package simmer

import (
	"context"
	"slices"

	"github.com/ib-77/simmer/pkg/rop"
	"github.com/ib-77/simmer/pkg/rop/deferred"
	"github.com/ib-77/simmer/pkg/rop/solo"
)

type kind uint8

const (
	kindStep kind = iota
	kindPipeline
)

// Transformation is a step or an ordered pipeline of transformations.
// The zero value is a step without a function; running it fails with ErrNilStep.
type Transformation[T any] struct {
	kind  kind
	name  string
	apply func(ctx context.Context, input T) rop.Result[T]
	steps []Transformation[T]
}

// Map is a step that cannot fail.
func Map[T any](fn func(ctx context.Context, input T) T) Transformation[T] {
	if fn == nil {
		return Transformation[T]{}
	}
	return Transformation[T]{
		apply: func(ctx context.Context, input T) rop.Result[T] {
			return solo.Map(ctx, rop.Success(input), fn)
		},
	}
}

// Try is a step that returns a value or an error.
func Try[T any](fn func(ctx context.Context, input T) (T, error)) Transformation[T] {
	if fn == nil {
		return Transformation[T]{}
	}
	return Transformation[T]{
		apply: func(ctx context.Context, input T) rop.Result[T] {
			return solo.Try(ctx, rop.Success(input), fn)
		},
	}
}

// Switch is a step that produces a rop.Result itself.
func Switch[T any](fn func(ctx context.Context, input T) rop.Result[T]) Transformation[T] {
	if fn == nil {
		return Transformation[T]{}
	}
	return Transformation[T]{
		apply: func(ctx context.Context, input T) rop.Result[T] {
			return solo.Switch(ctx, rop.Success(input), fn)
		},
	}
}

// Async is a step that returns its own deferred value. The run waits for it
// to settle before moving on.
func Async[T any](fn func(ctx context.Context, input T) *deferred.Deferred[T]) Transformation[T] {
	if fn == nil {
		return Transformation[T]{}
	}
	return Transformation[T]{
		apply: func(ctx context.Context, input T) rop.Result[T] {
			d := fn(ctx, input)
			if d == nil {
				return rop.Fail[T](deferred.ErrNilDeferred)
			}
			return d.Wait()
		},
	}
}

// Pipeline groups transformations to be applied in order. The slice is copied.
func Pipeline[T any](ts ...Transformation[T]) Transformation[T] {
	return Transformation[T]{
		kind:  kindPipeline,
		steps: slices.Clone(ts),
	}
}

// Named returns a copy of t labelled name. Step names show up in observers;
// the name of the transformation given to Run is the default run name.
func (t Transformation[T]) Named(name string) Transformation[T] {
	t.name = name
	return t
}

func (t Transformation[T]) Name() string {
	return t.name
}

func (t Transformation[T]) IsPipeline() bool {
	return t.kind == kindPipeline
}

// Len is the number of step applications a successful run performs.
func (t Transformation[T]) Len() int {
	if t.kind != kindPipeline {
		return 1
	}
	n := 0
	for _, s := range t.steps {
		n += s.Len()
	}
	return n
}

// Flatten returns a single-level pipeline holding the steps of t in
// execution order. Empty nested pipelines are kept as elements, so running
// the result fails in the same place running t would.
func Flatten[T any](t Transformation[T]) Transformation[T] {
	flat := Pipeline[T]().Named(t.name)
	if t.kind != kindPipeline {
		flat.steps = append(flat.steps, t)
		return flat
	}
	var walk func(ts []Transformation[T])
	walk = func(ts []Transformation[T]) {
		for _, s := range ts {
			switch {
			case s.kind != kindPipeline, len(s.steps) == 0:
				flat.steps = append(flat.steps, s)
			default:
				walk(s.steps)
			}
		}
	}
	walk(t.steps)
	return flat
}
