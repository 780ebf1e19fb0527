package chain

import (
	"context"

	"github.com/ib-77/simmer/pkg/rop"
	"github.com/ib-77/simmer/pkg/rop/deferred"
	"github.com/ib-77/simmer/pkg/rop/simmer"
	"github.com/ib-77/simmer/pkg/rop/solo"
)

// Chain accumulates transformations. Every method returns a new Chain and
// leaves the receiver untouched, so a common prefix can be shared.
type Chain[T any] struct {
	name  string
	steps []simmer.Transformation[T]
}

// Start creates an empty chain
func Start[T any](name string) Chain[T] {
	return Chain[T]{name: name}
}

// From creates a chain holding ts
func From[T any](name string, ts ...simmer.Transformation[T]) Chain[T] {
	return Start[T](name).add(ts...)
}

func (c Chain[T]) add(ts ...simmer.Transformation[T]) Chain[T] {
	steps := make([]simmer.Transformation[T], 0, len(c.steps)+len(ts))
	steps = append(steps, c.steps...)
	steps = append(steps, ts...)
	return Chain[T]{name: c.name, steps: steps}
}

// Then chains a function that returns rop.Result[T]
func (c Chain[T]) Then(name string, onSuccess func(context.Context, T) rop.Result[T]) Chain[T] {
	return c.add(simmer.Switch(onSuccess).Named(name))
}

// ThenTry chains a function that returns (T, error)
func (c Chain[T]) ThenTry(name string, tryOnSuccess func(context.Context, T) (T, error)) Chain[T] {
	return c.add(simmer.Try(tryOnSuccess).Named(name))
}

// Map chains a pure transformation function
func (c Chain[T]) Map(name string, onSuccess func(context.Context, T) T) Chain[T] {
	return c.add(simmer.Map(onSuccess).Named(name))
}

// Await chains a function returning a deferred value
func (c Chain[T]) Await(name string, onSuccess func(context.Context, T) *deferred.Deferred[T]) Chain[T] {
	return c.add(simmer.Async(onSuccess).Named(name))
}

// Ensure performs a side effect without changing the value
func (c Chain[T]) Ensure(name string, onSuccess func(context.Context, T)) Chain[T] {
	return c.add(simmer.Switch(func(ctx context.Context, v T) rop.Result[T] {
		return solo.Tee(ctx, solo.Succeed(v), onSuccess)
	}).Named(name))
}

// Nest adds t as a single element, keeping its own nesting
func (c Chain[T]) Nest(t simmer.Transformation[T]) Chain[T] {
	return c.add(t)
}

// NestChain adds other as a nested pipeline
func (c Chain[T]) NestChain(other Chain[T]) Chain[T] {
	return c.add(other.Transformation())
}

// Len returns the number of steps a successful run applies
func (c Chain[T]) Len() int {
	return c.Transformation().Len()
}

// Transformation returns the chain as a named pipeline
func (c Chain[T]) Transformation() simmer.Transformation[T] {
	return simmer.Pipeline(c.steps...).Named(c.name)
}

// Run executes the chain against input
func (c Chain[T]) Run(ctx context.Context, input T, opts ...simmer.Option) *deferred.Deferred[T] {
	return simmer.Run(ctx, c.Transformation(), input, opts...)
}

// Curry binds the chain for later inputs
func (c Chain[T]) Curry(opts ...simmer.Option) simmer.Runner[T] {
	return simmer.Curry(c.Transformation(), opts...)
}
