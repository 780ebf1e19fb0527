// Package simmer runs a transformation against a single input and hands the
// outcome back as a deferred result.
//
// A Transformation is either a step (one function from value to value) or a
// pipeline (an ordered, possibly nested, list of transformations). Run walks
// a pipeline left to right, threading each step's output into the next step,
// and settles the returned Deferred with the output of the last step or with
// the first failure. Steps after a failure are never invoked.
//
// Steps come in four shapes:
// - Map: func(ctx, T) T
// - Try: func(ctx, T) (T, error)
// - Switch: func(ctx, T) rop.Result[T]
// - Async: func(ctx, T) *deferred.Deferred[T]
//
// A panicking step fails the run as if it had returned the error it panicked
// with. Returned errors reach the caller unchanged.
//
// Curry binds a transformation and returns a Runner that performs the run
// once it is given an input:
//
//	square := simmer.Map(func(_ context.Context, n int) int { return n * n })
//	pow8 := simmer.Curry(simmer.Pipeline(square, square, square))
//	v, err := pow8(ctx, 2).Get(ctx) // 256, nil
//
// The runner never copies values between steps, so a step mutating a map or
// a pointer it received is seen by the steps that follow.
package simmer
