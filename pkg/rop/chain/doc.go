// Package chain provides a fluent wrapper for building simmer
// transformations step by step.
//
// Key operations:
// - Start/From: begin an empty chain or one holding existing transformations
// - Then: add a step returning rop.Result[T]
// - ThenTry: add a step returning (T, error)
// - Map: add a step that cannot fail
// - Await: add a step returning its own deferred value
// - Ensure: run a side effect on the current value without changing it
// - Nest: add another chain or transformation as a nested pipeline
// - Run/Curry: execute the chain through simmer
package chain
