// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. The simmer runner invokes every step through them.
//
// Highlights:
// - Succeed: construct a successful Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Catch: run a step and turn a panic into failure
// - Finally: reduce to a concrete value via success/error handlers
package solo
