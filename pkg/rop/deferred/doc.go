// Package deferred implements Deferred[T], a one-shot asynchronous container
// for a rop.Result[T].
//
// A Deferred starts pending and settles exactly once, to success or failure.
// After that its result never changes and every waiter observes the same
// value. Waiting with a context only bounds the wait: the computation behind
// a Deferred keeps running until it settles.
//
// Constructors:
// - Go: run a computation in its own goroutine
// - New: create a pending Deferred and the function that settles it
// - Resolved/Rejected: already settled values
// - FromChan: settle from the first value of a result channel
//
// Consumers use Await/Get to block, Done/Peek to poll, Chan to plug a
// Deferred into channel based code and Then to continue with another
// asynchronous step.
package deferred
