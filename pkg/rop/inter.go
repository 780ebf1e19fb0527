package rop

import (
	"context"
	"time"
)

// ResultProvider exposes the value of a settled step.
type ResultProvider[T any] interface {
	Result() T
	// CreatedAt is the UTC time the value was produced
	CreatedAt() time.Time
}

// WithError is a value together with the error that replaced it on failure.
type WithError[T any] interface {
	ResultProvider[T]
	Err() error
	IsSuccess() bool
}

// Awaitable is a result that may not be known yet.
type Awaitable[T any] interface {
	// Done is closed once the result is known
	Done() <-chan struct{}
	Await(ctx context.Context) Result[T]
}
