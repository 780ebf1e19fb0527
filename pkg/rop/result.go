package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilError stands in for the error of a failure that was built without one.
var ErrNilError = errors.New("rop: failure without an error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

var _ WithError[int] = Result[int]{}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom moves a failed result to another value type, keeping its id, time and error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.IsEmpty()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never produced by Success or Fail.
func (r Result[T]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap splits a result into the usual Go (value, error) pair.
func Unwrap[T any](r WithError[T]) (T, error) {
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	if r.Err() == nil {
		return zero, ErrNilError
	}
	return zero, r.Err()
}
