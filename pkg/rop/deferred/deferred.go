package deferred

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/simmer/pkg/rop"
	"github.com/ib-77/simmer/pkg/rop/solo"
)

// ErrNoResult is the failure of a Deferred whose source channel closed without a value.
var ErrNoResult = errors.New("deferred: source closed without a result")

// ErrAbandoned is the failure of a Deferred whose computation exited its
// goroutine (runtime.Goexit) without returning.
var ErrAbandoned = errors.New("deferred: computation exited without a result")

var _ rop.Awaitable[int] = (*Deferred[int])(nil)

// Deferred is a single-resolution asynchronous result.
// It implements rop.Awaitable. The zero value is not usable: obtain one
// from New, Go, Settled or the other constructors.
type Deferred[T any] struct {
	done chan struct{}
	once sync.Once
	res  rop.Result[T]
}

// New returns a pending Deferred and the function that settles it.
// Only the first call to settle has an effect; it reports whether it won.
func New[T any]() (*Deferred[T], func(rop.Result[T]) bool) {
	d := &Deferred[T]{done: make(chan struct{})}
	return d, d.settle
}

// Go runs fn in a new goroutine and settles the returned Deferred with its result.
// A panic in fn settles the Deferred to failure, and so does fn ending its
// goroutine with runtime.Goexit (ErrAbandoned).
func Go[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T]) *Deferred[T] {
	d, settle := New[T]()
	go func() {
		defer settle(rop.Fail[T](ErrAbandoned))
		settle(solo.Catch(func() rop.Result[T] { return fn(ctx) }))
	}()
	return d
}

func Resolved[T any](v T) *Deferred[T] {
	return Settled(rop.Success(v))
}

func Rejected[T any](err error) *Deferred[T] {
	return Settled(rop.Fail[T](err))
}

// Settled wraps an already known result.
func Settled[T any](res rop.Result[T]) *Deferred[T] {
	d, settle := New[T]()
	settle(res)
	return d
}

// FromChan settles with the first value received from ch. A channel closed
// before sending settles to ErrNoResult.
func FromChan[T any](ch <-chan rop.Result[T]) *Deferred[T] {
	d, settle := New[T]()
	go func() {
		res, ok := <-ch
		if !ok {
			settle(rop.Fail[T](ErrNoResult))
			return
		}
		settle(res)
	}()
	return d
}

// Then waits for d and, on success, continues with next. A failure of d
// skips next and is carried to the returned Deferred.
func Then[In, Out any](ctx context.Context, d *Deferred[In],
	next func(ctx context.Context, v In) *Deferred[Out]) *Deferred[Out] {

	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return solo.Switch(ctx, d.Wait(), func(ctx context.Context, v In) rop.Result[Out] {
			n := next(ctx, v)
			if n == nil {
				return rop.Fail[Out](ErrNilDeferred)
			}
			return n.Wait()
		})
	})
}

// ErrNilDeferred is reported when a function expected to return a Deferred returns nil.
var ErrNilDeferred = errors.New("deferred: nil deferred returned")

func (d *Deferred[T]) settle(res rop.Result[T]) bool {
	won := false
	d.once.Do(func() {
		d.res = res
		won = true
		close(d.done)
	})
	return won
}

// Done is closed once the Deferred has settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Peek returns the result without blocking; ok is false while pending.
func (d *Deferred[T]) Peek() (res rop.Result[T], ok bool) {
	select {
	case <-d.done:
		return d.res, true
	default:
		return res, false
	}
}

// Await blocks until the Deferred settles or ctx is done. In the latter
// case the returned failure carries ctx.Err() and the Deferred itself is
// left untouched.
func (d *Deferred[T]) Await(ctx context.Context) rop.Result[T] {
	select {
	case <-d.done:
		return d.res
	case <-ctx.Done():
		select {
		case <-d.done:
			return d.res
		default:
		}
		return rop.Fail[T](ctx.Err())
	}
}

// Get is Await in (value, error) form.
func (d *Deferred[T]) Get(ctx context.Context) (T, error) {
	return rop.Unwrap[T](d.Await(ctx))
}

// Chan delivers the result on a buffered channel and closes it. If ctx ends
// first the channel is closed without a value.
func (d *Deferred[T]) Chan(ctx context.Context) <-chan rop.Result[T] {
	out := make(chan rop.Result[T], 1)
	go func() {
		defer close(out)
		select {
		case <-d.done:
			out <- d.res
		case <-ctx.Done():
		}
	}()
	return out
}

// Wait blocks until the Deferred settles. There is no way to abandon it.
func (d *Deferred[T]) Wait() rop.Result[T] {
	<-d.done
	return d.res
}
