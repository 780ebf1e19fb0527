package simmer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/simmer/pkg/rop"
	"github.com/ib-77/simmer/pkg/rop/deferred"
	"github.com/ib-77/simmer/pkg/rop/observe"
	"github.com/ib-77/simmer/pkg/rop/solo"
)

var (
	ErrEmptyPipeline = errors.New("simmer: empty pipeline")
	ErrNilStep       = errors.New("simmer: step has no function")
	ErrEmptyResult   = errors.New("simmer: step returned an empty result")
)

// Runner is a transformation bound by Curry, waiting for its input.
type Runner[T any] func(ctx context.Context, input T) *deferred.Deferred[T]

// Run applies t to input in a new goroutine and returns the pending result.
// ctx is handed to every step; the run itself does not stop when ctx is done.
func Run[T any](ctx context.Context, t Transformation[T], input T, opts ...Option) *deferred.Deferred[T] {
	o := newOptions(ctx, t.name, opts)
	r := &runner[T]{
		observer: o.observer,
		info: observe.RunInfo{
			ID:    uuid.New(),
			Name:  o.name,
			Steps: t.Len(),
		},
	}
	return deferred.Go(ctx, func(ctx context.Context) rop.Result[T] {
		return r.run(ctx, t, input)
	})
}

// Curry binds t and opts; every call of the returned Runner is an independent Run.
func Curry[T any](t Transformation[T], opts ...Option) Runner[T] {
	return func(ctx context.Context, input T) *deferred.Deferred[T] {
		return Run(ctx, t, input, opts...)
	}
}

// runner holds the state of a single run. It is only touched by the
// goroutine executing that run.
type runner[T any] struct {
	observer observe.Observer
	info     observe.RunInfo
	index    int
}

func (r *runner[T]) run(ctx context.Context, t Transformation[T], input T) rop.Result[T] {
	r.observer.RunStarted(ctx, r.info)
	start := time.Now()

	res := r.apply(ctx, t, input, 0)

	r.observer.RunFinished(ctx, r.info, res.Err(), time.Since(start))
	return res
}

func (r *runner[T]) apply(ctx context.Context, t Transformation[T], input T, depth int) rop.Result[T] {
	if t.kind == kindPipeline {
		return r.sequence(ctx, t.steps, input, depth+1)
	}
	return r.invoke(ctx, t, input, depth)
}

// sequence applies the head, then the remaining steps to the head's value.
func (r *runner[T]) sequence(ctx context.Context, steps []Transformation[T], input T, depth int) rop.Result[T] {
	if len(steps) == 0 {
		return rop.Fail[T](ErrEmptyPipeline)
	}

	head := r.apply(ctx, steps[0], input, depth)
	if len(steps) == 1 {
		return head
	}

	return solo.Switch(ctx, head, func(ctx context.Context, v T) rop.Result[T] {
		return r.sequence(ctx, steps[1:], v, depth)
	})
}

func (r *runner[T]) invoke(ctx context.Context, t Transformation[T], input T, depth int) rop.Result[T] {
	r.index++
	step := observe.StepInfo{Run: r.info, Name: t.name, Index: r.index, Depth: depth}
	r.observer.StepStarted(ctx, step)
	start := time.Now()

	res := solo.Catch(func() rop.Result[T] {
		if t.apply == nil {
			return rop.Fail[T](ErrNilStep)
		}
		return t.apply(ctx, input)
	})
	switch {
	case res.IsEmpty():
		res = rop.Fail[T](ErrEmptyResult)
	case !res.IsSuccess() && res.Err() == nil:
		res = rop.Fail[T](rop.ErrNilError)
	}

	r.observer.StepFinished(ctx, step, res.Err(), time.Since(start))
	return res
}
