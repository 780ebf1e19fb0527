package solo

import (
	"context"

	"github.com/ib-77/simmer/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}

		return rop.Success(out)
	}

	return rop.FailFrom[In, Out](input)
}

// Catch calls f and reports a panic inside it as a failed result.
func Catch[T any](f func() rop.Result[T]) (res rop.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[T](rop.FromPanic(r))
		}
	}()
	return f()
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
