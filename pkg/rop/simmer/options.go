package simmer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/simmer/pkg/rop/core"
	"github.com/ib-77/simmer/pkg/rop/observe"
)

const defaultRunName = "simmer"

type Option func(*options)

type options struct {
	name     string
	observer observe.Observer
}

// WithName sets the run name reported to observers.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithObserver replaces the observer the run reports to.
func WithObserver(observer observe.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// newOptions resolves options in order: explicit options, values carried by
// ctx (see package core), then defaults. The default observer logs to the
// zerolog logger attached to ctx, which discards everything unless one was set.
func newOptions(ctx context.Context, name string, opts []Option) options {
	if name == "" {
		name = defaultRunName
	}
	o := options{
		name:     core.GetRunName(ctx, name),
		observer: core.GetObserver(ctx, nil),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = observe.NewLogger(*zerolog.Ctx(ctx))
	}
	return o
}
