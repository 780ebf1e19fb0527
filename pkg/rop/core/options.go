package core

import (
	"context"

	"github.com/ib-77/simmer/pkg/rop/observe"
)

type OptionKey string

const (
	RunOptionKey      OptionKey = "run_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type RunOptions struct {
	Name string
}

type ObserverOptions struct {
	Observer observe.Observer
}

func WithRunName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, RunOptionKey, RunOptions{Name: name})
}

func WithObserver(ctx context.Context, observer observe.Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observer: observer})
}

func GetRunName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(RunOptionKey).(RunOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}

func GetObserver(ctx context.Context, defaultObserver observe.Observer) observe.Observer {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok && options.Observer != nil {
		return options.Observer
	}
	return defaultObserver
}
