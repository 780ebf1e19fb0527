package observe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunInfo identifies one invocation of a transformation.
type RunInfo struct {
	ID    uuid.UUID
	Name  string
	Steps int
}

// StepInfo identifies a step inside a run. Index is the 1-based position of
// the step in execution order, Depth the number of pipelines enclosing it.
type StepInfo struct {
	Run   RunInfo
	Name  string
	Index int
	Depth int
}

// Label is the step name, or its position when the step is unnamed.
func (s StepInfo) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("#%d", s.Index)
}

// Observer receives the lifecycle of a run.
type Observer interface {
	RunStarted(ctx context.Context, run RunInfo)
	StepStarted(ctx context.Context, step StepInfo)
	StepFinished(ctx context.Context, step StepInfo, err error, elapsed time.Duration)
	RunFinished(ctx context.Context, run RunInfo, err error, elapsed time.Duration)
}

// Nop ignores every event.
type Nop struct{}

func (Nop) RunStarted(context.Context, RunInfo)                          {}
func (Nop) StepStarted(context.Context, StepInfo)                        {}
func (Nop) StepFinished(context.Context, StepInfo, error, time.Duration) {}
func (Nop) RunFinished(context.Context, RunInfo, error, time.Duration)   {}

type multi []Observer

// Multi fans every event out to obs in the given order. Nil observers are skipped.
func Multi(obs ...Observer) Observer {
	m := make(multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) RunStarted(ctx context.Context, run RunInfo) {
	for _, o := range m {
		o.RunStarted(ctx, run)
	}
}

func (m multi) StepStarted(ctx context.Context, step StepInfo) {
	for _, o := range m {
		o.StepStarted(ctx, step)
	}
}

func (m multi) StepFinished(ctx context.Context, step StepInfo, err error, elapsed time.Duration) {
	for _, o := range m {
		o.StepFinished(ctx, step, err, elapsed)
	}
}

func (m multi) RunFinished(ctx context.Context, run RunInfo, err error, elapsed time.Duration) {
	for _, o := range m {
		o.RunFinished(ctx, run, err, elapsed)
	}
}
