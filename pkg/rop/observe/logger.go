package observe

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Field keys written by Logger.
const (
	FieldRunID   = "run_id"
	FieldRun     = "run"
	FieldSteps   = "steps"
	FieldStep    = "step"
	FieldIndex   = "index"
	FieldDepth   = "depth"
	FieldElapsed = "elapsed"
)

// Logger writes run and step events to a zerolog.Logger. Successful events
// are logged at debug level (step starts at trace), failures at warn.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) RunStarted(_ context.Context, run RunInfo) {
	l.log.Debug().
		Str(FieldRunID, run.ID.String()).
		Str(FieldRun, run.Name).
		Int(FieldSteps, run.Steps).
		Msg("run started")
}

func (l *Logger) StepStarted(_ context.Context, step StepInfo) {
	l.log.Trace().
		Str(FieldRunID, step.Run.ID.String()).
		Str(FieldStep, step.Label()).
		Int(FieldIndex, step.Index).
		Int(FieldDepth, step.Depth).
		Msg("step started")
}

func (l *Logger) StepFinished(_ context.Context, step StepInfo, err error, elapsed time.Duration) {
	e := l.log.Debug()
	msg := "step finished"
	if err != nil {
		e = l.log.Warn().Err(err)
		msg = "step failed"
	}
	e.Str(FieldRunID, step.Run.ID.String()).
		Str(FieldStep, step.Label()).
		Int(FieldIndex, step.Index).
		Int(FieldDepth, step.Depth).
		Dur(FieldElapsed, elapsed).
		Msg(msg)
}

func (l *Logger) RunFinished(_ context.Context, run RunInfo, err error, elapsed time.Duration) {
	e := l.log.Debug()
	msg := "run finished"
	if err != nil {
		e = l.log.Warn().Err(err)
		msg = "run failed"
	}
	e.Str(FieldRunID, run.ID.String()).
		Str(FieldRun, run.Name).
		Dur(FieldElapsed, elapsed).
		Msg(msg)
}
