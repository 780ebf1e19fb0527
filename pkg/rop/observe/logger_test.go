package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_SuccessfulRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
	ctx := context.Background()

	run := RunInfo{ID: uuid.New(), Name: "profile", Steps: 1}
	step := StepInfo{Run: run, Name: "validate", Index: 1, Depth: 1}

	l.RunStarted(ctx, run)
	l.StepStarted(ctx, step)
	l.StepFinished(ctx, step, nil, time.Millisecond)
	l.RunFinished(ctx, run, nil, 2*time.Millisecond)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "run started", lines[0]["message"])
	assert.Equal(t, run.ID.String(), lines[0][FieldRunID])
	assert.Equal(t, "profile", lines[0][FieldRun])
	assert.EqualValues(t, 1, lines[0][FieldSteps])

	assert.Equal(t, "trace", lines[1]["level"])
	assert.Equal(t, "validate", lines[1][FieldStep])
	assert.EqualValues(t, 1, lines[1][FieldDepth])

	assert.Equal(t, "step finished", lines[2]["message"])
	assert.Contains(t, lines[2], FieldElapsed)

	assert.Equal(t, "run finished", lines[3]["message"])
}

func TestLogger_FailuresAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))
	ctx := context.Background()

	run := RunInfo{ID: uuid.New(), Name: "profile", Steps: 2}
	step := StepInfo{Run: run, Index: 2}
	boom := errors.New("boom")

	l.RunStarted(ctx, run)
	l.StepStarted(ctx, step)
	l.StepFinished(ctx, step, boom, time.Millisecond)
	l.RunFinished(ctx, run, boom, time.Millisecond)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2, "only failures pass a warn level logger")

	assert.Equal(t, "step failed", lines[0]["message"])
	assert.Equal(t, "#2", lines[0][FieldStep])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.Equal(t, "run failed", lines[1]["message"])
}

func TestMulti(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	m := Multi(NewLogger(zerolog.New(&a)), nil, NewLogger(zerolog.New(&b)), Nop{})
	m.RunFinished(context.Background(), RunInfo{Name: "x"}, nil, time.Second)

	assert.Contains(t, a.String(), "run finished")
	assert.Contains(t, b.String(), "run finished")
}

func TestStepInfo_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "named", StepInfo{Name: "named", Index: 4}.Label())
	assert.Equal(t, "#4", StepInfo{Index: 4}.Label())
}
