package rop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(5)
	if !r.IsSuccess() || r.IsFailure() || r.IsEmpty() {
		t.Fatalf("expected success, got success=%v failure=%v empty=%v", r.IsSuccess(), r.IsFailure(), r.IsEmpty())
	}
	if r.Result() != 5 || r.Err() != nil {
		t.Fatalf("expected 5 and no error, got %v, %v", r.Result(), r.Err())
	}
	if r.Id() == uuid.Nil || r.CreatedAt().IsZero() {
		t.Fatalf("expected id and creation time to be set")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	r := Fail[int](err)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got success=%v", r.IsSuccess())
	}
	if !errors.Is(r.Err(), err) {
		t.Fatalf("expected %v, got %v", err, r.Err())
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var r Result[string]
	if !r.IsEmpty() || r.IsSuccess() || r.IsFailure() {
		t.Fatalf("zero result must be empty only")
	}
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	in := Fail[int](errors.New("x"))
	out := FailFrom[int, string](in)
	if !out.IsFailure() || out.Err() != in.Err() || out.Id() != in.Id() || out.CreatedAt() != in.CreatedAt() {
		t.Fatalf("expected failure to carry over unchanged")
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, err := Unwrap[int](Success(3))
	if v != 3 || err != nil {
		t.Fatalf("expected 3, nil got %v, %v", v, err)
	}

	boom := errors.New("boom")
	v, err = Unwrap[int](Fail[int](boom))
	if v != 0 || !errors.Is(err, boom) {
		t.Fatalf("expected 0, boom got %v, %v", v, err)
	}

	v, err = Unwrap[int](Fail[int](nil))
	if v != 0 || !errors.Is(err, ErrNilError) {
		t.Fatalf("expected 0, ErrNilError got %v, %v", v, err)
	}
}

func TestFromPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if got := FromPanic(boom); got != boom {
		t.Fatalf("error panics must pass through, got %v", got)
	}

	got := FromPanic("bad state")
	var pe *PanicError
	if !errors.As(got, &pe) {
		t.Fatalf("expected *PanicError, got %T", got)
	}
	if pe.Value != "bad state" || len(pe.Stack) == 0 {
		t.Fatalf("unexpected panic error: %+v", pe)
	}
	if pe.Error() != "panic: bad state" {
		t.Fatalf("unexpected message %q", pe.Error())
	}

	var nilErr *wrapped
	if _, ok := FromPanic(error(nilErr)).(*PanicError); !ok {
		t.Fatalf("typed nil error must not pass through")
	}
}

type wrapped struct{}

func (*wrapped) Error() string { return "wrapped" }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var f func()
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"nil", nil, true},
		{"nil pointer", p, true},
		{"nil map", m, true},
		{"nil func", f, true},
		{"zero int", 0, false},
		{"empty string", "", false},
	}
	for _, c := range cases {
		if got := IsNil(c.in); got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}
