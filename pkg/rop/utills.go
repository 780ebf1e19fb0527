package rop

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// PanicError is the failure produced when a step panics with a value that is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// FromPanic turns a recovered value into the error a failed Result carries.
// Errors are passed through as is, anything else is wrapped in PanicError.
func FromPanic(r any) error {
	if err, ok := r.(error); ok && !IsNil(err) {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}
